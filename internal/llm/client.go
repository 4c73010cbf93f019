package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/quocvuong92/chat-cli/internal/constants"
	"github.com/quocvuong92/chat-cli/internal/logging"
	"github.com/quocvuong92/chat-cli/internal/provider"
)

// API endpoints per provider
const (
	openAIBaseURL    = "https://api.openai.com/v1"
	anthropicBaseURL = "https://api.anthropic.com/v1"

	anthropicVersion   = "2023-06-01"
	anthropicMaxTokens = 4096
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the OpenAI-compatible Chat Completions request body
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// chatResponse is the OpenAI-compatible Chat Completions response body
type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// anthropicRequest is the Anthropic Messages API request body
type anthropicRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// anthropicResponse is the Anthropic Messages API response body
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// APIError represents a non-2xx response from a provider
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// Client sends chat requests to the resolved provider. Setup must have
// run first so credentials and endpoints are in the environment.
type Client struct {
	httpClient *http.Client
	provider   provider.Provider
	model      string
}

// NewClient creates a chat client for the given provider and model.
func NewClient(p provider.Provider, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: constants.DefaultAPITimeout},
		provider:   p,
		model:      model,
	}
}

// Model returns the model identifier in use.
func (c *Client) Model() string {
	return c.model
}

// Query sends the full message history and returns the assistant reply.
func (c *Client) Query(ctx context.Context, messages []Message) (string, error) {
	if c.provider == provider.Anthropic {
		return c.queryAnthropic(ctx, messages)
	}
	return c.queryOpenAICompatible(ctx, messages)
}

func (c *Client) queryOpenAICompatible(ctx context.Context, messages []Message) (string, error) {
	url, headers := c.endpoint()

	body, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	data, err := c.post(ctx, url, headers, body)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", c.provider)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) queryAnthropic(ctx context.Context, messages []Message) (string, error) {
	// The Messages API takes the system prompt as a top-level field
	req := anthropicRequest{Model: c.model, MaxTokens: anthropicMaxTokens}
	for _, m := range messages {
		if m.Role == "system" {
			req.System = m.Content
			continue
		}
		req.Messages = append(req.Messages, m)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	headers := map[string]string{
		"x-api-key":         os.Getenv("ANTHROPIC_API_KEY"),
		"anthropic-version": anthropicVersion,
	}

	data, err := c.post(ctx, anthropicBaseURL+"/messages", headers, body)
	if err != nil {
		return "", err
	}

	var resp anthropicResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

// endpoint returns the chat completions URL and auth headers for
// OpenAI-compatible providers (openai, azure, local).
func (c *Client) endpoint() (string, map[string]string) {
	switch c.provider {
	case provider.Azure:
		base := strings.TrimSuffix(os.Getenv("AZURE_OPENAI_ENDPOINT"), "/")
		return base + "/openai/v1/chat/completions", map[string]string{
			"api-key": os.Getenv("AZURE_OPENAI_API_KEY"),
		}
	case provider.Local:
		base := strings.TrimSuffix(os.Getenv("OPENAI_BASE_URL"), "/")
		if base == "" {
			base = DefaultLocalBaseURL
		}
		return base + "/chat/completions", nil
	default:
		return openAIBaseURL + "/chat/completions", map[string]string{
			"Authorization": "Bearer " + os.Getenv("OPENAI_API_KEY"),
		}
	}
}

func (c *Client) post(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logging.Debug("sending chat request", logging.Fields{
		"provider": c.provider,
		"model":    c.model,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(data)}
	}
	return data, nil
}
