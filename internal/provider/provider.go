// Package provider defines the closed set of supported LLM backends
// and their built-in defaults.
package provider

import "fmt"

// Provider identifies an LLM backend family. Once resolved during
// bootstrap it is never re-resolved for the lifetime of the process.
type Provider string

const (
	OpenAI    Provider = "openai"
	Anthropic Provider = "anthropic"
	Azure     Provider = "azure"
	Local     Provider = "local"
)

// All lists every supported provider.
var All = []Provider{OpenAI, Anthropic, Azure, Local}

// Parse converts a raw string into a Provider.
func Parse(s string) (Provider, error) {
	for _, p := range All {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown provider %q (expected one of: openai, anthropic, azure, local)", s)
}

// Valid reports whether p is a member of the supported set.
func (p Provider) Valid() bool {
	_, err := Parse(string(p))
	return err == nil
}

// RecommendedModel returns the built-in default model for the provider.
// Every provider in the closed set has one, so there is no failure path.
func (p Provider) RecommendedModel() string {
	switch p {
	case Anthropic:
		return "claude-sonnet-4.5"
	case Local:
		return "llama3.1"
	default:
		// OpenAI and Azure share the same recommended default
		return "gpt-4o"
	}
}

// CredentialKey returns the environment variable name that holds the
// provider's API key. Local backends need no credential.
func (p Provider) CredentialKey() string {
	switch p {
	case OpenAI:
		return "OPENAI_API_KEY"
	case Anthropic:
		return "ANTHROPIC_API_KEY"
	case Azure:
		return "AZURE_OPENAI_API_KEY"
	default:
		return ""
	}
}

// ConsoleURL returns the page where a user can create an API key for the
// provider, shown as guidance during interactive credential setup.
func (p Provider) ConsoleURL() string {
	switch p {
	case OpenAI:
		return "https://platform.openai.com/account/api-keys"
	case Anthropic:
		return "https://console.anthropic.com/settings/keys"
	default:
		return ""
	}
}
