// Package llm configures provider credentials and talks to the chat
// completion APIs of the supported providers.
package llm

import (
	"fmt"
	"os"

	"github.com/quocvuong92/chat-cli/internal/config"
	"github.com/quocvuong92/chat-cli/internal/provider"
)

// DefaultLocalBaseURL is the endpoint used for the local provider when
// none is configured (an OpenAI-compatible server such as llama.cpp or
// ollama).
const DefaultLocalBaseURL = "http://localhost:11434/v1"

// Setup exports the resolved provider's credentials and endpoint into
// the process environment, where the HTTP client and any spawned tools
// read them. The bootstrap sequence runs Setup before interactive
// history is opened, so no credential value can be recorded there.
//
// Returns an error if the provider requires a credential that is set
// neither in the config store nor the environment.
func Setup(p provider.Provider, cfg *config.Store) error {
	switch p {
	case provider.OpenAI, provider.Anthropic:
		return exportRequired(cfg, p, p.CredentialKey())

	case provider.Azure:
		if err := exportRequired(cfg, p, p.CredentialKey()); err != nil {
			return err
		}
		return exportRequired(cfg, p, "AZURE_OPENAI_ENDPOINT")

	case provider.Local:
		base := cfg.GetEnv("OPENAI_BASE_URL")
		if base == "" {
			base = DefaultLocalBaseURL
		}
		if err := os.Setenv("OPENAI_BASE_URL", base); err != nil {
			return fmt.Errorf("failed to set OPENAI_BASE_URL: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported provider %q", p)
	}
}

func exportRequired(cfg *config.Store, p provider.Provider, name string) error {
	v := cfg.GetEnv(name)
	if v == "" {
		return fmt.Errorf("%s is not set (required for provider %s)", name, p)
	}
	if err := os.Setenv(name, v); err != nil {
		return fmt.Errorf("failed to set %s: %w", name, err)
	}
	return nil
}
