package bootstrap

import (
	"fmt"

	"github.com/quocvuong92/chat-cli/internal/provider"
)

// resolveProvider applies the provider precedence chain, highest first:
// explicit argument, config key env.PROVIDER, stored-credential
// auto-detection, then the interactive credential prompt.
func (b *Bootstrapper) resolveProvider(explicit provider.Provider, interactive bool) (provider.Provider, error) {
	if explicit != "" {
		if !explicit.Valid() {
			return "", fmt.Errorf("invalid provider %q", explicit)
		}
		return explicit, nil
	}

	if v := b.cfg.GetEnv("PROVIDER"); v != "" {
		p, err := provider.Parse(v)
		if err != nil {
			return "", err
		}
		return p, nil
	}

	// Checking OpenAI before Anthropic is a fixed tie-break, not a
	// preference judgment.
	if b.cfg.GetEnv("OPENAI_API_KEY") != "" {
		fmt.Fprintln(b.out, "Found OpenAI API key, using OpenAI provider")
		return provider.OpenAI, nil
	}
	if b.cfg.GetEnv("ANTHROPIC_API_KEY") != "" {
		fmt.Fprintln(b.out, "Found Anthropic API key, using Anthropic provider")
		return provider.Anthropic, nil
	}

	if interactive {
		p, _, err := b.promptForAPIKey()
		if err != nil {
			return "", err
		}
		return p, nil
	}

	return "", ErrNoProvider
}
