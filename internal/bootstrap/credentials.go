package bootstrap

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/quocvuong92/chat-cli/internal/config"
	"github.com/quocvuong92/chat-cli/internal/provider"
)

// anthropicKeyPrefix is the structural marker of Anthropic API keys.
const anthropicKeyPrefix = "sk-ant-"

// ClassifyAPIKey determines which provider a raw key belongs to. Keys
// with the sk-ant- prefix are Anthropic; everything else is treated as
// OpenAI. This is a structural heuristic only; the key is never
// validated against a live service.
func ClassifyAPIKey(key string) provider.Provider {
	if strings.HasPrefix(key, anthropicKeyPrefix) {
		return provider.Anthropic
	}
	return provider.OpenAI
}

// promptForAPIKey asks the user for an API key, classifies it, and
// persists it into the config store under the provider-specific key.
// A single line is accepted as-is, with no retry loop; the read blocks
// until input is available.
func (b *Bootstrapper) promptForAPIKey() (provider.Provider, string, error) {
	fmt.Fprintln(b.out, "No API key set for OpenAI or Anthropic.")
	fmt.Fprintln(b.out, "You can get one at:")
	fmt.Fprintf(b.out, " - OpenAI: %s\n", provider.OpenAI.ConsoleURL())
	fmt.Fprintf(b.out, " - Anthropic: %s\n", provider.Anthropic.ConsoleURL())
	fmt.Fprintln(b.out)
	fmt.Fprint(b.out, "Your OpenAI or Anthropic API key: ")

	line, err := bufio.NewReader(b.in).ReadString('\n')
	if err != nil && line == "" {
		return "", "", fmt.Errorf("failed to read API key: %w", err)
	}
	key := strings.TrimSpace(line)

	p := ClassifyAPIKey(key)
	if err := b.cfg.Set(config.EnvPrefix+p.CredentialKey(), key); err != nil {
		return "", "", fmt.Errorf("failed to save API key: %w", err)
	}
	fmt.Fprintf(b.out, "API key saved to config at %s\n", b.cfg.Path())

	return p, key, nil
}
