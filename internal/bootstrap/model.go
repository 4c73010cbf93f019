package bootstrap

import "github.com/quocvuong92/chat-cli/internal/provider"

// selectModel applies the model precedence chain: explicit argument,
// config key env.MODEL, then the provider's built-in recommended
// default. There is no failure path.
func (b *Bootstrapper) selectModel(explicit string, p provider.Provider) string {
	if explicit != "" {
		return explicit
	}
	if v := b.cfg.GetEnv("MODEL"); v != "" {
		return v
	}
	return p.RecommendedModel()
}
