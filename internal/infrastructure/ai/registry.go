package ai

import (
	appai "hilla/internal/application/ai"
	"hilla/internal/shared/config"
	"hilla/internal/shared/logger"
)

// BuildRegistry assembles the provider registry from configuration.
// Providers without a credential are not registered at all, so the
// request path never probes for keys. Preference order when no
// override is set: gemini, then openai.
func BuildRegistry(cfg *config.AIConfig, log logger.Interface) *appai.Registry {
	var providers []appai.Provider

	if cfg.Gemini.APIKey != "" {
		providers = append(providers, NewGeminiProvider(
			cfg.Gemini.APIKey,
			cfg.Gemini.Model,
			cfg.Gemini.MaxOutputTokens,
			log,
		))
	}

	if cfg.OpenAI.APIKey != "" {
		providers = append(providers, NewOpenAIProvider(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxOutputTokens,
			log,
		))
	}

	return appai.NewRegistry(cfg.Provider, providers...)
}
