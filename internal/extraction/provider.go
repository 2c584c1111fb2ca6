package extraction

import (
	"fmt"

	"github.com/showroom-catalog/showroom/internal/config"
	"github.com/showroom-catalog/showroom/internal/gemini"
	"github.com/showroom-catalog/showroom/internal/logger"
	"github.com/showroom-catalog/showroom/internal/ollama"
	"github.com/showroom-catalog/showroom/internal/openai"
	"github.com/showroom-catalog/showroom/internal/providers"
)

// NewProvider returns the provider selected by the configuration
func NewProvider(cfg *config.Config) (providers.Provider, error) {
	switch cfg.Extraction.Provider {
	case "gemini":
		return gemini.New(cfg.Providers.GeminiAPIKey), nil
	case "openai":
		return openai.New(cfg.Providers.OpenAIAPIKey), nil
	case "ollama":
		return ollama.New(cfg.Providers.OllamaURL), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Extraction.Provider)
	}
}

// NewClientFromConfig wires the configured provider into a Client
func NewClientFromConfig(cfg *config.Config, log logger.Logger) (*Client, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	return NewClient(provider, Options{
		Model:       cfg.ModelName(),
		Temperature: cfg.Extraction.Temperature,
		Site:        cfg.Extraction.SupportedSite,
		Rate:        cfg.Extraction.Rate,
		Burst:       cfg.Extraction.Burst,
	}, log), nil
}
