package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file by the root command.
type Config struct {
	Server     ServerConfig     `envPrefix:"SHOWROOM_"`
	Extraction ExtractionConfig `envPrefix:"SHOWROOM_"`
	Storage    StorageConfig    `envPrefix:"SHOWROOM_"`
	Log        LogConfig        `envPrefix:"SHOWROOM_LOG_"`
	Providers  ProviderConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8888" validate:"required,numeric"`
}

// ExtractionConfig controls the listing extraction call
type ExtractionConfig struct {
	Provider      string  `env:"PROVIDER" envDefault:"gemini" validate:"oneof=gemini openai ollama"`
	Model         string  `env:"MODEL"`
	Temperature   float64 `env:"TEMPERATURE" envDefault:"0.2" validate:"gte=0,lte=2"`
	SupportedSite string  `env:"SUPPORTED_SITE" envDefault:"avito.ma" validate:"required"`
	Rate          float64 `env:"EXTRACT_RATE" envDefault:"1" validate:"gte=0"` // requests per second, 0 disables limiting
	Burst         int     `env:"EXTRACT_BURST" envDefault:"1" validate:"gte=1"`
}

// StorageConfig selects the blob store backing the catalog
type StorageConfig struct {
	Kind          string `env:"STORE" envDefault:"file" validate:"oneof=file memory redis mongo"`
	Key           string `env:"STORAGE_KEY" envDefault:"my_awesome_products_db" validate:"required"`
	DataDir       string `env:"DATA_DIR" envDefault:"data" validate:"required_if=Kind file"`
	RedisAddr     string `env:"REDIS_ADDR" validate:"required_if=Kind redis"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`
	MongoURI      string `env:"MONGO_URI" validate:"required_if=Kind mongo"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"showroom"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Pretty bool   `env:"PRETTY" envDefault:"true"`
}

// ProviderConfig keeps the provider specific variable names
type ProviderConfig struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL"`
	OllamaURL    string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel  string `env:"OLLAMA_MODEL"`
}

// Load parses and validates the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ModelName returns the model to use for the configured provider. An
// explicit SHOWROOM_MODEL wins over the provider specific variable.
func (c *Config) ModelName() string {
	if c.Extraction.Model != "" {
		return c.Extraction.Model
	}

	switch c.Extraction.Provider {
	case "openai":
		if c.Providers.OpenAIModel != "" {
			return c.Providers.OpenAIModel
		}
		return "gpt-4o"
	case "ollama":
		if c.Providers.OllamaModel != "" {
			return c.Providers.OllamaModel
		}
		return "mistral-small3.2:24b"
	default:
		if c.Providers.GeminiModel != "" {
			return c.Providers.GeminiModel
		}
		return "gemini-2.5-flash"
	}
}
