package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8888", cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.Extraction.Provider)
	assert.Equal(t, "avito.ma", cfg.Extraction.SupportedSite)
	assert.Equal(t, "file", cfg.Storage.Kind)
	assert.Equal(t, "my_awesome_products_db", cfg.Storage.Key)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1, cfg.Extraction.Burst)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHOWROOM_PROVIDER", "ollama")
	t.Setenv("SHOWROOM_STORE", "redis")
	t.Setenv("SHOWROOM_REDIS_ADDR", "localhost:6379")
	t.Setenv("SHOWROOM_REDIS_DB", "2")
	t.Setenv("SHOWROOM_SUPPORTED_SITE", "example.org")
	t.Setenv("OLLAMA_MODEL", "llava")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Extraction.Provider)
	assert.Equal(t, "redis", cfg.Storage.Kind)
	assert.Equal(t, "localhost:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, 2, cfg.Storage.RedisDB)
	assert.Equal(t, "example.org", cfg.Extraction.SupportedSite)
	assert.Equal(t, "llava", cfg.ModelName())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown provider",
			env:  map[string]string{"SHOWROOM_PROVIDER": "claude"},
		},
		{
			name: "unknown store",
			env:  map[string]string{"SHOWROOM_STORE": "sqlite"},
		},
		{
			name: "redis store without address",
			env:  map[string]string{"SHOWROOM_STORE": "redis"},
		},
		{
			name: "mongo store without uri",
			env:  map[string]string{"SHOWROOM_STORE": "mongo"},
		},
		{
			name: "non numeric port",
			env:  map[string]string{"SHOWROOM_PORT": "http"},
		},
		{
			name: "unparseable temperature",
			env:  map[string]string{"SHOWROOM_TEMPERATURE": "warm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestModelName(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{
			name:     "gemini default",
			cfg:      Config{Extraction: ExtractionConfig{Provider: "gemini"}},
			expected: "gemini-2.5-flash",
		},
		{
			name:     "openai default",
			cfg:      Config{Extraction: ExtractionConfig{Provider: "openai"}},
			expected: "gpt-4o",
		},
		{
			name:     "ollama default",
			cfg:      Config{Extraction: ExtractionConfig{Provider: "ollama"}},
			expected: "mistral-small3.2:24b",
		},
		{
			name: "explicit model wins",
			cfg: Config{
				Extraction: ExtractionConfig{Provider: "openai", Model: "gpt-4o-mini"},
				Providers:  ProviderConfig{OpenAIModel: "gpt-4.1"},
			},
			expected: "gpt-4o-mini",
		},
		{
			name: "provider variable",
			cfg: Config{
				Extraction: ExtractionConfig{Provider: "gemini"},
				Providers:  ProviderConfig{GeminiModel: "gemini-2.0-pro"},
			},
			expected: "gemini-2.0-pro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.ModelName())
		})
	}
}
