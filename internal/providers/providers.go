package providers

import (
	"context"
)

// Config represents the configuration for an LLM provider
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
}

// Response is the raw text generated by a provider along with any source
// URIs the provider attributed the answer to
type Response struct {
	Text    string
	Sources []string
}

// Provider defines the interface for an LLM provider
type Provider interface {
	ExtractText(ctx context.Context, config Config) (*Response, error)
}
