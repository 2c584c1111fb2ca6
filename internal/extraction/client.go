package extraction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/showroom-catalog/showroom/internal/logger"
	"github.com/showroom-catalog/showroom/internal/models"
	"github.com/showroom-catalog/showroom/internal/providers"
	"golang.org/x/time/rate"
)

// ErrExtraction wraps every transport or provider failure. Malformed
// answers are not errors, see Normalize.
var ErrExtraction = errors.New("extraction failed")

// Options configures a Client
type Options struct {
	Model       string
	Temperature float64
	Site        string  // supported listing domain, used as a prompt hint only
	Rate        float64 // provider calls per second, 0 disables limiting
	Burst       int
}

// Client wraps a provider with the listing prompt and answer normalization.
// It performs a single attempt per call and no URL validation.
type Client struct {
	provider providers.Provider
	opts     Options
	limiter  *rate.Limiter
	logger   logger.Logger
}

// NewClient creates a new extraction client
func NewClient(provider providers.Provider, opts Options, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	c := &Client{
		provider: provider,
		opts:     opts,
		logger:   log,
	}
	if opts.Rate > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.Rate), burst)
	}
	return c
}

// Extract asks the provider for the listing details behind url
func (c *Client) Extract(ctx context.Context, url string) (*models.ExtractionResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %w", ErrExtraction, err)
		}
	}

	start := time.Now()
	c.logger.Info("Extracting listing details", logger.String("url", url), logger.String("model", c.opts.Model))

	resp, err := c.provider.ExtractText(ctx, providers.Config{
		Model:       c.opts.Model,
		Temperature: c.opts.Temperature,
		Prompt:      BuildPrompt(url, c.opts.Site),
	})
	if err != nil {
		c.logger.Error("Listing extraction failed", logger.String("url", url), logger.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	if resp == nil {
		resp = &providers.Response{}
	}

	result := Normalize(resp.Text, resp.Sources)
	if result.Title == PlaceholderTitle {
		c.logger.Warn("Provider answer degraded to placeholders", logger.String("url", url), logger.String("response", resp.Text))
	}

	c.logger.Info("Listing extracted",
		logger.String("url", url),
		logger.Int("images", len(result.Images)),
		logger.Int("sources", len(result.Sources)),
		logger.Duration("elapsed", time.Since(start)))

	return result, nil
}
