package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/showroom-catalog/showroom/internal/providers"
	"google.golang.org/api/option"
)

// Gemini is a provider for Google Gemini
type Gemini struct {
	apiKey string
}

// New returns a new Gemini provider. An empty key falls back to the
// GEMINI_API_KEY environment variable at call time.
func New(apiKey string) *Gemini {
	return &Gemini{apiKey: apiKey}
}

// ExtractText runs the prompt through Gemini and returns the generated text
// together with the citation URIs of the first candidate
func (g *Gemini) ExtractText(ctx context.Context, config providers.Config) (*providers.Response, error) {
	apiKey := g.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(config.Model)
	model.SetTemperature(float32(config.Temperature))
	model.ResponseMIMEType = "application/json"

	return generated(model.GenerateContent(ctx, genai.Text(config.Prompt)))
}

// generated maps a GenerateContent result to a Response. Blocked and empty
// answers come back as empty text so the caller can degrade them to
// placeholders.
func generated(resp *genai.GenerateContentResponse, err error) (*providers.Response, error) {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		if blocked.Candidate != nil {
			return candidateResponse(blocked.Candidate), nil
		}
		return &providers.Response{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return &providers.Response{}, nil
	}
	return candidateResponse(resp.Candidates[0]), nil
}

func candidateResponse(candidate *genai.Candidate) *providers.Response {
	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text.WriteString(string(txt))
			}
		}
	}

	return &providers.Response{
		Text:    text.String(),
		Sources: citationURIs(candidate.CitationMetadata),
	}
}

func citationURIs(meta *genai.CitationMetadata) []string {
	if meta == nil {
		return nil
	}

	var uris []string
	for _, src := range meta.CitationSources {
		if src == nil || src.URI == nil || *src.URI == "" {
			continue
		}
		uris = append(uris, *src.URI)
	}
	return uris
}
