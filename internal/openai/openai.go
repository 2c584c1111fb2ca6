package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/showroom-catalog/showroom/internal/providers"
)

const defaultBaseURL = "https://api.openai.com/v1"

// OpenAI is a provider for OpenAI
type OpenAI struct {
	BaseURL    string
	APIKey     string
	httpClient *http.Client
}

// New returns a new OpenAI provider. An empty key falls back to the
// OPENAI_API_KEY environment variable at call time.
func New(apiKey string) *OpenAI {
	return &OpenAI{
		BaseURL:    defaultBaseURL,
		APIKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

type annotation struct {
	Type        string `json:"type"`
	URLCitation struct {
		URL string `json:"url"`
	} `json:"url_citation"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content     string       `json:"content"`
			Annotations []annotation `json:"annotations"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ExtractText runs the prompt as a JSON mode chat completion. URL citations
// attached to the answer are returned as sources.
func (o *OpenAI) ExtractText(ctx context.Context, config providers.Config) (*providers.Response, error) {
	apiKey := o.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	requestBody, err := json.Marshal(chatRequest{
		Model:          config.Model,
		Messages:       []chatMessage{{Role: "user", Content: config.Prompt}},
		Temperature:    config.Temperature,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/chat/completions", bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Choices) == 0 {
		return &providers.Response{}, nil
	}

	msg := response.Choices[0].Message
	var sources []string
	for _, a := range msg.Annotations {
		if a.Type == "url_citation" && a.URLCitation.URL != "" {
			sources = append(sources, a.URLCitation.URL)
		}
	}

	return &providers.Response{Text: msg.Content, Sources: sources}, nil
}
