package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/showroom-catalog/showroom/internal/providers"
)

const defaultBaseURL = "http://localhost:11434"

// Ollama is a provider for a local Ollama server
type Ollama struct {
	BaseURL    string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Format   string         `json:"format"`
	Options  map[string]any `json:"options,omitempty"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
	Error   string      `json:"error"`
}

// New returns a new Ollama provider talking to baseURL
func New(baseURL string) *Ollama {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Ollama{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// ExtractText sends the prompt as a single user message and asks for a
// JSON formatted answer
func (o *Ollama) ExtractText(ctx context.Context, config providers.Config) (*providers.Response, error) {
	requestBody, err := json.Marshal(chatRequest{
		Model:    config.Model,
		Messages: []chatMessage{{Role: "user", Content: config.Prompt}},
		Format:   "json",
		Options:  map[string]any{"temperature": config.Temperature},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/api/chat", bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	if response.Error != "" {
		return nil, fmt.Errorf("ollama error: %s", response.Error)
	}

	return &providers.Response{Text: response.Message.Content}, nil
}
