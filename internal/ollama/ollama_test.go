package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showroom-catalog/showroom/internal/providers"
)

func TestExtractText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)

		var body chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llava", body.Model)
		assert.False(t, body.Stream)
		assert.Equal(t, "json", body.Format)
		if assert.Len(t, body.Messages, 1) {
			assert.Equal(t, "user", body.Messages[0].Role)
			assert.Equal(t, "p", body.Messages[0].Content)
		}

		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"{\"price\":\"95 000 DH\"}"},"done":true}`))
	}))
	defer server.Close()

	resp, err := New(server.URL+"/").ExtractText(context.Background(), providers.Config{Model: "llava", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, `{"price":"95 000 DH"}`, resp.Text)
	assert.Empty(t, resp.Sources)
}

func TestExtractTextErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "non 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model not found", http.StatusNotFound)
			},
			want: "404",
		},
		{
			name: "error field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":"out of memory"}`))
			},
			want: "out of memory",
		},
		{
			name: "undecodable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			want: "decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := New(server.URL).ExtractText(context.Background(), providers.Config{Model: "m"})
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestNewDefaultsBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:11434", New("").BaseURL)
}
