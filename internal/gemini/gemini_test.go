package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/showroom-catalog/showroom/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCandidateResponse(t *testing.T) {
	candidate := &genai.Candidate{
		Content: &genai.Content{
			Parts: []genai.Part{genai.Text(`{"title":`), genai.Text(`"Dacia"}`)},
		},
		CitationMetadata: &genai.CitationMetadata{
			CitationSources: []*genai.CitationSource{
				{URI: strPtr("https://www.avito.ma/fr/casablanca/voitures/dacia.htm")},
				{URI: nil},
				{URI: strPtr("")},
				nil,
			},
		},
	}

	resp := candidateResponse(candidate)
	assert.Equal(t, `{"title":"Dacia"}`, resp.Text)
	assert.Equal(t, []string{"https://www.avito.ma/fr/casablanca/voitures/dacia.htm"}, resp.Sources)
}

func TestCandidateResponseEmpty(t *testing.T) {
	tests := []struct {
		name      string
		candidate *genai.Candidate
	}{
		{name: "nil content", candidate: &genai.Candidate{}},
		{
			name: "blocked with citation",
			candidate: &genai.Candidate{
				FinishReason:     genai.FinishReasonSafety,
				CitationMetadata: &genai.CitationMetadata{},
			},
		},
		{name: "no parts", candidate: &genai.Candidate{Content: &genai.Content{}}},
		{
			name: "no text parts",
			candidate: &genai.Candidate{Content: &genai.Content{
				Parts: []genai.Part{genai.Blob{MIMEType: "image/png", Data: []byte{1}}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := candidateResponse(tt.candidate)
			require.NotNil(t, resp)
			assert.Empty(t, resp.Text)
		})
	}
}

func TestGenerated(t *testing.T) {
	listing := &genai.Candidate{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"title":"Dacia"}`)}}}

	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		err      error
		wantText string
	}{
		{name: "first candidate", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{listing}}, wantText: `{"title":"Dacia"}`},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}},
		{name: "nil response", resp: nil},
		{name: "blocked candidate", err: &genai.BlockedError{Candidate: &genai.Candidate{FinishReason: genai.FinishReasonSafety}}},
		{name: "blocked prompt", err: &genai.BlockedError{PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := generated(tt.resp, tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, resp.Text)
		})
	}
}

func TestGeneratedTransportError(t *testing.T) {
	_, err := generated(nil, errors.New("rpc error: code = Unavailable"))
	assert.ErrorContains(t, err, "failed to generate content")
}

func TestExtractTextRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := New("").ExtractText(context.Background(), providers.Config{Model: "gemini-2.5-flash"})
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}
