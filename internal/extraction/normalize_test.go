package extraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/showroom-catalog/showroom/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		sources  []string
		expected *models.ExtractionResult
	}{
		{
			name:    "complete answer",
			text:    `{"title":"Dacia Logan 2019","description":"diesel, 90 000 km","price":"95 000 DH","images":["https://a/1.jpg","https://a/2.jpg"],"phoneNumber":"0612345678","whatsapp":"https://wa.me/212612345678"}`,
			sources: []string{"https://www.avito.ma/x"},
			expected: &models.ExtractionResult{
				Title:       "Dacia Logan 2019",
				Description: "diesel, 90 000 km",
				Price:       "95 000 DH",
				Images:      []string{"https://a/1.jpg", "https://a/2.jpg"},
				Sources:     []string{"https://www.avito.ma/x"},
				PhoneNumber: "0612345678",
				WhatsApp:    "https://wa.me/212612345678",
			},
		},
		{
			name: "markdown fences are stripped",
			text: "```json\n{\"title\":\"Clio\",\"price\":\"60 000 DH\",\"images\":[]}\n```",
			expected: &models.ExtractionResult{
				Title:  "Clio",
				Price:  "60 000 DH",
				Images: []string{},
			},
		},
		{
			name:     "malformed json falls back to placeholders",
			text:     "Sorry, I could not open that page.",
			sources:  []string{"https://www.avito.ma/x"},
			expected: Placeholder(),
		},
		{
			name:     "json null falls back to placeholders",
			text:     "null",
			expected: Placeholder(),
		},
		{
			name: "missing fields get placeholders",
			text: `{"phoneNumber":null,"whatsapp":""}`,
			expected: &models.ExtractionResult{
				Title:  PlaceholderTitle,
				Price:  PlaceholderPrice,
				Images: []string{},
			},
		},
		{
			name: "non http images are dropped",
			text: `{"title":"t","price":"p","images":["https://ok/1.jpg","//cdn/2.jpg","data:image/png;base64,AA",42,"http://ok/3.jpg"]}`,
			expected: &models.ExtractionResult{
				Title:  "t",
				Price:  "p",
				Images: []string{"https://ok/1.jpg", "http://ok/3.jpg"},
			},
		},
		{
			name: "images that are not an array become empty",
			text: `{"title":"t","price":"p","images":"https://ok/1.jpg"}`,
			expected: &models.ExtractionResult{
				Title:  "t",
				Price:  "p",
				Images: []string{},
			},
		},
		{
			name: "legacy imageUrl is accepted",
			text: `{"title":"t","price":"p","imageUrl":"https://ok/cover.jpg"}`,
			expected: &models.ExtractionResult{
				Title:  "t",
				Price:  "p",
				Images: []string{"https://ok/cover.jpg"},
			},
		},
		{
			name: "numeric price is kept",
			text: `{"title":"t","price":120000}`,
			expected: &models.ExtractionResult{
				Title:  "t",
				Price:  "120000",
				Images: []string{},
			},
		},
		{
			name:    "sources are deduplicated",
			text:    `{"title":"t","price":"p"}`,
			sources: []string{"https://a", "", "https://b", "https://a"},
			expected: &models.ExtractionResult{
				Title:   "t",
				Price:   "p",
				Images:  []string{},
				Sources: []string{"https://a", "https://b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.text, tt.sources))
		})
	}
}

func TestNormalizeCapsImages(t *testing.T) {
	urls := make([]string, 15)
	for i := range urls {
		urls[i] = fmt.Sprintf(`"https://img/%d.jpg"`, i)
	}
	text := `{"title":"t","price":"p","images":[` + strings.Join(urls, ",") + `]}`

	result := Normalize(text, nil)
	assert.Len(t, result.Images, models.MaxImagesPerProduct)
	assert.Equal(t, "https://img/0.jpg", result.Images[0])
	assert.Equal(t, "https://img/9.jpg", result.Images[9])
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("https://www.avito.ma/fr/rabat/voitures/golf.htm", "avito.ma")

	assert.Contains(t, prompt, "https://www.avito.ma/fr/rabat/voitures/golf.htm")
	assert.Contains(t, prompt, "**avito.ma**")
	assert.Contains(t, prompt, "up to 10 valid image URLs")
	assert.Contains(t, prompt, "Return ONLY raw JSON")
}
