package extraction

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/showroom-catalog/showroom/internal/models"
)

const (
	// PlaceholderTitle replaces a missing or empty title
	PlaceholderTitle = "title unavailable"
	// PlaceholderPrice replaces a missing or empty price
	PlaceholderPrice = "---"
)

// Placeholder is the record used when the provider answer cannot be read
// as a JSON object at all.
func Placeholder() *models.ExtractionResult {
	return &models.ExtractionResult{
		Title:  PlaceholderTitle,
		Price:  PlaceholderPrice,
		Images: []string{},
	}
}

// Normalize turns raw provider text into an extraction result. It never
// fails: unreadable answers degrade to Placeholder, missing fields to their
// placeholder values.
func Normalize(text string, sources []string) *models.ExtractionResult {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleanJSON(text)), &parsed); err != nil || parsed == nil {
		return Placeholder()
	}

	images := imageList(parsed["images"])
	if images == nil {
		// older prompts answered with a single imageUrl
		if single, ok := parsed["imageUrl"].(string); ok {
			images = []string{single}
		}
	}

	return &models.ExtractionResult{
		Title:       orDefault(asString(parsed["title"]), PlaceholderTitle),
		Description: asString(parsed["description"]),
		Price:       orDefault(asString(parsed["price"]), PlaceholderPrice),
		Images:      filterImages(images),
		Sources:     dedupe(sources),
		PhoneNumber: asString(parsed["phoneNumber"]),
		WhatsApp:    asString(parsed["whatsapp"]),
	}
}

// cleanJSON strips markdown code fences the model may wrap around its answer
func cleanJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// imageList returns the string entries of v when v is a JSON array, nil otherwise
func imageList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}

	images := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			images = append(images, s)
		}
	}
	return images
}

func filterImages(images []string) []string {
	kept := make([]string, 0, len(images))
	for _, img := range images {
		if !strings.HasPrefix(img, "http") {
			continue
		}
		kept = append(kept, img)
		if len(kept) == models.MaxImagesPerProduct {
			break
		}
	}
	return kept
}

func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
	}
	return ""
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
