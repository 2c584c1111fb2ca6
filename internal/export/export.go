package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/showroom-catalog/showroom/internal/models"
)

// Format is a catalog file encoding
type Format string

const (
	JSON    Format = "json"
	JSONL   Format = "jsonl"
	YAML    Format = "yaml"
	Parquet Format = "parquet"
	CSV     Format = "csv"
)

// ParseFormat accepts a format name or a file path with a known extension
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(filepath.Ext(s), "."))
	if name == "" {
		name = strings.ToLower(s)
	}

	switch name {
	case "json":
		return JSON, nil
	case "jsonl", "ndjson":
		return JSONL, nil
	case "yaml", "yml":
		return YAML, nil
	case "parquet":
		return Parquet, nil
	case "csv":
		return CSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, jsonl, yaml, parquet, csv)", s)
	}
}

// CatalogFile is the YAML document layout
type CatalogFile struct {
	ExportedAt string           `yaml:"exported_at"`
	Count      int              `yaml:"count"`
	Products   []models.Product `yaml:"products"`
}

// Write encodes products to w in format
func Write(w io.Writer, format Format, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}

	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(products); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case JSONL:
		enc := json.NewEncoder(w)
		for _, p := range products {
			if err := enc.Encode(p); err != nil {
				return fmt.Errorf("failed to encode product %s: %w", p.ID, err)
			}
		}
		return nil
	case YAML:
		return writeYAML(w, products)
	case Parquet:
		return WriteParquet(w, products)
	case CSV:
		return writeCSV(w, products)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeYAML(w io.Writer, products []models.Product) error {
	doc := CatalogFile{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(products),
		Products:   products,
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

var csvHeader = []string{"id", "title", "price", "original_url", "images", "phone_number", "whatsapp", "description"}

func writeCSV(w io.Writer, products []models.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range products {
		row := []string{
			p.ID,
			p.Title,
			p.Price,
			p.OriginalURL,
			strings.Join(p.Images, " "),
			p.PhoneNumber,
			p.WhatsApp,
			p.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
