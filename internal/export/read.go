package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/showroom-catalog/showroom/internal/models"
)

// ReadFile loads products from path, detecting the format from its
// extension. A .json file may hold an array or one product per line.
func ReadFile(path string) ([]models.Product, error) {
	format, err := ParseFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if format == Parquet {
		info, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
		return ReadParquet(file, info.Size())
	}
	return Read(file, format)
}

// Read decodes products from r. Parquet needs random access, use
// ReadParquet for it.
func Read(r io.Reader, format Format) ([]models.Product, error) {
	var (
		products []models.Product
		err      error
	)

	switch format {
	case JSON:
		products, err = readJSON(r)
	case JSONL:
		products, err = readJSONL(r)
	case YAML:
		products, err = readYAML(r)
	case Parquet:
		data, rerr := io.ReadAll(r)
		if rerr != nil {
			return nil, fmt.Errorf("failed to read parquet: %w", rerr)
		}
		products, err = ReadParquet(bytes.NewReader(data), int64(len(data)))
	default:
		return nil, fmt.Errorf("unsupported import format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	for i := range products {
		products[i].Normalize()
	}
	return products, nil
}

func readJSON(r io.Reader) ([]models.Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '[' {
		return readJSONL(bytes.NewReader(trimmed))
	}

	var products []models.Product
	if err := json.Unmarshal(trimmed, &products); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return products, nil
}

func readJSONL(r io.Reader) ([]models.Product, error) {
	var products []models.Product
	scanner := bufio.NewScanner(r)

	const maxCapacity = 10 * 1024 * 1024 // 10MB per line
	scanner.Buffer(make([]byte, 64*1024), maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var p models.Product
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading JSONL: %w", err)
	}
	return products, nil
}

func readYAML(r io.Reader) ([]models.Product, error) {
	var doc CatalogFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return doc.Products, nil
}
