package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/showroom-catalog/showroom/internal/models"
)

type productRow struct {
	ID          string   `parquet:"id"`
	OriginalURL string   `parquet:"original_url"`
	Title       string   `parquet:"title"`
	Description string   `parquet:"description"`
	Price       string   `parquet:"price"`
	Images      []string `parquet:"images,list"`
	Sources     []string `parquet:"sources,list"`
	PhoneNumber string   `parquet:"phone_number,optional"`
	WhatsApp    string   `parquet:"whatsapp,optional"`
}

func toRow(p models.Product) productRow {
	return productRow{
		ID:          p.ID,
		OriginalURL: p.OriginalURL,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Images:      p.Images,
		Sources:     p.Sources,
		PhoneNumber: p.PhoneNumber,
		WhatsApp:    p.WhatsApp,
	}
}

func (r productRow) product() models.Product {
	p := models.Product{
		ID:          r.ID,
		OriginalURL: r.OriginalURL,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Images:      append([]string(nil), r.Images...),
		Sources:     append([]string(nil), r.Sources...),
		PhoneNumber: r.PhoneNumber,
		WhatsApp:    r.WhatsApp,
	}
	p.Normalize()
	return p
}

// WriteParquet writes products as a single row group
func WriteParquet(w io.Writer, products []models.Product) error {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, toRow(p))
	}

	writer := parquet.NewGenericWriter[productRow](w)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// ReadParquet loads every product from a parquet file of size bytes
func ReadParquet(r io.ReaderAt, size int64) ([]models.Product, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[productRow](pf)
	defer reader.Close()

	products := make([]models.Product, 0, pf.NumRows())
	for {
		rows := make([]productRow, 128)
		n, err := reader.Read(rows)
		for _, row := range rows[:n] {
			products = append(products, row.product())
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return products, nil
}
