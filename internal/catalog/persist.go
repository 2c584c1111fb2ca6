package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/showroom-catalog/showroom/internal/models"
	"github.com/showroom-catalog/showroom/internal/storage"
)

// DefaultStorageKey is the single key holding the whole catalog
const DefaultStorageKey = "my_awesome_products_db"

// Persister encodes the catalog as one JSON array under one key
type Persister struct {
	blobs storage.BlobStore
	key   string
}

func NewPersister(blobs storage.BlobStore, key string) *Persister {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Persister{blobs: blobs, key: key}
}

// Load returns the persisted catalog. A missing key is an empty catalog,
// not an error.
func (p *Persister) Load(ctx context.Context) ([]models.Product, error) {
	raw, found, err := p.blobs.Get(ctx, p.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if !found {
		return []models.Product{}, nil
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for i := range products {
		products[i].Normalize()
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Save overwrites the persisted catalog with products
func (p *Persister) Save(ctx context.Context, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := p.blobs.Set(ctx, p.key, string(data)); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}
