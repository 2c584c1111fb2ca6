package catalog

import (
	"context"
	"sync"

	"github.com/showroom-catalog/showroom/internal/logger"
	"github.com/showroom-catalog/showroom/internal/models"
)

// Store is the in-memory catalog, newest first. Every mutation rewrites
// the persisted copy; persistence failures are logged and the in-memory
// state stays authoritative.
type Store struct {
	persister *Persister
	log       logger.Logger

	mu       sync.RWMutex
	products []models.Product
}

func NewStore(persister *Persister, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		persister: persister,
		log:       log,
		products:  []models.Product{},
	}
}

// LoadInitial replaces the in-memory catalog with the persisted one, or
// with an empty catalog when it cannot be read.
func (s *Store) LoadInitial(ctx context.Context) {
	products, err := s.persister.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load catalog, starting empty", logger.Error(err))
		products = []models.Product{}
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	s.log.Info("Catalog loaded", logger.Int("products", len(products)))
}

// Publish prepends p and persists the catalog
func (s *Store) Publish(ctx context.Context, p models.Product) {
	p = p.Clone()
	p.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]models.Product{p}, s.products...)
	s.persist(ctx)
}

// PrependAll inserts products ahead of the current catalog, keeping their
// order, and persists once. Products whose id is already present are
// skipped; the number inserted is returned.
func (s *Store) PrependAll(ctx context.Context, products []models.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.products)+len(products))
	for _, p := range s.products {
		seen[p.ID] = struct{}{}
	}

	added := make([]models.Product, 0, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup || p.ID == "" {
			continue
		}
		seen[p.ID] = struct{}{}
		p = p.Clone()
		p.Normalize()
		added = append(added, p)
	}
	if len(added) == 0 {
		return 0
	}

	s.products = append(added, s.products...)
	s.persist(ctx)
	return len(added)
}

// Remove deletes the first product with id. The catalog is persisted even
// when nothing matched. It reports whether a product was removed.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i:i], s.products[i+1:]...)
			removed = true
			break
		}
	}

	s.persist(ctx)
	return removed
}

// Products returns a copy of the catalog, newest first
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Product{}, false
}

func (s *Store) Contains(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// caller holds s.mu
func (s *Store) persist(ctx context.Context) {
	if err := s.persister.Save(ctx, s.products); err != nil {
		s.log.Error("Failed to persist catalog", logger.Error(err), logger.Int("products", len(s.products)))
	}
}
