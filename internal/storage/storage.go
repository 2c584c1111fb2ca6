package storage

import (
	"context"
	"sync"
)

// BlobStore keeps opaque string values under string keys
type BlobStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Store is a BlobStore holding a backend connection
type Store interface {
	BlobStore
	Close(ctx context.Context) error
}

// MemoryStore is a process local Store
type MemoryStore struct {
	blobs map[string]string
	mu    sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string]string),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, exists := s.blobs[key]
	return value, exists, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }
