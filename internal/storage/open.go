package storage

import (
	"context"
	"fmt"

	"github.com/showroom-catalog/showroom/internal/config"
)

// Open returns the Store selected by the storage configuration
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Kind {
	case "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.DataDir)
	case "redis":
		return ConnectRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case "mongo":
		return ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unsupported store: %s", cfg.Kind)
	}
}
