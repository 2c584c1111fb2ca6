package cmd

import (
	"context"
	"fmt"

	"github.com/showroom-catalog/showroom/internal/catalog"
	"github.com/showroom-catalog/showroom/internal/config"
	"github.com/showroom-catalog/showroom/internal/extraction"
	"github.com/showroom-catalog/showroom/internal/logger"
	"github.com/showroom-catalog/showroom/internal/showroom"
	"github.com/showroom-catalog/showroom/internal/storage"
)

// runtime is the dependency graph shared by the subcommands
type runtime struct {
	cfg     *config.Config
	log     logger.Logger
	blobs   storage.Store
	catalog *catalog.Store
	app     *showroom.App
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	blobs, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Kind, err)
	}

	store := catalog.NewStore(catalog.NewPersister(blobs, cfg.Storage.Key), log)
	store.LoadInitial(ctx)

	client, err := extraction.NewClientFromConfig(cfg, log)
	if err != nil {
		_ = blobs.Close(ctx)
		return nil, err
	}

	app := showroom.New(store, client, showroom.Options{SupportedSite: cfg.Extraction.SupportedSite}, log)

	log.Debug("Runtime ready",
		logger.String("provider", cfg.Extraction.Provider),
		logger.String("model", cfg.ModelName()),
		logger.String("store", cfg.Storage.Kind))

	return &runtime{
		cfg:     cfg,
		log:     log,
		blobs:   blobs,
		catalog: store,
		app:     app,
	}, nil
}

func (r *runtime) Close(ctx context.Context) {
	if err := r.blobs.Close(ctx); err != nil {
		r.log.Warn("Failed to close store", logger.Error(err))
	}
	_ = r.log.Sync()
}
