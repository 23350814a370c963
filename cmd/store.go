package cmd

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodroadtrip/internal/catalog"
	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/chrisdamba/foodroadtrip/internal/repositories"
	"github.com/chrisdamba/foodroadtrip/internal/repositories/postgres"
	"github.com/chrisdamba/foodroadtrip/internal/repositories/search"
)

// openRepository connects to the named store. The returned func releases it.
func openRepository(ctx context.Context, cfg *models.Config, kind string) (repositories.RestaurantRepository, func(), error) {
	switch kind {
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewRestaurantRepository(pool), pool.Close, nil
	case "elasticsearch":
		client, err := search.NewClient(cfg.Elasticsearch)
		if err != nil {
			return nil, nil, err
		}
		repo := search.NewRestaurantRepository(client, cfg.Elasticsearch.Index)
		if err := repo.EnsureIndex(ctx); err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported repository: %s", kind)
	}
}

func openSource(ctx context.Context, cfg *models.Config) (catalog.Source, func(), error) {
	switch cfg.Dataset.Source {
	case "", "csv":
		return &catalog.CSVSource{Path: cfg.Dataset.Path}, func() {}, nil
	case "parquet":
		return &catalog.ParquetSource{Path: cfg.Dataset.Path}, func() {}, nil
	case "postgres", "elasticsearch":
		repo, closeFn, err := openRepository(ctx, cfg, cfg.Dataset.Source)
		if err != nil {
			return nil, nil, err
		}
		return &catalog.RepositorySource{Repo: repo}, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unsupported dataset source: %s", cfg.Dataset.Source)
	}
}

func loadCatalog(ctx context.Context, cfg *models.Config) (*catalog.Catalog, error) {
	src, closeFn, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return catalog.Load(ctx, src)
}
