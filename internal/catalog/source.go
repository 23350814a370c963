package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/chrisdamba/foodroadtrip/internal/repositories"
)

// Source produces the raw restaurant rows of a catalog.
type Source interface {
	Load(ctx context.Context) ([]models.Restaurant, error)
}

// Load reads every row from src and builds a normalised catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	rows, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	c := New(rows)
	log.Printf("Catalog loaded: %d restaurants (%d rows dropped)", c.Len(), c.Dropped())
	return c, nil
}

// RepositorySource adapts a restaurant repository to a catalog source.
type RepositorySource struct {
	Repo repositories.RestaurantRepository
}

func (s *RepositorySource) Load(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Restaurant, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out, nil
}

// SliceSource serves rows already held in memory.
type SliceSource []models.Restaurant

func (s SliceSource) Load(ctx context.Context) ([]models.Restaurant, error) {
	out := make([]models.Restaurant, len(s))
	copy(out, s)
	return out, nil
}
