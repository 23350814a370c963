package repositories

import (
	"context"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

// RestaurantRepository persists the restaurant catalog. GetAll returns rows
// in insertion order so ranking tie-breaks stay reproducible across loads.
type RestaurantRepository interface {
	BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error
	Create(ctx context.Context, restaurant *models.Restaurant) error
	GetAll(ctx context.Context) ([]*models.Restaurant, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
