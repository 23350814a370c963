package postgres

import (
	"context"

	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

type RestaurantRepository struct {
	pool *pgxpool.Pool
}

func NewRestaurantRepository(pool *pgxpool.Pool) *RestaurantRepository {
	return &RestaurantRepository{pool: pool}
}

var restaurantColumns = []string{
	"id", "name", "city", "country", "cuisine", "rating",
	"reviews_count", "price_range", "latitude", "longitude",
	"address", "phone",
}

func restaurantValues(r *models.Restaurant) []interface{} {
	id := r.ID
	if id == "" {
		id = cuid.New()
	}
	return []interface{}{
		id,
		r.Name,
		r.City,
		r.Country,
		r.Cuisine,
		r.Rating,
		r.ReviewsCount,
		nullable(r.PriceRange),
		r.Location.Lat,
		r.Location.Lon,
		nullable(r.Address),
		nullable(r.Phone),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *RestaurantRepository) BulkCreate(ctx context.Context, restaurants []*models.Restaurant) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"restaurants"},
		restaurantColumns,
		pgx.CopyFromSlice(len(restaurants), func(i int) ([]interface{}, error) {
			return restaurantValues(restaurants[i]), nil
		}),
	)
	return err
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	query := `
        INSERT INTO restaurants (
            id, name, city, country, cuisine, rating, reviews_count,
            price_range, latitude, longitude, address, phone
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
        )
    `
	_, err := r.pool.Exec(ctx, query, restaurantValues(restaurant)...)
	return err
}

func (r *RestaurantRepository) GetAll(ctx context.Context) ([]*models.Restaurant, error) {
	query := `
        SELECT
            id, name, city, country, cuisine, rating, reviews_count,
            COALESCE(price_range, ''), latitude, longitude,
            COALESCE(address, ''), COALESCE(phone, '')
        FROM restaurants
        ORDER BY seq
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*models.Restaurant
	for rows.Next() {
		restaurant := &models.Restaurant{}
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.City,
			&restaurant.Country,
			&restaurant.Cuisine,
			&restaurant.Rating,
			&restaurant.ReviewsCount,
			&restaurant.PriceRange,
			&restaurant.Location.Lat,
			&restaurant.Location.Lon,
			&restaurant.Address,
			&restaurant.Phone,
		)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, rows.Err()
}

func (r *RestaurantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count)
	return count, err
}

func (r *RestaurantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE restaurants")
	return err
}
