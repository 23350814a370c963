package engine

import "github.com/chrisdamba/foodroadtrip/internal/models"

func restaurant(name, city string, rating float64, reviews int) models.Restaurant {
	return models.Restaurant{
		Name:         name,
		City:         city,
		Country:      "France",
		Cuisine:      "French",
		Rating:       rating,
		ReviewsCount: reviews,
		PriceRange:   models.PriceModerate,
		Location:     models.Location{Lat: 48.85, Lon: 2.35},
	}
}

func names(records []models.Restaurant) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
