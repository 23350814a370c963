package models

// CountShare is a label with the number of restaurants carrying it.
type CountShare struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CatalogStats summarises a filtered set of restaurants.
type CatalogStats struct {
	TotalRestaurants int `json:"total_restaurants"`
	// AvgRating is nil when there is nothing to average.
	AvgRating           *float64     `json:"avg_rating"`
	Countries           int          `json:"countries"`
	TopCountries        []CountShare `json:"top_countries"`
	CuisineDistribution []CountShare `json:"cuisine_distribution"`
}

// GroupSummary aggregates the restaurants sharing a country or cuisine.
type GroupSummary struct {
	Key          string  `json:"key"`
	AvgRating    float64 `json:"avg_rating"`
	TotalReviews int     `json:"total_reviews"`
	Count        int     `json:"count"`
}
