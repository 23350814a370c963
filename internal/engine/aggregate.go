package engine

import "github.com/chrisdamba/foodroadtrip/internal/models"

// Summarize computes the trip aggregates over a non-empty stop sequence.
// Callers must guard against empty input; an empty slice yields a zero
// summary rather than a NaN average.
func Summarize(stops []models.Stop) models.TripSummary {
	var summary models.TripSummary
	if len(stops) == 0 {
		return summary
	}
	countries := make(map[string]bool)
	var ratingSum float64
	for _, s := range stops {
		if s.EstimatedCost != nil {
			summary.TotalCost += *s.EstimatedCost
		}
		countries[s.Restaurant.Country] = true
		ratingSum += s.Restaurant.Rating
	}
	summary.CountriesVisited = len(countries)
	summary.AvgRating = ratingSum / float64(len(stops))
	return summary
}
