package engine

import (
	"fmt"
	"sort"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

// topCountries is how many countries the distribution chart shows.
const topCountries = 10

const (
	GroupByCountry = "country"
	GroupByCuisine = "cuisine"
)

// Stats summarises records for the statistics view.
func Stats(records []models.Restaurant) models.CatalogStats {
	stats := models.CatalogStats{TotalRestaurants: len(records)}
	if len(records) == 0 {
		return stats
	}

	var sum float64
	countries := make(map[string]int)
	cuisines := make(map[string]int)
	for _, r := range records {
		sum += r.Rating
		countries[r.Country]++
		cuisines[r.Cuisine]++
	}
	avg := sum / float64(len(records))
	stats.AvgRating = &avg
	stats.Countries = len(countries)

	stats.TopCountries = countShares(countries)
	if len(stats.TopCountries) > topCountries {
		stats.TopCountries = stats.TopCountries[:topCountries]
	}
	stats.CuisineDistribution = countShares(cuisines)
	return stats
}

// countShares orders counts descending, ties by label.
func countShares(counts map[string]int) []models.CountShare {
	shares := make([]models.CountShare, 0, len(counts))
	for label, n := range counts {
		shares = append(shares, models.CountShare{Label: label, Count: n})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Label < shares[j].Label
	})
	return shares
}

// GroupSummaries aggregates records per country or cuisine, ordered by mean
// rating descending with ties by key. limit <= 0 keeps every group.
func GroupSummaries(records []models.Restaurant, by string, limit int) ([]models.GroupSummary, error) {
	var key func(models.Restaurant) string
	switch by {
	case GroupByCountry:
		key = func(r models.Restaurant) string { return r.Country }
	case GroupByCuisine:
		key = func(r models.Restaurant) string { return r.Cuisine }
	default:
		return nil, fmt.Errorf("unknown grouping %q", by)
	}

	type acc struct {
		sum     float64
		reviews int
		count   int
	}
	groups := make(map[string]*acc)
	for _, r := range records {
		k := key(r)
		a, ok := groups[k]
		if !ok {
			a = &acc{}
			groups[k] = a
		}
		a.sum += r.Rating
		a.reviews += r.ReviewsCount
		a.count++
	}

	out := make([]models.GroupSummary, 0, len(groups))
	for k, a := range groups {
		out = append(out, models.GroupSummary{
			Key:          k,
			AvgRating:    a.sum / float64(a.count),
			TotalReviews: a.reviews,
			Count:        a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].Key < out[j].Key
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
