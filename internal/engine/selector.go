package engine

import (
	"sort"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

// Contribution records how many stops a city actually received.
type Contribution struct {
	City      string
	Requested int
	Taken     int
}

// Rank sorts records by rating then review count, both descending. Records
// equal on both keep their relative input order. The input is not modified.
func Rank(records []models.Restaurant) []models.Restaurant {
	ranked := make([]models.Restaurant, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].ReviewsCount > ranked[j].ReviewsCount
	})
	return ranked
}

// SelectPerCity picks the top min(days, pool size) ranked records of each
// city, walking days in order. Cities with an empty pool are skipped; short
// pools are clamped. Both cases produce a warning, never an error.
func SelectPerCity(pool []models.Restaurant, days []models.CityDays) ([]models.Restaurant, []Contribution, []models.Warning) {
	byCity := make(map[string][]models.Restaurant)
	for _, r := range pool {
		byCity[r.City] = append(byCity[r.City], r)
	}

	var (
		selected      []models.Restaurant
		contributions []Contribution
		warnings      []models.Warning
	)
	for _, cd := range days {
		group := byCity[cd.City]
		take := cd.Days
		switch {
		case len(group) == 0:
			warnings = append(warnings, models.Warning{
				City:      cd.City,
				Reason:    models.WarningNoRestaurants,
				Available: 0,
				Requested: cd.Days,
			})
			take = 0
		case len(group) < cd.Days:
			warnings = append(warnings, models.Warning{
				City:      cd.City,
				Reason:    models.WarningShortage,
				Available: len(group),
				Requested: cd.Days,
			})
			take = len(group)
		}
		if take < 0 {
			take = 0
		}
		if take > 0 {
			selected = append(selected, Rank(group)[:take]...)
		}
		contributions = append(contributions, Contribution{City: cd.City, Requested: cd.Days, Taken: take})
	}
	return selected, contributions, warnings
}
