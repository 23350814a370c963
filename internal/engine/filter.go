package engine

import "github.com/chrisdamba/foodroadtrip/internal/models"

// Apply returns the records satisfying every active predicate of f, in input
// order. An empty set predicate is inactive. The input is not modified.
func Apply(records []models.Restaurant, f models.Filter) []models.Restaurant {
	countries := toSet(f.Countries)
	cities := toSet(f.Cities)
	cuisines := toSet(f.Cuisines)

	out := make([]models.Restaurant, 0, len(records))
	for _, r := range records {
		if len(countries) > 0 && !countries[r.Country] {
			continue
		}
		if len(cities) > 0 && !cities[r.City] {
			continue
		}
		if len(cuisines) > 0 && !cuisines[r.Cuisine] {
			continue
		}
		if r.Rating < f.MinRating {
			continue
		}
		out = append(out, r)
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
