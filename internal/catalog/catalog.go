// Package catalog holds the immutable in-memory restaurant table and the
// loaders that fill it.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

// Catalog is a read-only table of restaurants. It is safe for concurrent use
// because nothing mutates it after New returns.
type Catalog struct {
	records []models.Restaurant
	dropped int
}

// New normalises rows and builds a catalog from the ones that survive.
// The input slice is not retained.
func New(rows []models.Restaurant) *Catalog {
	c := &Catalog{records: make([]models.Restaurant, 0, len(rows))}
	for _, r := range rows {
		n, ok := Normalize(r)
		if !ok {
			c.dropped++
			continue
		}
		c.records = append(c.records, n)
	}
	return c
}

// Normalize applies the load-time cleaning rules. It reports false for rows
// that cannot be placed on a map or carry an impossible rating.
func Normalize(r models.Restaurant) (models.Restaurant, bool) {
	if !r.Location.Valid() {
		return r, false
	}
	if math.IsNaN(r.Rating) || r.Rating < 0 || r.Rating > 5 || r.ReviewsCount < 0 {
		return r, false
	}
	r.Name = strings.TrimSpace(r.Name)
	r.City = orUnknown(r.City)
	r.Country = orUnknown(r.Country)
	r.Cuisine = orUnknown(PrimaryCuisine(r.Cuisine))
	r.PriceRange = strings.TrimSpace(r.PriceRange)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	return r, true
}

// PrimaryCuisine returns the first token of a comma-joined cuisine list.
func PrimaryCuisine(cuisines string) string {
	first, _, _ := strings.Cut(cuisines, ",")
	return strings.TrimSpace(first)
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.UnknownValue
	}
	return s
}

// Len is the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Dropped is the number of input rows rejected by Normalize.
func (c *Catalog) Dropped() int {
	return c.dropped
}

// Records returns a copy of the table in load order.
func (c *Catalog) Records() []models.Restaurant {
	out := make([]models.Restaurant, len(c.records))
	copy(out, c.records)
	return out
}

// Each calls fn for every record in load order until fn returns false.
func (c *Catalog) Each(fn func(models.Restaurant) bool) {
	for _, r := range c.records {
		if !fn(r) {
			return
		}
	}
}

// Countries returns the sorted distinct country values.
func (c *Catalog) Countries() []string {
	return c.distinct(func(r models.Restaurant) (string, bool) { return r.Country, true })
}

// Cuisines returns the sorted distinct cuisine values.
func (c *Catalog) Cuisines() []string {
	return c.distinct(func(r models.Restaurant) (string, bool) { return r.Cuisine, true })
}

// Cities returns the sorted distinct cities, restricted to the given
// countries when any are given.
func (c *Catalog) Cities(countries []string) []string {
	allowed := toSet(countries)
	return c.distinct(func(r models.Restaurant) (string, bool) {
		if len(allowed) > 0 && !allowed[r.Country] {
			return "", false
		}
		return r.City, true
	})
}

// DefaultCities is the planner's initial selection: the first three cities
// of Cities(countries), or all of them when there are fewer.
func (c *Catalog) DefaultCities(countries []string) []string {
	cities := c.Cities(countries)
	if len(cities) > 3 {
		cities = cities[:3]
	}
	return cities
}

func (c *Catalog) distinct(key func(models.Restaurant) (string, bool)) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range c.records {
		k, ok := key(r)
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
