package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Filter is a conjunction of inclusion predicates. An empty set means no
// restriction on that attribute.
type Filter struct {
	Countries []string `mapstructure:"countries" json:"countries,omitempty"`
	Cities    []string `mapstructure:"cities" json:"cities,omitempty"`
	Cuisines  []string `mapstructure:"cuisines" json:"cuisines,omitempty"`
	MinRating float64  `mapstructure:"min_rating" json:"min_rating"`
}

// CityDays is one entry of the ordered days-per-city list.
type CityDays struct {
	City string `mapstructure:"city" json:"city"`
	Days int    `mapstructure:"days" json:"days"`
}

// TripConstraints is the user-supplied configuration of one road trip.
// DaysPerCity is ordered: itinerary day numbering follows its order.
type TripConstraints struct {
	MinRating   float64    `mapstructure:"min_rating" json:"min_rating"`
	Cuisines    []string   `mapstructure:"cuisines" json:"cuisines,omitempty"`
	Countries   []string   `mapstructure:"countries" json:"countries,omitempty"`
	Cities      []string   `mapstructure:"cities" json:"cities"`
	DaysPerCity []CityDays `mapstructure:"days_per_city" json:"days_per_city"`
}

// ValidationError describes a TripConstraints value that breaks an invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Filter derives the Filter Pipeline predicates from the constraints.
func (tc TripConstraints) Filter() Filter {
	return Filter{
		Countries: tc.Countries,
		Cities:    tc.Cities,
		Cuisines:  tc.Cuisines,
		MinRating: tc.MinRating,
	}
}

// TotalDays is the sum of the requested days over all cities.
func (tc TripConstraints) TotalDays() int {
	total := 0
	for _, cd := range tc.DaysPerCity {
		total += cd.Days
	}
	return total
}

// Validate checks that every days-per-city key is a selected city, appears
// once, and asks for at least one day. It does not check that Cities is
// non-empty; that is reported separately as a configuration error.
func (tc TripConstraints) Validate() error {
	selected := make(map[string]bool, len(tc.Cities))
	for _, c := range tc.Cities {
		selected[c] = true
	}
	seen := make(map[string]bool, len(tc.DaysPerCity))
	for _, cd := range tc.DaysPerCity {
		if !selected[cd.City] {
			return &ValidationError{Field: "days_per_city", Reason: fmt.Sprintf("%q is not a selected city", cd.City)}
		}
		if seen[cd.City] {
			return &ValidationError{Field: "days_per_city", Reason: fmt.Sprintf("%q is listed more than once", cd.City)}
		}
		if cd.Days < 1 {
			return &ValidationError{Field: "days_per_city", Reason: fmt.Sprintf("%q needs at least 1 day, got %d", cd.City, cd.Days)}
		}
		seen[cd.City] = true
	}
	return nil
}

// ParseCityDays parses the "City=N" form used by flags and config files.
func ParseCityDays(s string) (CityDays, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 {
		return CityDays{}, fmt.Errorf("expected CITY=DAYS, got %q", s)
	}
	city := strings.TrimSpace(s[:i])
	days, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return CityDays{}, fmt.Errorf("parsing days for %q: %w", city, err)
	}
	if city == "" {
		return CityDays{}, fmt.Errorf("expected CITY=DAYS, got %q", s)
	}
	return CityDays{City: city, Days: days}, nil
}

func (cd CityDays) String() string {
	return fmt.Sprintf("%s=%d", cd.City, cd.Days)
}
