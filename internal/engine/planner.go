// Package engine turns a restaurant catalog and user constraints into a
// ranked per-city itinerary, its aggregates and route, and derives the
// per-record magnitudes of the 3D visualization. Every call is synchronous
// and works on fresh copies; nothing is shared between invocations.
package engine

import (
	"errors"

	"github.com/chrisdamba/foodroadtrip/internal/catalog"
	"github.com/chrisdamba/foodroadtrip/internal/models"
)

var (
	// ErrNoCitiesSelected is the configuration error of a trip request with
	// no cities. No computation is performed.
	ErrNoCitiesSelected = errors.New("please select at least one city")
	// ErrNoItinerary reports that the filters eliminated every candidate in
	// every selected city.
	ErrNoItinerary = errors.New("no itinerary could be generated: try relaxing your filters")
)

// Planner generates road-trip itineraries.
type Planner struct {
	Costs CostTable
}

// NewPlanner returns a planner using costs, or the default table when costs
// is empty.
func NewPlanner(costs CostTable) *Planner {
	if len(costs) == 0 {
		costs = DefaultCostTable()
	}
	return &Planner{Costs: costs}
}

// Generate runs filter, per-city selection, aggregation and assembly.
// Warnings are returned even when err is ErrNoItinerary so the caller can
// explain which cities came up empty.
func (p *Planner) Generate(cat *catalog.Catalog, tc models.TripConstraints) (*models.SelectionResult, []models.Warning, error) {
	if len(tc.Cities) == 0 {
		return nil, nil, ErrNoCitiesSelected
	}
	if err := tc.Validate(); err != nil {
		return nil, nil, err
	}

	pool := Apply(cat.Records(), tc.Filter())
	selected, contributions, warnings := SelectPerCity(pool, tc.DaysPerCity)
	if len(selected) == 0 {
		return nil, warnings, ErrNoItinerary
	}

	stops := make([]models.Stop, len(selected))
	for i, r := range selected {
		stops[i] = models.Stop{
			Index:         i,
			Day:           i + 1,
			Restaurant:    r,
			EstimatedCost: p.Costs.EstimatePtr(r.PriceRange),
		}
	}

	blocks, route := Assemble(contributions, stops)
	center, _ := models.Centroid(route)

	daysPerCity := make([]models.CityDays, len(tc.DaysPerCity))
	copy(daysPerCity, tc.DaysPerCity)

	return &models.SelectionResult{
		Stops:       stops,
		DaysPerCity: daysPerCity,
		TotalDays:   tc.TotalDays(),
		TripSummary: Summarize(stops),
		Itinerary:   blocks,
		Route:       route,
		Center:      center,
		Warnings:    warnings,
	}, warnings, nil
}
