package engine

import "github.com/chrisdamba/foodroadtrip/internal/models"

// Assemble lays the stops out day by day. Cities are walked in contribution
// order; each consumes exactly as many stops as it contributed, and cities
// that contributed none get no block. The route connects every stop in
// order, across city boundaries.
func Assemble(contributions []Contribution, stops []models.Stop) ([]models.CityBlock, []models.Location) {
	var blocks []models.CityBlock
	next := 0
	for _, c := range contributions {
		if c.Taken == 0 {
			continue
		}
		block := models.CityBlock{City: c.City, RequestedDays: c.Requested}
		for i := 0; i < c.Taken && next < len(stops); i++ {
			block.Days = append(block.Days, models.DayPlan{Day: next + 1, Stop: stops[next]})
			next++
		}
		blocks = append(blocks, block)
	}

	route := make([]models.Location, 0, len(stops))
	for _, s := range stops {
		route = append(route, s.Restaurant.Location)
	}
	return blocks, route
}
