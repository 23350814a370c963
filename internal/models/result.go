package models

import "fmt"

// Stop is one restaurant bound to a day of the itinerary.
type Stop struct {
	Index      int        `json:"index"`
	Day        int        `json:"day"`
	Restaurant Restaurant `json:"restaurant"`
	// EstimatedCost is nil when the price tier has no estimate, which is
	// distinct from a zero-cost stop.
	EstimatedCost *float64 `json:"estimated_cost"`
}

// Label is the 1-based marker text used on maps and lists.
func (s Stop) Label() string {
	return fmt.Sprintf("Stop %d", s.Index+1)
}

// CostLabel renders the price tier with its estimate when one exists.
func (s Stop) CostLabel() string {
	if s.EstimatedCost == nil {
		return s.Restaurant.PriceRange
	}
	return fmt.Sprintf("%s (~€%d)", s.Restaurant.PriceRange, int(*s.EstimatedCost))
}

// Warning is a non-fatal, caller-actionable condition raised while selecting
// stops for a city.
type Warning struct {
	City      string `json:"city"`
	Reason    string `json:"reason"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

func (w Warning) Message() string {
	switch w.Reason {
	case WarningNoRestaurants:
		return fmt.Sprintf("No restaurants available for %s with these filters.", w.City)
	case WarningShortage:
		return fmt.Sprintf("Fewer restaurants than requested days for %s: %d available, %d requested.", w.City, w.Available, w.Requested)
	default:
		return fmt.Sprintf("%s: %s", w.City, w.Reason)
	}
}

// DayPlan is one day of a city block.
type DayPlan struct {
	Day  int  `json:"day"`
	Stop Stop `json:"stop"`
}

// CityBlock groups the consecutive days spent in one city.
type CityBlock struct {
	City          string    `json:"city"`
	RequestedDays int       `json:"requested_days"`
	Days          []DayPlan `json:"days"`
}

// TripSummary holds the aggregates derived from the selected stops.
type TripSummary struct {
	TotalCost        float64 `json:"total_cost"`
	CountriesVisited int     `json:"countries_visited"`
	AvgRating        float64 `json:"avg_rating"`
}

// SelectionResult is the output of one itinerary generation.
type SelectionResult struct {
	Stops       []Stop     `json:"stops"`
	DaysPerCity []CityDays `json:"days_per_city"`
	TotalDays   int        `json:"total_days"`
	TripSummary
	Itinerary []CityBlock `json:"itinerary"`
	Route     []Location  `json:"route"`
	Center    Location    `json:"center"`
	Warnings  []Warning   `json:"warnings,omitempty"`
}
