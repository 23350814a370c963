package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/chrisdamba/foodroadtrip/internal/catalog"
	"github.com/chrisdamba/foodroadtrip/internal/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	paris := func(name string, rating float64, reviews int, price string) models.Restaurant {
		r := restaurant(name, "Paris", rating, reviews)
		r.PriceRange = price
		return r
	}
	lyon := restaurant("bouchon", "Lyon", 4.6, 300)
	lyon.Location = models.Location{Lat: 45.76, Lon: 4.83}
	lyon.PriceRange = "?"
	rome := restaurant("trattoria", "Rome", 4.9, 800)
	rome.Country = "Italy"
	rome.Cuisine = "Italian"
	rome.PriceRange = models.PriceLuxury
	rome.Location = models.Location{Lat: 41.90, Lon: 12.49}

	cat := catalog.New([]models.Restaurant{
		paris("bistro", 4.8, 900, models.PriceModerate),
		paris("brasserie", 4.5, 200, models.PriceExpensive),
		paris("cafe", 3.5, 50, models.PriceBudget),
		lyon,
		rome,
	})
	if cat.Len() != 5 {
		t.Fatalf("fixture catalog has %d rows", cat.Len())
	}
	return cat
}

func TestGenerate(t *testing.T) {
	p := NewPlanner(nil)
	tc := models.TripConstraints{
		MinRating:   4.0,
		Cities:      []string{"Paris", "Lyon", "Rome"},
		DaysPerCity: []models.CityDays{{City: "Paris", Days: 2}, {City: "Lyon", Days: 3}, {City: "Rome", Days: 1}},
	}
	result, warnings, err := p.Generate(testCatalog(t), tc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var got []string
	for i, s := range result.Stops {
		if s.Index != i || s.Day != i+1 {
			t.Fatalf("stop %d has index %d day %d", i, s.Index, s.Day)
		}
		got = append(got, s.Restaurant.Name)
	}
	if !equal(got, []string{"bistro", "brasserie", "bouchon", "trattoria"}) {
		t.Fatalf("stops = %v", got)
	}
	if len(warnings) != 1 || warnings[0].City != "Lyon" || warnings[0].Available != 1 || warnings[0].Requested != 3 {
		t.Fatalf("warnings = %+v", warnings)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("result warnings = %+v", result.Warnings)
	}

	if result.TotalDays != 6 {
		t.Fatalf("TotalDays = %d, want the requested 6", result.TotalDays)
	}
	if result.TotalCost != 40+80+150 {
		t.Fatalf("TotalCost = %v, want 270", result.TotalCost)
	}
	if result.Stops[2].EstimatedCost != nil {
		t.Fatalf("unknown tier got an estimate")
	}
	if result.CountriesVisited != 2 {
		t.Fatalf("CountriesVisited = %d", result.CountriesVisited)
	}
	if want := (4.8 + 4.5 + 4.6 + 4.9) / 4; math.Abs(result.AvgRating-want) > 1e-9 {
		t.Fatalf("AvgRating = %v, want %v", result.AvgRating, want)
	}

	days := 0
	for _, block := range result.Itinerary {
		for _, d := range block.Days {
			days++
			if d.Day != days {
				t.Fatalf("day numbering has a gap at %d", d.Day)
			}
		}
	}
	if len(result.Itinerary) != 3 || len(result.Itinerary[1].Days) != 1 || result.Itinerary[1].RequestedDays != 3 {
		t.Fatalf("itinerary = %+v", result.Itinerary)
	}
	if len(result.Route) != 4 || result.Route[3] != (models.Location{Lat: 41.90, Lon: 12.49}) {
		t.Fatalf("route = %+v", result.Route)
	}
}

func TestGenerateNoCities(t *testing.T) {
	_, _, err := NewPlanner(nil).Generate(testCatalog(t), models.TripConstraints{MinRating: 4})
	if !errors.Is(err, ErrNoCitiesSelected) {
		t.Fatalf("err = %v, want ErrNoCitiesSelected", err)
	}
}

func TestGenerateNothingPassesFilters(t *testing.T) {
	tc := models.TripConstraints{
		MinRating:   4.95,
		Cities:      []string{"Paris"},
		DaysPerCity: []models.CityDays{{City: "Paris", Days: 2}},
	}
	result, warnings, err := NewPlanner(nil).Generate(testCatalog(t), tc)
	if !errors.Is(err, ErrNoItinerary) {
		t.Fatalf("err = %v, want ErrNoItinerary", err)
	}
	if result != nil {
		t.Fatalf("expected no result, got %+v", result)
	}
	if len(warnings) != 1 || warnings[0].Reason != models.WarningNoRestaurants {
		t.Fatalf("warnings = %+v", warnings)
	}
}

func TestGenerateValidation(t *testing.T) {
	tc := models.TripConstraints{
		Cities:      []string{"Paris"},
		DaysPerCity: []models.CityDays{{City: "Lyon", Days: 1}},
	}
	_, _, err := NewPlanner(nil).Generate(testCatalog(t), tc)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want a ValidationError", err)
	}
}

func TestGenerateCityWithoutDaysContributesNothing(t *testing.T) {
	tc := models.TripConstraints{
		MinRating:   4,
		Cities:      []string{"Paris", "Rome"},
		DaysPerCity: []models.CityDays{{City: "Rome", Days: 1}},
	}
	result, _, err := NewPlanner(nil).Generate(testCatalog(t), tc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Stops) != 1 || result.Stops[0].Restaurant.City != "Rome" {
		t.Fatalf("stops = %+v", result.Stops)
	}
}

func TestCostTable(t *testing.T) {
	costs := DefaultCostTable()
	for tier, want := range map[string]float64{"$": 20, "$$": 40, "$$$": 80, "$$$$": 150} {
		got, ok := costs.Estimate(tier)
		if !ok || got != want {
			t.Fatalf("Estimate(%q) = %v, %v", tier, got, ok)
		}
	}
	for _, tier := range []string{"", "?", "$$$$$", "€"} {
		if _, ok := costs.Estimate(tier); ok {
			t.Fatalf("Estimate(%q) should have no estimate", tier)
		}
		if costs.EstimatePtr(tier) != nil {
			t.Fatalf("EstimatePtr(%q) should be nil", tier)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (models.TripSummary{}) {
		t.Fatalf("Summarize(nil) = %+v", s)
	}
}
