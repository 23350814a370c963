package engine

import (
	"testing"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

func TestRankOrder(t *testing.T) {
	records := []models.Restaurant{
		restaurant("mid-many", "Paris", 4.5, 100),
		restaurant("mid-few", "Paris", 4.5, 50),
		restaurant("top", "Paris", 4.8, 10),
		restaurant("mid-many-2", "Paris", 4.5, 100),
		restaurant("low", "Paris", 3.0, 10000),
	}
	got := names(Rank(records))
	want := []string{"top", "mid-many", "mid-many-2", "mid-few", "low"}
	if !equal(got, want) {
		t.Fatalf("Rank = %v, want %v", got, want)
	}
	if records[0].Name != "mid-many" {
		t.Fatalf("Rank modified its input")
	}
}

func TestSelectPerCityTopN(t *testing.T) {
	pool := []models.Restaurant{
		restaurant("a", "Paris", 4.5, 100),
		restaurant("b", "Paris", 4.5, 50),
		restaurant("c", "Paris", 4.8, 10),
	}
	selected, contributions, warnings := SelectPerCity(pool, []models.CityDays{{City: "Paris", Days: 2}})
	if got := names(selected); !equal(got, []string{"c", "a"}) {
		t.Fatalf("selected = %v, want [c a]", got)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings %v", warnings)
	}
	if len(contributions) != 1 || contributions[0].Taken != 2 || contributions[0].Requested != 2 {
		t.Fatalf("contributions = %+v", contributions)
	}
}

func TestSelectPerCityShortage(t *testing.T) {
	pool := []models.Restaurant{restaurant("only", "Lyon", 4.2, 5)}
	selected, contributions, warnings := SelectPerCity(pool, []models.CityDays{{City: "Lyon", Days: 3}})
	if len(selected) != 1 || contributions[0].Taken != 1 {
		t.Fatalf("selected %d stops, contribution %+v", len(selected), contributions[0])
	}
	if len(warnings) != 1 || warnings[0].Reason != models.WarningShortage {
		t.Fatalf("warnings = %+v", warnings)
	}
	want := "Fewer restaurants than requested days for Lyon: 1 available, 3 requested."
	if got := warnings[0].Message(); got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestSelectPerCityEmptyCity(t *testing.T) {
	pool := []models.Restaurant{restaurant("p", "Paris", 4.2, 5)}
	selected, contributions, warnings := SelectPerCity(pool, []models.CityDays{{City: "Rome", Days: 2}, {City: "Paris", Days: 1}})
	if got := names(selected); !equal(got, []string{"p"}) {
		t.Fatalf("selected = %v", got)
	}
	if len(warnings) != 1 || warnings[0].City != "Rome" || warnings[0].Reason != models.WarningNoRestaurants {
		t.Fatalf("warnings = %+v", warnings)
	}
	if contributions[0].Taken != 0 || contributions[1].Taken != 1 {
		t.Fatalf("contributions = %+v", contributions)
	}
}

func TestSelectPerCityFollowsDaysOrder(t *testing.T) {
	pool := []models.Restaurant{
		restaurant("p1", "Paris", 4.9, 1),
		restaurant("l1", "Lyon", 4.1, 1),
		restaurant("p2", "Paris", 4.8, 1),
	}
	selected, _, _ := SelectPerCity(pool, []models.CityDays{{City: "Lyon", Days: 1}, {City: "Paris", Days: 2}})
	if got := names(selected); !equal(got, []string{"l1", "p1", "p2"}) {
		t.Fatalf("selected = %v", got)
	}
}
