package factories

import (
	"testing"

	"github.com/chrisdamba/foodroadtrip/internal/catalog"
)

func TestGenerateRoundRobin(t *testing.T) {
	rf := NewRestaurantFactory(7)
	cities := []City{EuropeanCities[0], EuropeanCities[2]}
	rows := rf.Generate(6, cities)
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	for i, r := range rows {
		want := cities[i%2]
		if r.City != want.Name || r.Country != want.Country {
			t.Fatalf("row %d in %s/%s, want %s/%s", i, r.City, r.Country, want.Name, want.Country)
		}
	}
}

func TestGeneratedRowsSurviveNormalization(t *testing.T) {
	rf := NewRestaurantFactory(42)
	rows := rf.Generate(300, nil)
	cat := catalog.New(rows)
	if cat.Dropped() != 0 {
		t.Fatalf("normalization dropped %d generated rows", cat.Dropped())
	}

	names := make(map[string]bool, len(rows))
	for _, r := range rows {
		if names[r.Name] {
			t.Fatalf("duplicate name %q", r.Name)
		}
		names[r.Name] = true
		if r.Rating < 3 || r.Rating > 5 {
			t.Fatalf("rating %v out of range", r.Rating)
		}
		if r.ReviewsCount < 0 {
			t.Fatalf("negative reviews %d", r.ReviewsCount)
		}
	}
	if got := len(cat.Countries()); got < 10 {
		t.Fatalf("got %d countries, want the whole city table", got)
	}
}

func TestSameSeedSameCatalog(t *testing.T) {
	a := NewRestaurantFactory(3).Generate(20, nil)
	b := NewRestaurantFactory(3).Generate(20, nil)
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Rating != b[i].Rating || a[i].Location != b[i].Location {
			t.Fatalf("row %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestFindCity(t *testing.T) {
	c, ok := FindCity("lisbon")
	if !ok || c.Country != "Portugal" {
		t.Fatalf("FindCity(lisbon) = %+v, %v", c, ok)
	}
	if _, ok := FindCity("Atlantis"); ok {
		t.Fatalf("unexpected city")
	}
}
