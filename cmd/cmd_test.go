package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chrisdamba/foodroadtrip/internal/catalog"
	"github.com/chrisdamba/foodroadtrip/internal/models"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	rows := []models.Restaurant{
		{Name: "Le Bistro", City: "Paris", Country: "France", Cuisine: "French", Rating: 4.8, ReviewsCount: 900, PriceRange: "$$", Location: models.Location{Lat: 48.85, Lon: 2.35}},
		{Name: "Chez Marie", City: "Paris", Country: "France", Cuisine: "French", Rating: 4.5, ReviewsCount: 200, PriceRange: "$$$", Location: models.Location{Lat: 48.86, Lon: 2.34}},
		{Name: "Bouchon", City: "Lyon", Country: "France", Cuisine: "French", Rating: 4.6, ReviewsCount: 300, Location: models.Location{Lat: 45.76, Lon: 4.83}},
	}
	path := filepath.Join(t.TempDir(), "restaurants.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}
	defer f.Close()
	if err := catalog.WriteCSV(f, rows); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestWithDefaultDays(t *testing.T) {
	tests := []struct {
		name   string
		cities []string
		days   []models.CityDays
		want   string
	}{
		{"fills missing", []string{"Paris", "Lyon"}, []models.CityDays{{City: "Lyon", Days: 1}}, "Paris=2,Lyon=1"},
		{"follows city order", []string{"Lyon", "Paris"}, []models.CityDays{{City: "Paris", Days: 3}, {City: "Lyon", Days: 1}}, "Lyon=1,Paris=3"},
		{"keeps unselected", []string{"Paris"}, []models.CityDays{{City: "Rome", Days: 1}}, "Paris=2,Rome=1"},
		{"keeps repeats", []string{"Paris"}, []models.CityDays{{City: "Paris", Days: 1}, {City: "Paris", Days: 4}}, "Paris=1,Paris=4"},
		{"no cities", nil, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withDefaultDays(tt.cities, tt.days, 2)
			parts := make([]string, len(got))
			for i, cd := range got {
				parts[i] = cd.String()
			}
			if joined := strings.Join(parts, ","); joined != tt.want {
				t.Fatalf("withDefaultDays = %s, want %s", joined, tt.want)
			}
		})
	}
}

func TestPlanCommand(t *testing.T) {
	dataset := writeDataset(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"plan", "--source", "csv", "--dataset", dataset, "--city", "Paris", "--city", "Lyon", "--days", "Paris=2", "--days", "Lyon=1"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("plan: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Total days: 3 | Stops: 3 | Countries: 1",
		"Total cost: ~€120",
		"Day 1: Le Bistro",
		"Day 2: Chez Marie",
		"Day 3: Bouchon",
		"$$ (~€40)",
		"Address not available | N/A",
		"Stop 1 Le Bistro",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	result, ok := lastResult.Get()
	if !ok || len(result.Stops) != 3 {
		t.Fatalf("last result not cached: %+v", result)
	}
}

func TestStatsCommand(t *testing.T) {
	dataset := writeDataset(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"stats", "--source", "csv", "--dataset", dataset})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out.String(), "Restaurants: 3 | Countries: 1 | Avg rating: 4.63") {
		t.Fatalf("unexpected stats output:\n%s", out.String())
	}
}
