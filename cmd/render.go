package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chrisdamba/foodroadtrip/internal/models"
)

func renderItinerary(w io.Writer, result *models.SelectionResult) {
	fmt.Fprintln(w, "Trip Summary")
	fmt.Fprintf(w, "  Total days: %d | Stops: %d | Countries: %d | Avg rating: %.2f | Total cost: ~€%.0f\n",
		result.TotalDays, len(result.Stops), result.CountriesVisited, result.AvgRating, result.TotalCost)

	fmt.Fprintln(w, "\nItinerary")
	for _, block := range result.Itinerary {
		fmt.Fprintf(w, "\n%s (%d day(s))\n", block.City, len(block.Days))
		for _, d := range block.Days {
			r := d.Stop.Restaurant
			fmt.Fprintf(w, "  Day %d: %s\n", d.Day, r.Name)
			fmt.Fprintf(w, "    %s, %s | %s\n", r.City, r.Country, r.Cuisine)
			fmt.Fprintf(w, "    %s | %s\n", r.DisplayAddress(), r.DisplayPhone())
			fmt.Fprintf(w, "    Rating %.1f (%d reviews) | %s\n", r.Rating, r.ReviewsCount, d.Stop.CostLabel())
		}
	}

	if len(result.Stops) > 0 {
		labels := make([]string, len(result.Stops))
		for i, s := range result.Stops {
			labels[i] = fmt.Sprintf("%s %s (%.4f, %.4f)", s.Label(), s.Restaurant.Name, s.Restaurant.Location.Lat, s.Restaurant.Location.Lon)
		}
		fmt.Fprintf(w, "\nRoute: %s\n", strings.Join(labels, " -> "))
		fmt.Fprintf(w, "Map center: %.4f, %.4f\n", result.Center.Lat, result.Center.Lon)
	}
}

func renderFrame(w io.Writer, frame models.VisualizationFrame, limit int) {
	fmt.Fprintf(w, "Metric: %s | Restaurants: %d | Compressed: %t\n", frame.Metric, len(frame.Points), frame.Compressed)
	fmt.Fprintf(w, "Map center: %.4f, %.4f\n\n", frame.Center.Lat, frame.Center.Lon)
	for i, p := range frame.Points {
		if limit > 0 && i >= limit {
			fmt.Fprintf(w, "... %d more\n", len(frame.Points)-limit)
			break
		}
		r := p.Restaurant
		fmt.Fprintf(w, "%-40s %-15s %8.4f %9.4f %10.2f\n", r.Name, r.City, r.Location.Lat, r.Location.Lon, p.Magnitude)
	}
}

func renderStats(w io.Writer, stats models.CatalogStats, byCountry, byCuisine []models.GroupSummary) {
	fmt.Fprintf(w, "Restaurants: %d | Countries: %d", stats.TotalRestaurants, stats.Countries)
	if stats.AvgRating != nil {
		fmt.Fprintf(w, " | Avg rating: %.2f", *stats.AvgRating)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nTop countries by restaurants")
	for _, s := range stats.TopCountries {
		fmt.Fprintf(w, "  %-25s %d\n", s.Label, s.Count)
	}
	fmt.Fprintln(w, "\nCuisine distribution")
	for _, s := range stats.CuisineDistribution {
		fmt.Fprintf(w, "  %-25s %d\n", s.Label, s.Count)
	}
	renderGroups(w, "Best rated countries", byCountry)
	renderGroups(w, "Best rated cuisines", byCuisine)
}

func renderGroups(w io.Writer, title string, groups []models.GroupSummary) {
	fmt.Fprintf(w, "\n%s\n", title)
	for _, g := range groups {
		fmt.Fprintf(w, "  %-25s %.2f (%d restaurants, %d reviews)\n", g.Key, g.AvgRating, g.Count, g.TotalReviews)
	}
}
