package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chrisdamba/foodroadtrip/internal/catalog"
	"github.com/chrisdamba/foodroadtrip/internal/engine"
	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/chrisdamba/foodroadtrip/internal/output"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a day-by-day restaurant itinerary",
	Long: `Generate a road trip with one top-rated restaurant per day in each selected city.
Cities without a --days entry get trip.default_days. Without --city the trip uses
trip.days_per_city from the config, or the first three cities of the catalog.`,
	Example: `  foodroadtrip plan --city Paris --city Lyon --days Paris=3 --days Lyon=1 --min-rating 4 --cuisine French`,
	RunE:    runPlan,
}

func init() {
	planCmd.Flags().StringSlice("city", nil, "city to include, in trip order (repeatable)")
	planCmd.Flags().StringArray("days", nil, "days in a city as CITY=N (repeatable)")
	planCmd.Flags().Float64("min-rating", 0, "minimum restaurant rating (default trip.default_min_rating)")
	planCmd.Flags().StringSlice("cuisine", nil, "preferred cuisines (repeatable)")
	planCmd.Flags().StringSlice("country", nil, "countries to visit (repeatable)")
	planCmd.Flags().Bool("export", false, "publish the itinerary to the configured output destination")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}

	tc, err := tripConstraints(cmd, cat, cfg)
	if err != nil {
		lastResult.Clear()
		return err
	}

	planner := engine.NewPlanner(engine.CostTable(cfg.Pricing))
	result, warnings, err := planner.Generate(cat, tc)
	printWarnings(warnings)
	if err != nil {
		lastResult.Clear()
		return err
	}
	lastResult.Set(result)

	renderItinerary(cmd.OutOrStdout(), result)

	if export, _ := cmd.Flags().GetBool("export"); export {
		return exportItinerary(cmd)
	}
	return nil
}

// tripConstraints merges flags with the trip config section.
func tripConstraints(cmd *cobra.Command, cat *catalog.Catalog, cfg *models.Config) (models.TripConstraints, error) {
	flags := cmd.Flags()
	cities, _ := flags.GetStringSlice("city")
	dayArgs, _ := flags.GetStringArray("days")
	cuisines, _ := flags.GetStringSlice("cuisine")
	countries, _ := flags.GetStringSlice("country")

	minRating := cfg.Trip.DefaultMinRating
	if flags.Changed("min-rating") {
		minRating, _ = flags.GetFloat64("min-rating")
	}

	var days []models.CityDays
	for _, arg := range dayArgs {
		cd, err := models.ParseCityDays(arg)
		if err != nil {
			return models.TripConstraints{}, fmt.Errorf("--days: %w", err)
		}
		days = append(days, cd)
	}

	if len(cities) == 0 && len(days) == 0 && len(cfg.Trip.DaysPerCity) > 0 {
		days = append(days, cfg.Trip.DaysPerCity...)
		for _, cd := range days {
			cities = append(cities, cd.City)
		}
	}
	if len(cities) == 0 {
		cities = cat.DefaultCities(countries)
		if len(cities) > 0 {
			fmt.Fprintf(os.Stderr, "No --city given, planning for %v\n", cities)
		}
	}

	tc := models.TripConstraints{
		MinRating:   minRating,
		Cuisines:    cuisines,
		Countries:   countries,
		Cities:      cities,
		DaysPerCity: withDefaultDays(cities, days, cfg.Trip.DefaultDays),
	}
	if cfg.Trip.MaxDays > 0 {
		for _, cd := range tc.DaysPerCity {
			if cd.Days > cfg.Trip.MaxDays {
				return tc, &models.ValidationError{
					Field:  "days_per_city",
					Reason: fmt.Sprintf("%q asks for %d days, the limit is %d", cd.City, cd.Days, cfg.Trip.MaxDays),
				}
			}
		}
	}
	return tc, nil
}

// withDefaultDays orders the days list by city selection order and fills
// cities that have no entry. Repeated entries and entries for unselected
// cities are kept at the end so validation can report them.
func withDefaultDays(cities []string, days []models.CityDays, defaultDays int) []models.CityDays {
	given := make(map[string]int, len(days))
	var firsts, rest []models.CityDays
	for _, cd := range days {
		if _, dup := given[cd.City]; dup {
			rest = append(rest, cd)
			continue
		}
		given[cd.City] = cd.Days
		firsts = append(firsts, cd)
	}

	out := make([]models.CityDays, 0, len(cities)+len(rest))
	selected := make(map[string]bool, len(cities))
	for _, city := range cities {
		if selected[city] {
			continue
		}
		selected[city] = true
		n, ok := given[city]
		if !ok {
			n = defaultDays
		}
		out = append(out, models.CityDays{City: city, Days: n})
	}
	for _, cd := range firsts {
		if !selected[cd.City] {
			out = append(out, cd)
		}
	}
	return append(out, rest...)
}

func exportItinerary(cmd *cobra.Command) error {
	result, ok := lastResult.Get()
	if !ok {
		return fmt.Errorf("no itinerary to export")
	}
	dest, err := output.NewDestination(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	runID, err := output.PublishItinerary(dest, result, time.Now())
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Itinerary exported to %s (run %s)\n", cfg.Output.Destination, runID)
	return nil
}

func printWarnings(warnings []models.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w.Message())
	}
}
