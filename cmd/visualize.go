package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chrisdamba/foodroadtrip/internal/engine"
	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/chrisdamba/foodroadtrip/internal/output"
	"github.com/spf13/cobra"
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Compute the column heights of the 3D restaurant map",
	Long: `Filter the catalog and derive one magnitude per restaurant from the chosen metric:
"review count", "rating", "popularity" or "uniform".`,
	Example: `  foodroadtrip visualize --metric popularity --country Italy --cuisine Pizza --export`,
	RunE:    runVisualize,
}

func init() {
	visualizeCmd.Flags().String("metric", models.MetricReviewCount, "magnitude metric")
	visualizeCmd.Flags().StringSlice("country", nil, "restrict to countries (repeatable)")
	visualizeCmd.Flags().StringSlice("city", nil, "restrict to cities (repeatable)")
	visualizeCmd.Flags().StringSlice("cuisine", nil, "restrict to cuisines (repeatable)")
	visualizeCmd.Flags().Float64("min-rating", 4.0, "minimum restaurant rating")
	visualizeCmd.Flags().Int("limit", 20, "number of points to print, 0 for all")
	visualizeCmd.Flags().Bool("export", false, "publish the frame to the configured output destination")
	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	rawMetric, _ := flags.GetString("metric")
	metric, err := engine.ParseMetric(rawMetric)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	var f models.Filter
	f.Countries, _ = flags.GetStringSlice("country")
	f.Cities, _ = flags.GetStringSlice("city")
	f.Cuisines, _ = flags.GetStringSlice("cuisine")
	f.MinRating, _ = flags.GetFloat64("min-rating")

	frame, err := engine.NewVisualizer(cfg.Visualization).Frame(engine.Apply(cat.Records(), f), metric)
	if err != nil {
		return err
	}
	if frame.Empty() {
		fmt.Fprintln(os.Stderr, "No restaurants found with these filters.")
		return nil
	}

	limit, _ := flags.GetInt("limit")
	renderFrame(cmd.OutOrStdout(), frame, limit)

	if export, _ := flags.GetBool("export"); !export {
		return nil
	}
	dest, err := output.NewDestination(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	runID, err := output.PublishFrame(dest, frame, time.Now())
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Frame exported to %s (run %s)\n", cfg.Output.Destination, runID)
	return nil
}
