package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/chrisdamba/foodroadtrip/internal/catalog"
	"github.com/chrisdamba/foodroadtrip/internal/factories"
	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/chrisdamba/foodroadtrip/internal/repositories"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const bulkBatchSize = 500

var seedCmd = &cobra.Command{
	Use:     "seed",
	Short:   "Generate a synthetic European restaurant catalog",
	Example: `  foodroadtrip seed --count 500 --target csv --path data/restaurants.csv`,
	RunE:    runSeed,
}

func init() {
	seedCmd.Flags().Int("count", 0, "number of restaurants (default seed.count)")
	seedCmd.Flags().Int64("random-seed", 0, "random seed (default seed.random_seed)")
	seedCmd.Flags().String("target", "csv", "csv, parquet, postgres or elasticsearch")
	seedCmd.Flags().String("path", "", "output file for csv and parquet targets (default dataset.path)")
	seedCmd.Flags().StringSlice("city", nil, "restrict generation to these seeding cities")
	seedCmd.Flags().Bool("replace", false, "delete existing repository rows first")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	count := cfg.Seed.Count
	if flags.Changed("count") {
		count, _ = flags.GetInt("count")
	}
	seed := cfg.Seed.RandomSeed
	if flags.Changed("random-seed") {
		seed, _ = flags.GetInt64("random-seed")
	}
	if count <= 0 {
		return fmt.Errorf("--count must be positive, got %d", count)
	}

	var cities []factories.City
	names, _ := flags.GetStringSlice("city")
	for _, name := range names {
		c, ok := factories.FindCity(name)
		if !ok {
			return fmt.Errorf("unknown seeding city %q", name)
		}
		cities = append(cities, c)
	}

	rows := factories.NewRestaurantFactory(seed).Generate(count, cities)
	log.Printf("Generated %d restaurants with seed %d", len(rows), seed)

	target, _ := flags.GetString("target")
	switch target {
	case "csv", "parquet":
		path, _ := flags.GetString("path")
		if path == "" {
			path = cfg.Dataset.Path
		}
		return writeCatalogFile(target, path, rows)
	default:
		replace, _ := flags.GetBool("replace")
		return writeRepository(cmd.Context(), target, rows, replace)
	}
}

func writeCatalogFile(format, path string, rows []models.Restaurant) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	if format == "parquet" {
		if err := catalog.WriteParquet(path, rows); err != nil {
			return err
		}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := catalog.WriteCSV(f, rows); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	log.Printf("Wrote %d restaurants to %s", len(rows), path)
	return nil
}

// writeRepository bulk-inserts rows in batches behind a progress bar.
func writeRepository(ctx context.Context, target string, rows []models.Restaurant, replace bool) error {
	repo, closeFn, err := openRepository(ctx, cfg, target)
	if err != nil {
		return err
	}
	defer closeFn()

	if replace {
		if err := repo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear %s: %w", target, err)
		}
	}
	if err := bulkInsert(ctx, repo, rows, fmt.Sprintf("Writing to %s", target)); err != nil {
		return err
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	log.Printf("Repository %s now holds %d restaurants", target, total)
	return nil
}

func bulkInsert(ctx context.Context, repo repositories.RestaurantRepository, rows []models.Restaurant, description string) error {
	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	for start := 0; start < len(rows); start += bulkBatchSize {
		end := start + bulkBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := make([]*models.Restaurant, 0, end-start)
		for i := start; i < end; i++ {
			batch = append(batch, &rows[i])
		}
		if err := repo.BulkCreate(ctx, batch); err != nil {
			return fmt.Errorf("bulk insert of rows %d-%d failed: %w", start, end, err)
		}
		bar.Add(len(batch))
	}
	return bar.Finish()
}
