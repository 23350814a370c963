package cmd

import (
	"fmt"
	"os"

	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/chrisdamba/foodroadtrip/internal/session"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *models.Config

	// lastResult holds the itinerary of the current invocation for the
	// export step.
	lastResult session.ResultCache
)

var rootCmd = &cobra.Command{
	Use:   "foodroadtrip",
	Short: "Plans multi-day food road trips across European restaurants",
	Long: `foodroadtrip is a CLI tool that turns a catalog of European restaurants and your
trip constraints into a day-by-day itinerary, summarizes the catalog, and derives
the per-restaurant magnitudes of a 3D map. Results can be exported to files, S3 or Kafka.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./foodroadtrip.yaml or $HOME/foodroadtrip.yaml)")
	rootCmd.PersistentFlags().String("source", "", "catalog source: csv, parquet, postgres or elasticsearch")
	rootCmd.PersistentFlags().String("dataset", "", "path of the csv or parquet catalog")
	rootCmd.PersistentFlags().String("output", "", "export destination: console, json, csv, parquet or kafka")
	rootCmd.PersistentFlags().String("output-path", "", "base directory of file exports")

	viper.BindPFlag("dataset.source", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("dataset.path", rootCmd.PersistentFlags().Lookup("dataset"))
	viper.BindPFlag("output.destination", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("output.path", rootCmd.PersistentFlags().Lookup("output-path"))
}

// initConfig loads an optional .env file so its variables reach viper's
// environment lookup.
func initConfig() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
