package cmd

import (
	"github.com/chrisdamba/foodroadtrip/internal/engine"
	"github.com/chrisdamba/foodroadtrip/internal/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the restaurant catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		cat, err := loadCatalog(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		var f models.Filter
		f.Countries, _ = flags.GetStringSlice("country")
		f.Cuisines, _ = flags.GetStringSlice("cuisine")
		limit, _ := flags.GetInt("limit")

		records := engine.Apply(cat.Records(), f)
		byCountry, err := engine.GroupSummaries(records, engine.GroupByCountry, limit)
		if err != nil {
			return err
		}
		byCuisine, err := engine.GroupSummaries(records, engine.GroupByCuisine, limit)
		if err != nil {
			return err
		}
		renderStats(cmd.OutOrStdout(), engine.Stats(records), byCountry, byCuisine)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringSlice("country", nil, "restrict to countries (repeatable)")
	statsCmd.Flags().StringSlice("cuisine", nil, "restrict to cuisines (repeatable)")
	statsCmd.Flags().Int("limit", 10, "number of groups in the rankings")
	rootCmd.AddCommand(statsCmd)
}
