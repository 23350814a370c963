package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the configured catalog source into a repository",
	Long: `Load the catalog from dataset.source (normalized, invalid rows dropped) and
bulk-write it to postgres or elasticsearch.`,
	Example: `  foodroadtrip import --source csv --dataset data/european_restaurants.csv --target postgres`,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetString("target")
		if target == cfg.Dataset.Source {
			return fmt.Errorf("source and target are both %s", target)
		}
		cat, err := loadCatalog(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		replace, _ := cmd.Flags().GetBool("replace")
		return writeRepository(cmd.Context(), target, cat.Records(), replace)
	},
}

func init() {
	importCmd.Flags().String("target", "postgres", "postgres or elasticsearch")
	importCmd.Flags().Bool("replace", true, "delete existing repository rows first")
	rootCmd.AddCommand(importCmd)
}
