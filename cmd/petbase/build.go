// The build subcommand: full first-generation rebuild from the CSV sources.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petwell/petbase/internal/sqlite"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the database from the source CSV files",
	Long: `Build reads the provider comparison and coverage limits CSVs,
normalizes them into the relational schema, and replaces the database
file. The build runs against a temporary file and swaps it in only on
success, so a failed build leaves any existing database untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := sqlite.Build(cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d providers (%d skipped).\n", result.Providers.Loaded, result.Providers.Skipped)
		fmt.Printf("Imported %d coverage limits (%d skipped).\n", result.Limits.Loaded, result.Limits.Skipped)
		fmt.Printf("Seeded %d service subcategories.\n", result.Subcategories)
		printReport(result.Report)
		fmt.Printf("\nDatabase created: %s\n", cfg.DBPath)
		return nil
	},
}
