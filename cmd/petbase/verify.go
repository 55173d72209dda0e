// The verify subcommand: read-only integrity report.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/petwell/petbase/internal/sqlite"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Report orphaned foreign keys and row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.OpenExisting(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		report, err := sqlite.Verify(db)
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	},
}

// printReport writes the verifier output in the pipeline's usual shape: an
// orphan preview capped at five entries, then per-table row counts.
func printReport(report *sqlite.Report) {
	if report.OrphanRows > 0 {
		fmt.Printf("WARNING: found %d rows without a matching parent:\n", report.OrphanRows)
		for _, o := range report.Orphans {
			fmt.Printf("  - %s: key=%s (%s)\n", o.Table, o.Key, o.Label)
		}
	} else {
		fmt.Println("All foreign keys resolve.")
	}

	fmt.Println("\nDatabase summary:")
	for _, table := range tableOrder(report) {
		fmt.Printf("  - %s: %d\n", table, report.Counts[table])
	}
}

// tableOrder returns the report's tables sorted for stable output.
func tableOrder(report *sqlite.Report) []string {
	tables := make([]string, 0, len(report.Counts))
	for table := range report.Counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	return tables
}
