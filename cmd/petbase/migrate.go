// The migrate subcommand: evolve an existing database to the second
// schema generation.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petwell/petbase/internal/schema"
	"github.com/petwell/petbase/internal/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the database to the evolved schema generation",
	Long: `Migrate backs the database file up, then reshapes each table in
dependency order with the rename-recreate-migrate-drop sequence, carrying
data forward under the new shape. A failing table rolls back whole and
stops the run; tables already migrated stay migrated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backupPath, err := sqlite.Backup(cfg.DBPath)
		if err != nil {
			return err
		}
		fmt.Printf("Backup created: %s\n", backupPath)

		db, err := sqlite.OpenExisting(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := sqlite.ApplyPlan(db, schema.Gen2Plan); err != nil {
			return err
		}
		fmt.Println("Migration complete.")

		report, err := sqlite.Verify(db)
		if err != nil {
			return err
		}
		printReport(report)
		return nil
	},
}
