// The tags subcommand: assign descriptive tags to evolved-schema products.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petwell/petbase/internal/sqlite"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Assign descriptive tags to products (evolved schema only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.OpenExisting(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		updated, missing, err := sqlite.ApplyTags(db)
		if err != nil {
			return err
		}

		for _, name := range missing {
			fmt.Printf("Warning: product %q not found.\n", name)
		}
		fmt.Printf("Updated %d products.\n", updated)
		return nil
	},
}
