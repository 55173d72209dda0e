// Root command and shared configuration resolution.
package main

import (
	"github.com/spf13/cobra"

	"github.com/petwell/petbase/internal/paths"
	"github.com/petwell/petbase/pkg/types"
)

// Global flag values.
var (
	flagConfigFile string
	flagDataDir    string
	flagDBPath     string
)

// cfg is the resolved pipeline configuration, populated by
// PersistentPreRunE before any subcommand runs.
var cfg types.Config

var rootCmd = &cobra.Command{
	Use:   "petbase",
	Short: "petbase builds and evolves the pet-insurance comparison database",
	Long: `petbase ingests the pet-insurance comparison spreadsheets into a
relational SQLite database and evolves that database between schema
generations without data loss. It is an offline batch tool: take any
reader of the database offline before running it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		v, err := loadConfig(paths.ResolveConfigFile(flagConfigFile))
		if err != nil {
			return err
		}

		cfg = types.Config{
			DataDir:      paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir)),
			DBPath:       paths.ResolveDBPath(flagDBPath, v.GetString(cfgKeyDBPath)),
			ProvidersCSV: v.GetString(cfgKeyProvidersCSV),
			LimitsCSV:    v.GetString(cfgKeyLimitsCSV),
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: ./petbase.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory holding the source CSV files (default: ./Data)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "database file (default: ./insurance.db)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(versionCmd)
}
