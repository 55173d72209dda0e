// Package paths resolves where the pipeline finds its configuration file,
// source data directory, and database file. Precedence everywhere is
// explicit flag, then config value, then environment variable, then the
// project-root default — so nothing is ever baked into a component.
package paths

import (
	"os"
	"path/filepath"

	"github.com/petwell/petbase/pkg/types"
)

// Project-root-relative defaults.
const (
	DefaultConfigName = "petbase.yaml"
	DefaultDataDir    = "Data"
)

// Environment variable overrides.
const (
	EnvConfigFile = "PETBASE_CONFIG"
	EnvDataDir    = "PETBASE_DATA_DIR"
	EnvDBPath     = "PETBASE_DB"
)

// ResolveConfigFile returns the configuration file location:
// --config flag > PETBASE_CONFIG > <cwd>/petbase.yaml.
func ResolveConfigFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigFile); env != "" {
		return env
	}
	return DefaultConfigName
}

// ResolveDataDir returns the source data directory:
// --data-dir flag > config value > PETBASE_DATA_DIR > <cwd>/Data.
func ResolveDataDir(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return env
	}
	return DefaultDataDir
}

// ResolveDBPath returns the database file location:
// --db flag > config value > PETBASE_DB > <cwd>/insurance.db.
func ResolveDBPath(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	if env := os.Getenv(EnvDBPath); env != "" {
		return env
	}
	return filepath.Join(".", types.DefaultDBName)
}
