// Package types defines the pipeline configuration, entity types for both
// schema generations, and standard errors for the petbase data pipeline.
package types

import (
	"errors"
	"path/filepath"
)

// Default source filenames, resolved relative to Config.DataDir when the
// explicit paths are left empty.
const (
	DefaultProvidersCSV = "Pet Insurance Comparison.csv"
	DefaultLimitsCSV    = "Coverage Limits.csv"
	DefaultDBName       = "insurance.db"
)

// Config carries every path the pipeline touches. Operations receive a
// Config from the caller; no package holds path state of its own.
type Config struct {
	// DataDir is the directory holding the source CSV files.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DBPath is the destination database file.
	DBPath string `json:"db_path" yaml:"db_path"`

	// ProvidersCSV and LimitsCSV override the default source locations
	// under DataDir when non-empty.
	ProvidersCSV string `json:"providers_csv" yaml:"providers_csv"`
	LimitsCSV    string `json:"limits_csv" yaml:"limits_csv"`
}

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data_dir must not be empty")
	ErrDBPathEmpty  = errors.New("db_path must not be empty")
)

// Pipeline errors.
var (
	ErrDatabaseMissing = errors.New("database file does not exist")
	ErrSourceMissing   = errors.New("source file does not exist")
)

// Validate checks that the Config is well-formed. DataDir may be empty when
// both source paths are set explicitly.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	if c.DataDir == "" && (c.ProvidersCSV == "" || c.LimitsCSV == "") {
		return ErrDataDirEmpty
	}
	return nil
}

// ProvidersPath returns the resolved provider CSV location.
func (c Config) ProvidersPath() string {
	if c.ProvidersCSV != "" {
		return c.ProvidersCSV
	}
	return filepath.Join(c.DataDir, DefaultProvidersCSV)
}

// LimitsPath returns the resolved coverage-limits CSV location.
func (c Config) LimitsPath() string {
	if c.LimitsCSV != "" {
		return c.LimitsCSV
	}
	return filepath.Join(c.DataDir, DefaultLimitsCSV)
}
