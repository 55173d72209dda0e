// Package sqlite implements the store side of the petbase pipeline: opening
// the database, the atomic first-generation build, CSV loading, reference
// seeding, the table migration engine, and integrity verification.
//
// The database is an exclusively-owned resource for the duration of a run:
// one writer, no readers. Callers must take any consumer of the file offline
// before building or migrating.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/petwell/petbase/pkg/types"
)

// Open opens a SQLite database file with foreign-key enforcement on. The
// pool is pinned to a single connection so that PRAGMA state set here (and
// toggled during migration) holds for every statement of the run.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	return db, nil
}

// OpenExisting opens a database that must already exist. A missing file is
// a precondition failure, not an invitation to create an empty store.
func OpenExisting(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", types.ErrDatabaseMissing, path)
		}
		return nil, fmt.Errorf("stat database %s: %w", path, err)
	}
	return Open(path)
}

// BuildResult summarizes one first-generation rebuild.
type BuildResult struct {
	Providers     LoadResult
	Limits        LoadResult
	Subcategories int
	Report        *Report
}

// Build rebuilds the first-generation database from the configured CSV
// sources. The build runs against a uniquely-named temporary file next to
// the destination and replaces the destination only after every step has
// succeeded, so a failure mid-build leaves any prior database untouched.
func Build(cfg types.Config) (*BuildResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, src := range []string{cfg.ProvidersPath(), cfg.LimitsPath()} {
		if _, err := os.Stat(src); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", types.ErrSourceMissing, src)
			}
			return nil, fmt.Errorf("stat source %s: %w", src, err)
		}
	}

	tmpPath := filepath.Join(
		filepath.Dir(cfg.DBPath),
		fmt.Sprintf("%s.tmp-%s", filepath.Base(cfg.DBPath), uuid.NewString()),
	)

	result, err := buildInto(cfg, tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return nil, err
	}

	if err := os.Rename(tmpPath, cfg.DBPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("replacing %s: %w", cfg.DBPath, err)
	}
	return result, nil
}

// buildInto creates the schema and loads all data into the database at
// path. The connection is closed before returning so the finished file can
// be renamed over the destination.
func buildInto(cfg types.Config, path string) (*BuildResult, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := CreateGen1Schema(db); err != nil {
		return nil, err
	}

	var result BuildResult
	if result.Providers, err = LoadProviders(db, cfg.ProvidersPath()); err != nil {
		return nil, err
	}
	if result.Limits, err = LoadCoverageLimits(db, cfg.LimitsPath()); err != nil {
		return nil, err
	}
	if result.Subcategories, err = SeedServiceSubcategories(db); err != nil {
		return nil, err
	}
	if result.Report, err = Verify(db); err != nil {
		return nil, err
	}

	if err := db.Close(); err != nil {
		return nil, fmt.Errorf("closing built database: %w", err)
	}
	return &result, nil
}
