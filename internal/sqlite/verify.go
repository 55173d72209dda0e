// Post-load and post-migration consistency checks.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/petwell/petbase/internal/schema"
)

// orphanPreviewLimit bounds how many orphans a report carries verbatim;
// the total is always exact.
const orphanPreviewLimit = 5

// Orphan is one dependent row whose referenced parent key does not exist.
type Orphan struct {
	Table string
	Key   string
	Label string
}

// Report is the verifier output. It is informational: callers decide
// whether a nonzero orphan count is acceptable.
type Report struct {
	Generation int
	Orphans    []Orphan
	OrphanRows int
	Counts     map[string]int
}

// Verify resolves every declared foreign-key pair of the live schema
// generation with a left-anti-join and summarizes row counts per table.
// The generation is detected from the tables present in the database.
func Verify(db *sql.DB) (*Report, error) {
	generation, err := detectGeneration(db)
	if err != nil {
		return nil, err
	}

	checks := schema.Gen1Checks
	tables := schema.Gen1Tables
	if generation == 2 {
		checks = schema.Gen2Checks
		tables = schema.Gen2Tables
	}

	report := &Report{Generation: generation, Counts: make(map[string]int)}

	for _, check := range checks {
		if err := runCheck(db, check, report); err != nil {
			return nil, err
		}
	}

	for _, table := range tables {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}
		report.Counts[table] = count
	}

	return report, nil
}

// detectGeneration reports which schema generation the database holds.
func detectGeneration(db *sql.DB) (int, error) {
	for _, probe := range []struct {
		table      string
		generation int
	}{
		{schema.TableProvider, 2},
		{schema.TableComparison, 1},
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
			probe.table,
		).Scan(&name)
		if err == nil {
			return probe.generation, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("probing schema generation: %w", err)
		}
	}
	return 0, errors.New("no recognized schema generation in database")
}

// runCheck appends the orphans of one foreign-key pair to the report. NULL
// child keys are optional references, not orphans.
func runCheck(db *sql.DB, check schema.FKCheck, report *Report) error {
	query := fmt.Sprintf(
		`SELECT CAST(child.%s AS TEXT), COALESCE(child.%s, '')
         FROM %s child
         LEFT JOIN %s parent ON child.%s = parent.%s
         WHERE parent.%s IS NULL AND child.%s IS NOT NULL`,
		check.ChildColumn, check.LabelColumn,
		check.ChildTable,
		check.ParentTable, check.ChildColumn, check.ParentColumn,
		check.ParentColumn, check.ChildColumn,
	)

	rows, err := db.Query(query)
	if err != nil {
		return fmt.Errorf("checking %s.%s: %w", check.ChildTable, check.ChildColumn, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, label string
		if err := rows.Scan(&key, &label); err != nil {
			return fmt.Errorf("scanning orphan in %s: %w", check.ChildTable, err)
		}
		report.OrphanRows++
		if len(report.Orphans) < orphanPreviewLimit {
			report.Orphans = append(report.Orphans, Orphan{
				Table: check.ChildTable,
				Key:   key,
				Label: label,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating orphans in %s: %w", check.ChildTable, err)
	}
	return nil
}
