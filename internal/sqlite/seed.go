// Reference-data seeding. Service subcategories are master data, not
// derived from the source files.
package sqlite

import (
	"database/sql"
	"fmt"
)

// serviceSubcategories is the fixed reference vocabulary, taken from the
// Blue Cross Type A product (the most comprehensive list), sorted
// alphabetically. display_order follows list position.
var serviceSubcategories = []string{
	"Anaesthetists",
	"Chemotherapy Benefit",
	"Consultation",
	"Euthanasia",
	"Hospitalization",
	"Medication",
	"Miscellaneous",
	"MRI & CT",
	"Operating Theatre",
	"Prosthesis or Wheelchair",
	"Specialist Consultation",
	"Surgery",
	"Ultrasound & Lab Tests",
	"X-rays",
}

// SeedServiceSubcategories inserts the reference vocabulary with
// insert-or-ignore semantics, so reseeding an already-seeded database is a
// no-op. Returns the number of rows actually inserted.
func SeedServiceSubcategories(db *sql.DB) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning subcategory seed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO service_subcategories (name, display_order) VALUES (?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("preparing subcategory insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i, name := range serviceSubcategories {
		res, err := stmt.Exec(name, i+1)
		if err != nil {
			return 0, fmt.Errorf("seeding subcategory %s: %w", name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing subcategory seed: %w", err)
	}
	return inserted, nil
}
