package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/petwell/petbase/internal/schema"
)

// CreateGen1Schema creates the first-generation tables and indexes in
// dependency order.
func CreateGen1Schema(db *sql.DB) error {
	for _, ddl := range schema.Gen1DDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}
	for _, ddl := range schema.Gen1IndexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating indexes: %w", err)
		}
	}
	return nil
}
