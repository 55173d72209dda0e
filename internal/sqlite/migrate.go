// Table migration engine: rename, recreate, migrate, drop.
//
// SQLite cannot alter column types or constraints in place, so a structural
// change to a populated table runs as a four-step choreography inside one
// transaction: rename the table aside, create the new shape under the
// original name, copy the mapped columns across, drop the renamed table.
// Foreign-key enforcement is off for the duration; the pragma must run
// outside the transaction, where SQLite would silently ignore it.
package sqlite

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/petwell/petbase/internal/schema"
)

// Apply migrates one table to the shape declared by m. On any step failure
// the transaction rolls back in full, which also undoes the rename: the
// table survives under its original name in its old shape. The returned
// error names the table and wraps the underlying cause.
func Apply(db *sql.DB, m schema.Migration) error {
	if _, err := db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("migrating %s: disabling foreign keys: %w", m.Table, err)
	}
	defer db.Exec("PRAGMA foreign_keys = ON")

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrating %s: beginning transaction: %w", m.Table, err)
	}
	defer tx.Rollback()

	oldName := m.Table + "_old"
	if _, err := tx.Exec(fmt.Sprintf("ALTER TABLE %s RENAME TO %s", m.Table, oldName)); err != nil {
		return fmt.Errorf("migrating %s: renaming: %w", m.Table, err)
	}

	if _, err := tx.Exec(m.CreateSQL); err != nil {
		return fmt.Errorf("migrating %s: creating new shape: %w", m.Table, err)
	}

	cols := strings.Join(m.Columns, ", ")
	copySQL := fmt.Sprintf("INSERT INTO %s (%s) SELECT %s FROM %s", m.Table, cols, cols, oldName)
	if _, err := tx.Exec(copySQL); err != nil {
		return fmt.Errorf("migrating %s: copying rows: %w", m.Table, err)
	}

	if _, err := tx.Exec(fmt.Sprintf("DROP TABLE %s", oldName)); err != nil {
		return fmt.Errorf("migrating %s: dropping old table: %w", m.Table, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrating %s: committing: %w", m.Table, err)
	}
	return nil
}

// ApplyPlan migrates tables in the declared dependency order, stopping at
// the first failure so dependent tables are never reshaped on top of an
// inconsistent parent.
func ApplyPlan(db *sql.DB, plan []schema.Migration) error {
	for _, m := range plan {
		if err := Apply(db, m); err != nil {
			return err
		}
	}
	return nil
}

// Backup copies the database file aside before a migration run and returns
// the backup path. The copy carries a unique suffix so repeated runs never
// clobber an earlier backup.
func Backup(dbPath string) (string, error) {
	src, err := os.Open(dbPath)
	if err != nil {
		return "", fmt.Errorf("opening database for backup: %w", err)
	}
	defer src.Close()

	backupPath := fmt.Sprintf("%s.backup-%s", dbPath, uuid.NewString())
	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("creating backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("copying database to backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(backupPath)
		return "", fmt.Errorf("closing backup file: %w", err)
	}
	return backupPath, nil
}
