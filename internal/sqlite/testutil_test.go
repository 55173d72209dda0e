package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDB opens a scratch database in a temp dir with the
// first-generation schema installed.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "insurance.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, CreateGen1Schema(db))
	return db
}

// newOldGen2DB opens a scratch database holding the pre-migration shape of
// the evolved schema, populated with a small consistent dataset.
func newOldGen2DB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "pet_insurance.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ddl := []string{
		`CREATE TABLE insurance_provider (
            company_id INTEGER PRIMARY KEY AUTOINCREMENT,
            company_name TEXT NOT NULL,
            company_logo TEXT
        )`,
		`CREATE TABLE product (
            insurance_id INTEGER PRIMARY KEY AUTOINCREMENT,
            provider_id INTEGER,
            insurance_name TEXT,
            min_age TEXT,
            max_age TEXT,
            suitable_pet_type TEXT,
            cat_breed_type TEXT,
            dog_breed_type TEXT,
            breed_type_remark TEXT,
            payment_mode TEXT,
            waiting_period TEXT,
            information_link TEXT,
            update_time TEXT
        )`,
		`CREATE TABLE coverage (
            coverage_id INTEGER PRIMARY KEY,
            product_id INTEGER,
            coverage_type TEXT,
            coverage_limit TEXT,
            coverage_remark TEXT
        )`,
		`CREATE TABLE sub_coverage (
            sub_coverage_id INTEGER PRIMARY KEY AUTOINCREMENT,
            parent_coverage_id INTEGER NOT NULL,
            sub_coverage_remark TEXT,
            Field4 INTEGER
        )`,
		`CREATE TABLE coverage_limit (
            coverage_id INTEGER,
            product_id INTEGER,
            coverage_limit INTEGER
        )`,
		`CREATE TABLE coinsurance_info (
            provider_id INTEGER,
            min_age TEXT,
            max_age TEXT,
            vet_type TEXT,
            coinsurance_percentage NUMERIC
        )`,
	}
	for _, stmt := range ddl {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	seed := []string{
		`INSERT INTO insurance_provider (company_id, company_name, company_logo)
         VALUES (1, 'OneDegree', 'onedegree.png'), (2, 'Blue Cross', NULL)`,
		`INSERT INTO product (insurance_id, provider_id, insurance_name, min_age, max_age, update_time)
         VALUES (10, 1, 'Essential Plan', '0', '11', '2024-01-01'),
                (11, 2, 'Love Pet - Type A', '0', '8', '2024-01-01')`,
		`INSERT INTO coverage (coverage_id, product_id, coverage_type, coverage_limit, coverage_remark)
         VALUES (100, 10, 'Surgery', '60000', NULL),
                (101, 11, 'Hospitalization', '30000', 'per year')`,
		`INSERT INTO sub_coverage (sub_coverage_id, parent_coverage_id, sub_coverage_remark, Field4)
         VALUES (1000, 100, 'includes anaesthesia', 7)`,
		`INSERT INTO coverage_limit (coverage_id, product_id, coverage_limit)
         VALUES (100, 10, 60000)`,
		`INSERT INTO coinsurance_info (provider_id, min_age, max_age, vet_type, coinsurance_percentage)
         VALUES (1, '0', '8', 'general', 20)`,
	}
	for _, stmt := range seed {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return db
}

// writeCSV drops a CSV fixture into dir and returns its path.
func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// countRows returns SELECT COUNT(*) for a table.
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// tableColumns returns the column names of a table, in declared order.
func tableColumns(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()

	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	require.NoError(t, err)
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		cols = append(cols, name)
	}
	require.NoError(t, rows.Err())
	return cols
}
