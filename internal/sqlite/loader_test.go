package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const providersHeader = "Provider Key,Insurance Provider,Category,Subcategory,Coverage Percentage,Cancer Cash (HKD),Cancer Cash Notes,Additional Critical Cash Benefit\n"

const limitsHeader = "Limit Item,Provider Key,Level,Category,Subcategory,Coverage Amount (HKD),Notes\n"

func TestLoadProviders(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	csv := providersHeader +
		"od-essential,One Degree —— Essential Plan,Medical,Dog,80%,30000,per diagnosis,5000\n" +
		",Nameless —— Plan,Medical,Dog,70%,,,\n" +
		"bc-type-a,Blue Cross —— Love Pet - Type A,Medical,Cat,75%,not covered,,\n"
	path := writeCSV(t, dir, "providers.csv", csv)

	result, err := LoadProviders(db, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, countRows(t, db, "pet_insurance_comparison"))

	var company, plan, mode string
	var cancerCash sql.NullFloat64
	err = db.QueryRow(`SELECT company_name, plan_name, coverage_mode, cancer_cash_hkd
        FROM pet_insurance_comparison WHERE provider_key = 'od-essential'`).
		Scan(&company, &plan, &mode, &cancerCash)
	require.NoError(t, err)
	assert.Equal(t, "One Degree", company)
	assert.Equal(t, "Essential Plan", plan)
	assert.Equal(t, "big_bucket", mode)
	require.True(t, cancerCash.Valid)
	assert.Equal(t, 30000.0, cancerCash.Float64)

	// "not covered" fails the all-digits rule and stores as NULL.
	err = db.QueryRow(`SELECT coverage_mode, cancer_cash_hkd
        FROM pet_insurance_comparison WHERE provider_key = 'bc-type-a'`).
		Scan(&mode, &cancerCash)
	require.NoError(t, err)
	assert.Equal(t, "bento_box", mode)
	assert.False(t, cancerCash.Valid)
}

func TestLoadProvidersIdempotent(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	csv := providersHeader +
		"od-essential,OneDegree —— Essential Plan,Medical,Dog,80%,30000,,\n" +
		"bt-plan-1,bolttech —— Pet Care - Plan 1,Medical,Dog,70%,,,\n"
	path := writeCSV(t, dir, "providers.csv", csv)

	first, err := LoadProviders(db, path)
	require.NoError(t, err)
	second, err := LoadProviders(db, path)
	require.NoError(t, err)

	assert.Equal(t, first.Loaded, second.Loaded)
	assert.Equal(t, 2, countRows(t, db, "pet_insurance_comparison"))

	var mode string
	require.NoError(t, db.QueryRow(
		"SELECT coverage_mode FROM pet_insurance_comparison WHERE provider_key = 'bt-plan-1'",
	).Scan(&mode))
	assert.Equal(t, "unknown", mode)
}

func TestLoadProvidersReplacesOnDuplicateKey(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	csv := providersHeader +
		"od-essential,OneDegree —— Essential Plan,Medical,Dog,80%,,,\n" +
		"od-essential,OneDegree —— Essential Plan v2,Medical,Dog,90%,,,\n"
	path := writeCSV(t, dir, "providers.csv", csv)

	result, err := LoadProviders(db, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 1, countRows(t, db, "pet_insurance_comparison"))

	var plan string
	require.NoError(t, db.QueryRow(
		"SELECT plan_name FROM pet_insurance_comparison WHERE provider_key = 'od-essential'",
	).Scan(&plan))
	assert.Equal(t, "Essential Plan v2", plan)
}

func TestLoadCoverageLimits(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	csv := limitsHeader +
		"Surgery,od-essential,Primary,Medical,Surgery,60000,\n" +
		"X-rays,missing-provider,Primary,Medical,X-rays,5000,\n" +
		",od-essential,Primary,Medical,Surgery,1000,no item name\n" +
		"Consultation,,Primary,Medical,Consultation,800,no provider key\n"
	path := writeCSV(t, dir, "limits.csv", csv)

	result, err := LoadCoverageLimits(db, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 2, result.Skipped)

	// The dangling reference loads; Verify reports it later.
	var n int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM coverage_limits WHERE provider_key = 'missing-provider'",
	).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestLoadCoverageLimitsAppends(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	csv := limitsHeader + "Surgery,od-essential,Primary,Medical,Surgery,60000,\n"
	path := writeCSV(t, dir, "limits.csv", csv)

	_, err := LoadCoverageLimits(db, path)
	require.NoError(t, err)
	_, err = LoadCoverageLimits(db, path)
	require.NoError(t, err)

	// Append semantics: the caller owns the fresh-table precondition.
	assert.Equal(t, 2, countRows(t, db, "coverage_limits"))
}

func TestLoadMissingSourceFile(t *testing.T) {
	db := newTestDB(t)

	_, err := LoadProviders(db, "/nonexistent/providers.csv")
	require.Error(t, err)

	_, err = LoadCoverageLimits(db, "/nonexistent/limits.csv")
	require.Error(t, err)
}

func TestLoadProvidersBOMHeader(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()

	csv := "\uFEFF" + providersHeader +
		"od-essential,OneDegree —— Essential Plan,Medical,Dog,80%,,,\n"
	path := writeCSV(t, dir, "providers.csv", csv)

	result, err := LoadProviders(db, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Loaded)
	assert.Equal(t, 0, result.Skipped)
}
