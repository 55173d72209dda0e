// CSV loading for the first-generation schema.
//
// Provider rows upsert by provider_key, so reloading is idempotent.
// Coverage-limit rows append: the source has no unique key beyond
// (provider_key, limit_item), and the build always starts from a freshly
// created database, so the loader does not deduplicate. Running
// LoadCoverageLimits against a table that already holds rows duplicates
// them; that precondition belongs to the caller.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/petwell/petbase/internal/normalize"
	"github.com/petwell/petbase/internal/source"
	"github.com/petwell/petbase/pkg/types"
)

// Source column names, as exported in the CSV headers.
const (
	colProviderKey       = "Provider Key"
	colInsuranceProvider = "Insurance Provider"
	colCategory          = "Category"
	colSubcategory       = "Subcategory"
	colCoveragePercent   = "Coverage Percentage"
	colCancerCash        = "Cancer Cash (HKD)"
	colCancerCashNotes   = "Cancer Cash Notes"
	colAdditionalBenefit = "Additional Critical Cash Benefit"
	colLimitItem         = "Limit Item"
	colLevel             = "Level"
	colCoverageAmount    = "Coverage Amount (HKD)"
	colNotes             = "Notes"
)

// LoadResult tallies one table load. Skipped counts rows dropped for a
// missing identifying key; they are never an error.
type LoadResult struct {
	Loaded  int
	Skipped int
}

// LoadProviders loads the comparison CSV with insert-or-replace semantics
// keyed on provider_key. Rows with a blank key are skipped and tallied.
// The load is transactional: the table gains all rows or none.
func LoadProviders(db *sql.DB, path string) (LoadResult, error) {
	var result LoadResult

	records, err := source.ReadFile(path)
	if err != nil {
		return result, err
	}

	tx, err := db.Begin()
	if err != nil {
		return result, fmt.Errorf("beginning provider load: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO pet_insurance_comparison
    (provider_key, insurance_provider, company_name, plan_name, category,
     subcategory, coverage_percentage, cancer_cash_hkd, cancer_cash_notes,
     additional_critical_cash_benefit, coverage_mode)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return result, fmt.Errorf("preparing provider insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		providerKey := rec.Get(colProviderKey)
		if providerKey == "" {
			result.Skipped++
			continue
		}

		providerFull := rec.Get(colInsuranceProvider)
		company, plan := normalize.SplitProvider(providerFull)

		p := types.Provider{
			ProviderKey:       providerKey,
			InsuranceProvider: providerFull,
			CompanyName:       company,
			PlanName:          plan,
			Category:          rec.Get(colCategory),
			Subcategory:       rec.Get(colSubcategory),
			CoveragePercent:   rec.Get(colCoveragePercent),
			CancerCashHKD:     nullableAmount(rec.Get(colCancerCash)),
			CancerCashNotes:   rec.Get(colCancerCashNotes),
			AdditionalBenefit: nullableAmount(rec.Get(colAdditionalBenefit)),
			CoverageMode:      normalize.InferCoverageMode(company),
		}

		_, err := stmt.Exec(
			p.ProviderKey,
			p.InsuranceProvider,
			p.CompanyName,
			p.PlanName,
			p.Category,
			p.Subcategory,
			p.CoveragePercent,
			p.CancerCashHKD,
			p.CancerCashNotes,
			p.AdditionalBenefit,
			string(p.CoverageMode),
		)
		if err != nil {
			return result, fmt.Errorf("inserting provider %s: %w", p.ProviderKey, err)
		}
		result.Loaded++
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("committing provider load: %w", err)
	}
	return result, nil
}

// LoadCoverageLimits loads the limits CSV with append semantics. Rows
// missing provider_key or limit_item are skipped and tallied. Referential
// gaps are allowed at write time (load order may interleave); Verify
// reports them afterwards.
func LoadCoverageLimits(db *sql.DB, path string) (LoadResult, error) {
	var result LoadResult

	records, err := source.ReadFile(path)
	if err != nil {
		return result, err
	}

	// Enforcement is off for this load: limits may arrive before their
	// provider, and the pragma must run outside the transaction to take
	// effect. Verify reports any gap that remains afterwards.
	if _, err := db.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return result, fmt.Errorf("disabling foreign keys for limits load: %w", err)
	}
	defer db.Exec("PRAGMA foreign_keys = ON")

	tx, err := db.Begin()
	if err != nil {
		return result, fmt.Errorf("beginning limits load: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO coverage_limits
    (limit_item, provider_key, level, category, subcategory,
     coverage_amount_hkd, notes)
    VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return result, fmt.Errorf("preparing limits insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		providerKey := rec.Get(colProviderKey)
		limitItem := rec.Get(colLimitItem)
		if providerKey == "" || limitItem == "" {
			result.Skipped++
			continue
		}

		limit := types.CoverageLimit{
			LimitItem:         limitItem,
			ProviderKey:       providerKey,
			Level:             rec.Get(colLevel),
			Category:          rec.Get(colCategory),
			Subcategory:       rec.Get(colSubcategory),
			CoverageAmountHKD: rec.Get(colCoverageAmount),
			Notes:             rec.Get(colNotes),
		}

		_, err := stmt.Exec(
			limit.LimitItem,
			limit.ProviderKey,
			limit.Level,
			limit.Category,
			limit.Subcategory,
			limit.CoverageAmountHKD,
			limit.Notes,
		)
		if err != nil {
			return result, fmt.Errorf("inserting limit %q for %s: %w", limit.LimitItem, limit.ProviderKey, err)
		}
		result.Loaded++
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("committing limits load: %w", err)
	}
	return result, nil
}

// nullableAmount applies the strict all-digits parse and maps an absent
// value to NULL.
func nullableAmount(s string) sql.NullFloat64 {
	v, ok := normalize.ParseAmount(s)
	return sql.NullFloat64{Float64: v, Valid: ok}
}
