// Package schema declares the relational shape of the insurance database
// for each pipeline generation. Generation 1 is the build target created
// from the source CSVs; generation 2 is the evolved shape reached through
// the migration plan. Each generation declares its own key strategy — text
// provider keys for generation 1, integer surrogate keys for generation 2 —
// and the migration column mappings are the adapter between the two.
package schema

// Generation-1 table names.
const (
	TableComparison    = "pet_insurance_comparison"
	TableLimits        = "coverage_limits"
	TableSubcategories = "service_subcategories"
)

// Generation-1 DDL.
const (
	createComparison = `CREATE TABLE IF NOT EXISTS pet_insurance_comparison (
    provider_key TEXT PRIMARY KEY,
    insurance_provider TEXT NOT NULL,
    company_name TEXT,
    plan_name TEXT,
    category TEXT,
    subcategory TEXT,
    coverage_percentage TEXT,
    cancer_cash_hkd REAL,
    cancer_cash_notes TEXT,
    additional_critical_cash_benefit REAL,
    coverage_mode TEXT
);`

	createLimits = `CREATE TABLE IF NOT EXISTS coverage_limits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    limit_item TEXT NOT NULL,
    provider_key TEXT NOT NULL,
    level TEXT,
    category TEXT,
    subcategory TEXT,
    coverage_amount_hkd TEXT,
    notes TEXT,
    FOREIGN KEY (provider_key) REFERENCES pet_insurance_comparison(provider_key)
);`

	createSubcategories = `CREATE TABLE IF NOT EXISTS service_subcategories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    display_order INTEGER
);`

	idxLimitsProviderKey = `CREATE INDEX IF NOT EXISTS idx_limits_provider_key ON coverage_limits(provider_key);`
)

// Gen1DDL lists the CREATE TABLE statements in dependency order: tables
// with no outgoing foreign keys first.
var Gen1DDL = []string{
	createComparison,
	createLimits,
	createSubcategories,
}

// Gen1IndexDDL lists the CREATE INDEX statements.
var Gen1IndexDDL = []string{
	idxLimitsProviderKey,
}

// Gen1Tables lists the generation-1 tables for row-count summaries.
var Gen1Tables = []string{
	TableComparison,
	TableLimits,
	TableSubcategories,
}
