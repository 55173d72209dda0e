package schema

// Generation-2 table names.
const (
	TableProvider      = "insurance_provider"
	TableProduct       = "product"
	TableCoverage      = "coverage"
	TableSubCoverage   = "sub_coverage"
	TableCoverageLimit = "coverage_limit"
	TableCoinsurance   = "coinsurance_info"
)

// Migration declares the target shape for one table: the DDL that creates
// the new table under the original name, and the columns copied from the
// old shape. Columns listed here must exist on both sides; columns added by
// CreateSQL take their declared defaults, columns dropped are discarded.
type Migration struct {
	Table     string
	CreateSQL string
	Columns   []string
}

// Generation-2 DDL. Bilingual fields carry a _zh counterpart; keys are
// integer surrogates with foreign keys enforced at the store level.
const (
	createProvider = `CREATE TABLE insurance_provider (
    company_id INTEGER PRIMARY KEY AUTOINCREMENT,
    company_name TEXT NOT NULL,
    company_name_zh TEXT,
    company_logo TEXT
);`

	createProduct = `CREATE TABLE product (
    insurance_id INTEGER PRIMARY KEY AUTOINCREMENT,
    provider_id INTEGER,
    insurance_name TEXT,
    insurance_name_zh TEXT,
    min_age TEXT,
    min_age_zh TEXT,
    max_age TEXT,
    max_age_zh TEXT,
    suitable_pet_type TEXT,
    suitable_pet_type_zh TEXT,
    cat_breed_type TEXT,
    cat_breed_type_zh TEXT,
    dog_breed_type TEXT,
    dog_breed_type_zh TEXT,
    breed_type_remark TEXT,
    breed_type_remark_zh TEXT,
    payment_mode TEXT,
    payment_mode_zh TEXT,
    waiting_period TEXT,
    waiting_period_zh TEXT,
    information_link TEXT,
    information_link_zh TEXT,
    update_time TEXT,
    tag TEXT,
    FOREIGN KEY (provider_id) REFERENCES insurance_provider(company_id)
);`

	createCoverage = `CREATE TABLE coverage (
    coverage_id INTEGER PRIMARY KEY,
    product_id INTEGER,
    coverage_type TEXT,
    coverage_type_zh TEXT,
    coverage_limit TEXT,
    coverage_limit_zh TEXT,
    coverage_remark TEXT,
    coverage_remark_zh TEXT,
    FOREIGN KEY (product_id) REFERENCES product(insurance_id)
);`

	createSubCoverage = `CREATE TABLE sub_coverage (
    sub_coverage_id INTEGER PRIMARY KEY AUTOINCREMENT,
    parent_coverage_id INTEGER NOT NULL,
    sub_coverage_remark TEXT,
    sub_coverage_remark_zh TEXT,
    FOREIGN KEY (parent_coverage_id) REFERENCES coverage(coverage_id)
);`

	createCoverageLimit = `CREATE TABLE coverage_limit (
    coverage_id INTEGER,
    product_id INTEGER,
    coverage_limit INTEGER,
    PRIMARY KEY (coverage_id, product_id),
    FOREIGN KEY (coverage_id) REFERENCES coverage(coverage_id),
    FOREIGN KEY (product_id) REFERENCES product(insurance_id)
);`

	createCoinsurance = `CREATE TABLE coinsurance_info (
    provider_id INTEGER,
    min_age TEXT,
    min_age_zh TEXT,
    max_age TEXT,
    max_age_zh TEXT,
    vet_type TEXT,
    vet_type_zh TEXT,
    coinsurance_percentage NUMERIC,
    FOREIGN KEY (provider_id) REFERENCES insurance_provider(company_id)
);`
)

// Gen2Plan lists the table migrations in dependency order: tables with no
// outgoing foreign keys first, so no step copies into a table whose parent
// is still in the old shape. The store does not enforce this ordering while
// foreign keys are off; the plan does.
var Gen2Plan = []Migration{
	{
		Table:     TableProvider,
		CreateSQL: createProvider,
		Columns:   []string{"company_id", "company_name", "company_logo"},
	},
	{
		Table:     TableProduct,
		CreateSQL: createProduct,
		Columns: []string{
			"insurance_id", "provider_id", "insurance_name", "min_age", "max_age",
			"suitable_pet_type", "cat_breed_type", "dog_breed_type",
			"breed_type_remark", "payment_mode", "waiting_period",
			"information_link", "update_time",
		},
	},
	{
		Table:     TableCoverage,
		CreateSQL: createCoverage,
		Columns: []string{
			"coverage_id", "product_id", "coverage_type", "coverage_limit",
			"coverage_remark",
		},
	},
	{
		Table:     TableSubCoverage,
		CreateSQL: createSubCoverage,
		Columns:   []string{"sub_coverage_id", "parent_coverage_id", "sub_coverage_remark"},
	},
	{
		Table:     TableCoverageLimit,
		CreateSQL: createCoverageLimit,
		Columns:   []string{"coverage_id", "product_id", "coverage_limit"},
	},
	{
		Table:     TableCoinsurance,
		CreateSQL: createCoinsurance,
		Columns: []string{
			"provider_id", "min_age", "max_age", "vet_type",
			"coinsurance_percentage",
		},
	},
}

// Gen2Tables lists the generation-2 tables for row-count summaries.
var Gen2Tables = []string{
	TableProvider,
	TableProduct,
	TableCoverage,
	TableSubCoverage,
	TableCoverageLimit,
	TableCoinsurance,
}
