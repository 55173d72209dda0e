package schema

// FKCheck names one foreign-key pair the Integrity Verifier resolves with a
// left-anti-join. LabelColumn is a human-readable column from the child
// table shown alongside the dangling key in orphan previews.
type FKCheck struct {
	ChildTable   string
	ChildColumn  string
	ParentTable  string
	ParentColumn string
	LabelColumn  string
}

// Gen1Checks covers the first-generation shape.
var Gen1Checks = []FKCheck{
	{
		ChildTable:   TableLimits,
		ChildColumn:  "provider_key",
		ParentTable:  TableComparison,
		ParentColumn: "provider_key",
		LabelColumn:  "limit_item",
	},
}

// Gen2Checks covers the evolved shape.
var Gen2Checks = []FKCheck{
	{
		ChildTable:   TableProduct,
		ChildColumn:  "provider_id",
		ParentTable:  TableProvider,
		ParentColumn: "company_id",
		LabelColumn:  "insurance_name",
	},
	{
		ChildTable:   TableCoverage,
		ChildColumn:  "product_id",
		ParentTable:  TableProduct,
		ParentColumn: "insurance_id",
		LabelColumn:  "coverage_type",
	},
	{
		ChildTable:   TableSubCoverage,
		ChildColumn:  "parent_coverage_id",
		ParentTable:  TableCoverage,
		ParentColumn: "coverage_id",
		LabelColumn:  "sub_coverage_remark",
	},
	{
		ChildTable:   TableCoinsurance,
		ChildColumn:  "provider_id",
		ParentTable:  TableProvider,
		ParentColumn: "company_id",
		LabelColumn:  "vet_type",
	},
}
