package types

import "database/sql"

// CoverageMode describes how a plan structures its limits: one shared pool
// (big_bucket) or itemized sub-limits (bento_box).
type CoverageMode string

const (
	ModeBigBucket CoverageMode = "big_bucket"
	ModeBentoBox  CoverageMode = "bento_box"
	ModeUnknown   CoverageMode = "unknown"
)

// Provider is one (company, plan) pair from the comparison sheet,
// first-generation shape. ProviderKey is the sole key referenced by
// dependent tables.
type Provider struct {
	ProviderKey       string          `json:"provider_key"`
	InsuranceProvider string          `json:"insurance_provider"`
	CompanyName       string          `json:"company_name"`
	PlanName          string          `json:"plan_name"`
	Category          string          `json:"category"`
	Subcategory       string          `json:"subcategory"`
	CoveragePercent   string          `json:"coverage_percentage"`
	CancerCashHKD     sql.NullFloat64 `json:"cancer_cash_hkd"`
	CancerCashNotes   string          `json:"cancer_cash_notes"`
	AdditionalBenefit sql.NullFloat64 `json:"additional_critical_cash_benefit"`
	CoverageMode      CoverageMode    `json:"coverage_mode"`
}

// CoverageLimit is one named limit item tied to a Provider. The amount stays
// text because the source mixes numeric and descriptive values.
type CoverageLimit struct {
	ID                int64  `json:"id"`
	LimitItem         string `json:"limit_item"`
	ProviderKey       string `json:"provider_key"`
	Level             string `json:"level"`
	Category          string `json:"category"`
	Subcategory       string `json:"subcategory"`
	CoverageAmountHKD string `json:"coverage_amount_hkd"`
	Notes             string `json:"notes"`
}

// ServiceSubcategory is a fixed reference vocabulary entry used for
// consistent display ordering downstream.
type ServiceSubcategory struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// Second-generation entities. The evolved schema renormalizes the model onto
// integer surrogate keys with store-enforced foreign keys; bilingual fields
// carry a _zh counterpart.

// InsuranceProvider is the company identity, owner of Products.
type InsuranceProvider struct {
	CompanyID     int64          `json:"company_id"`
	CompanyName   string         `json:"company_name"`
	CompanyNameZH sql.NullString `json:"company_name_zh"`
	CompanyLogo   sql.NullString `json:"company_logo"`
}

// Product is one plan offered by a provider.
type Product struct {
	InsuranceID     int64          `json:"insurance_id"`
	ProviderID      sql.NullInt64  `json:"provider_id"`
	InsuranceName   sql.NullString `json:"insurance_name"`
	InsuranceNameZH sql.NullString `json:"insurance_name_zh"`
	MinAge          sql.NullString `json:"min_age"`
	MaxAge          sql.NullString `json:"max_age"`
	SuitablePetType sql.NullString `json:"suitable_pet_type"`
	PaymentMode     sql.NullString `json:"payment_mode"`
	WaitingPeriod   sql.NullString `json:"waiting_period"`
	InformationLink sql.NullString `json:"information_link"`
	UpdateTime      sql.NullString `json:"update_time"`
	Tag             sql.NullString `json:"tag"`
}

// Coverage is one covered category/limit for a product.
type Coverage struct {
	CoverageID     int64          `json:"coverage_id"`
	ProductID      sql.NullInt64  `json:"product_id"`
	CoverageType   sql.NullString `json:"coverage_type"`
	CoverageLimit  sql.NullString `json:"coverage_limit"`
	CoverageRemark sql.NullString `json:"coverage_remark"`
}

// SubCoverage is a refinement or remark under a coverage.
type SubCoverage struct {
	SubCoverageID     int64          `json:"sub_coverage_id"`
	ParentCoverageID  int64          `json:"parent_coverage_id"`
	SubCoverageRemark sql.NullString `json:"sub_coverage_remark"`
}

// CoinsuranceInfo is an age/vet-type-banded coinsurance percentage for a
// provider.
type CoinsuranceInfo struct {
	ProviderID            sql.NullInt64   `json:"provider_id"`
	MinAge                sql.NullString  `json:"min_age"`
	MaxAge                sql.NullString  `json:"max_age"`
	VetType               sql.NullString  `json:"vet_type"`
	CoinsurancePercentage sql.NullFloat64 `json:"coinsurance_percentage"`
}
