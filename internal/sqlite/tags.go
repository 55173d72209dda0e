// Descriptive-tag assignment for second-generation products. A keyed
// update, not a structural change: each known plan name gets its curated
// tag string.
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
)

// planTags maps product plan names to their descriptive tags.
var planTags = map[string]string{
	// bolttech
	"Pet Care - Plan 1": "#BudgetStarter #FixedPremium",
	"Pet Care - Plan 2": "#MidTierBalanced #SurgicalProtection",
	"Pet Care - Plan 3": "#MaxPetCare #ComprehensiveBasic",

	// MSIG
	"HappyTail - Dog Standard Plan": "#SurgicalSpecialist #EarlyEnrollmentReward",
	"HappyTail - Dog Premier Plan":  "#HereditarySupport #MidTierSurgery",
	"HappyTail - Dog Ultimate Plan": "#HighLimitSurgical #LifetimeProtection",
	"HappyTail - Cat Plan":          "#FelineFocus #NoSubLimitSurgery",

	// OneDegree
	"Essential Plan": "#NoSubLimitEntry #HospitalizationFocus",
	"Plus Plan":      "#ValueChoice #ConsultationIncluded",
	"Ultra Plan":     "#HKHighestLimit #FlexibleMedical",
	"Prestige Plan":  "#AdvancedDiagnostics #MRICover",

	// Blue Cross
	"Love Pet - Type C":                  "#OverseasLiability #NoMicrochipForCats",
	"Love Pet - Type B":                  "#EmergencyBoarding #FuneralSupport",
	"Love Pet - Type A":                  "#BehavioralTherapy #MaximumMedical",
	"Love Pet Outpatient - Sharing Plan": "#MultiPetSharing #VetVisitFocus",
	"Love Pet Outpatient - Basic Plan":   "#VetVisitFocus #OutpatientFocus",

	// Prudential
	"PRUChoice Furkid Care - A": "#HighLiability #TravelDelaySupport",
	"PRUChoice Furkid Care - B": "#AdvancedImaging #WaitingPeriodWaiver",
}

// ApplyTags updates product.tag for every known plan name. Plan names with
// no matching product are reported back, not treated as failures. Valid
// only against a second-generation database.
func ApplyTags(db *sql.DB) (updated int, missing []string, err error) {
	generation, err := detectGeneration(db)
	if err != nil {
		return 0, nil, err
	}
	if generation != 2 {
		return 0, nil, fmt.Errorf("tag assignment requires the evolved schema; database holds generation %d", generation)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, nil, fmt.Errorf("beginning tag update: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("UPDATE product SET tag = ? WHERE insurance_name = ?")
	if err != nil {
		return 0, nil, fmt.Errorf("preparing tag update: %w", err)
	}
	defer stmt.Close()

	// Deterministic order keeps output and missing-name reports stable.
	names := make([]string, 0, len(planTags))
	for name := range planTags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		res, err := stmt.Exec(planTags[name], name)
		if err != nil {
			return 0, nil, fmt.Errorf("tagging %q: %w", name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, nil, fmt.Errorf("tagging %q: %w", name, err)
		}
		if n > 0 {
			updated++
		} else {
			missing = append(missing, name)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("committing tag update: %w", err)
	}
	return updated, missing, nil
}
