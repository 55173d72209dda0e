// Package normalize turns raw spreadsheet cell text into typed values and
// derived fields. Every function is pure: no I/O, no package state, and no
// error returns — unusable input maps to an absent value.
package normalize

import (
	"strings"

	"github.com/petwell/petbase/pkg/types"
)

// Provider delimiters, checked in order. The source uses a double em-dash
// with spaces; older exports fall back to four plain hyphens.
const (
	emDashDelim = " —— "
	hyphenDelim = "----"
)

// Clean trims surrounding whitespace. Key fields that clean to "" are
// treated as absent by the loader, never stored as empty strings.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// ParseAmount parses a monetary cell under the strict all-digits rule: the
// whole trimmed string must be decimal digits, otherwise the value is
// absent. "1,000" and "1.5" are deliberately absent so that formatted and
// descriptive amounts round-trip unchanged through the text columns.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var v float64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		v = v*10 + float64(r-'0')
	}
	return v, true
}

// SplitProvider splits a combined "Company —— Plan" string into its parts.
// Without a recognized delimiter the whole string is the company and the
// plan is empty. Both halves are trimmed.
func SplitProvider(s string) (company, plan string) {
	s = strings.TrimSpace(s)
	for _, delim := range []string{emDashDelim, hyphenDelim} {
		if before, after, ok := strings.Cut(s, delim); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after)
		}
	}
	return s, ""
}

// InferCoverageMode maps a company name to its coverage mode by
// case-insensitive substring containment. This is a policy table, not a
// classifier: companies not listed here stay ModeUnknown until added.
func InferCoverageMode(company string) types.CoverageMode {
	c := strings.ToLower(strings.TrimSpace(company))
	switch {
	case strings.Contains(c, "one degree"):
		return types.ModeBigBucket
	case strings.Contains(c, "blue cross"):
		return types.ModeBentoBox
	default:
		return types.ModeUnknown
	}
}
