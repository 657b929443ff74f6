package domain

// Severity classifies the outcome of checking one passage.
type Severity string

// Severities in report order.
const (
	// SeverityClean means the exact phrase was not found online.
	SeverityClean Severity = "CLEAN"

	// SeverityCitedMatch means every match is accounted for by the citation list.
	SeverityCitedMatch Severity = "CITED MATCH"

	// SeverityPotentialMatch means at least one match has no known citation.
	SeverityPotentialMatch Severity = "POTENTIAL MATCH"

	// SeveritySearchError means the search itself failed.
	SeveritySearchError Severity = "SEARCH ERROR"
)

// AllSeverities returns every severity in report order.
func AllSeverities() []Severity {
	return []Severity{
		SeverityClean,
		SeverityCitedMatch,
		SeverityPotentialMatch,
		SeveritySearchError,
	}
}

// IsValid returns true if the severity is recognised.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityClean, SeverityCitedMatch, SeverityPotentialMatch, SeveritySearchError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Severity) String() string {
	return string(s)
}

// Description returns the summary-table label for the severity.
func (s Severity) Description() string {
	switch s {
	case SeverityClean:
		return "Clean passages"
	case SeverityCitedMatch:
		return "Cited matches"
	case SeverityPotentialMatch:
		return "Potential matches"
	case SeveritySearchError:
		return "Search errors"
	default:
		return "Unknown"
	}
}

// NeedsReview returns true if a human should look at the passage.
func (s Severity) NeedsReview() bool {
	return s == SeverityPotentialMatch
}
