package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_IsValid(t *testing.T) {
	for _, s := range AllSeverities() {
		assert.True(t, s.IsValid(), "severity %q should be valid", s)
	}
	assert.False(t, Severity("").IsValid())
	assert.False(t, Severity("clean").IsValid())
}

func TestSeverity_Description(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityClean, "Clean passages"},
		{SeverityCitedMatch, "Cited matches"},
		{SeverityPotentialMatch, "Potential matches"},
		{SeveritySearchError, "Search errors"},
		{Severity("bogus"), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.Description())
		})
	}
}

func TestSeverity_NeedsReview(t *testing.T) {
	assert.True(t, SeverityPotentialMatch.NeedsReview())
	assert.False(t, SeverityCitedMatch.NeedsReview())
	assert.False(t, SeverityClean.NeedsReview())
	assert.False(t, SeveritySearchError.NeedsReview())
}

func TestAllSeverities_ReportOrder(t *testing.T) {
	assert.Equal(t, []Severity{
		SeverityClean, SeverityCitedMatch, SeverityPotentialMatch, SeveritySearchError,
	}, AllSeverities())
}
