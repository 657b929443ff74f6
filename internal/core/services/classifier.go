package services

import (
	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// Classify builds the result for one passage from its search outcome.
// Checks run in a fixed order: a failed search is a search error, no
// results is clean, all results cited is a cited match, and anything
// else is a potential match.
func Classify(
	passage, phrase string,
	outcome domain.SearchOutcome,
	terms *domain.CitationTermSet,
) domain.PassageResult {
	result := domain.PassageResult{
		Passage:      passage,
		SearchPhrase: phrase,
		Results:      []domain.SearchResult{},
	}

	switch {
	case outcome.Failed():
		result.Severity = domain.SeveritySearchError
		result.Error = outcome.ErrorText()
	case len(outcome.Results) == 0:
		result.Severity = domain.SeverityClean
	case allCited(outcome.Results, terms):
		result.Severity = domain.SeverityCitedMatch
		result.Results = outcome.Results
	default:
		result.Severity = domain.SeverityPotentialMatch
		result.Results = outcome.Results
	}

	return result
}

// allCited reports whether every result matches a citation term.
func allCited(results []domain.SearchResult, terms *domain.CitationTermSet) bool {
	for _, r := range results {
		if !terms.Matches(r) {
			return false
		}
	}
	return true
}
