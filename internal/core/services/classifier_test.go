package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

func TestClassify_DecisionTable(t *testing.T) {
	transportErr := errors.New(`Get "https://html.duckduckgo.com/html/?q=%22x%22": dial tcp: lookup html.duckduckgo.com: no such host`)

	tests := []struct {
		name     string
		outcome  domain.SearchOutcome
		terms    *domain.CitationTermSet
		severity domain.Severity
		errText  string
		results  int
	}{
		{
			name:     "zero results is clean",
			outcome:  domain.SearchOutcome{},
			terms:    domain.NewCitationTermSet("example co"),
			severity: domain.SeverityClean,
		},
		{
			name: "cited result",
			outcome: domain.SearchOutcome{Results: []domain.SearchResult{
				{Title: "Example Co", Snippet: ""},
			}},
			terms:    domain.NewCitationTermSet("example co"),
			severity: domain.SeverityCitedMatch,
			results:  1,
		},
		{
			name: "uncited result with no terms",
			outcome: domain.SearchOutcome{Results: []domain.SearchResult{
				{Title: "Random Blog", Snippet: "unrelated"},
			}},
			terms:    domain.NewCitationTermSet(),
			severity: domain.SeverityPotentialMatch,
			results:  1,
		},
		{
			name:     "transport error preserved verbatim",
			outcome:  domain.SearchOutcome{Err: transportErr},
			terms:    domain.NewCitationTermSet("example co"),
			severity: domain.SeveritySearchError,
			errText:  transportErr.Error(),
		},
		{
			name: "one uncited result among cited ones",
			outcome: domain.SearchOutcome{Results: []domain.SearchResult{
				{Title: "Example Co annual report"},
				{Title: "Someone else", Snippet: "copied text"},
			}},
			terms:    domain.NewCitationTermSet("example co"),
			severity: domain.SeverityPotentialMatch,
			results:  2,
		},
		{
			name: "match found in snippet",
			outcome: domain.SearchOutcome{Results: []domain.SearchResult{
				{Title: "Blog", Snippet: "as reported at example.com last year"},
			}},
			terms:    domain.NewCitationTermSet("example.com"),
			severity: domain.SeverityCitedMatch,
			results:  1,
		},
		{
			name: "nil term set treats results as uncited",
			outcome: domain.SearchOutcome{Results: []domain.SearchResult{
				{Title: "Anything"},
			}},
			terms:    nil,
			severity: domain.SeverityPotentialMatch,
			results:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("the passage", "the phrase", tt.outcome, tt.terms)

			assert.Equal(t, "the passage", got.Passage)
			assert.Equal(t, "the phrase", got.SearchPhrase)
			assert.Equal(t, tt.severity, got.Severity)
			assert.Equal(t, tt.errText, got.Error)
			assert.Len(t, got.Results, tt.results)
			assert.NotNil(t, got.Results)
		})
	}
}

func TestClassify_ErrorWinsOverResults(t *testing.T) {
	outcome := domain.SearchOutcome{
		Results: []domain.SearchResult{{Title: "stale"}},
		Err:     errors.New("HTTP Error 403: Forbidden"),
	}

	got := Classify("p", "q", outcome, domain.NewCitationTermSet())

	assert.Equal(t, domain.SeveritySearchError, got.Severity)
	assert.Equal(t, "HTTP Error 403: Forbidden", got.Error)
	assert.Empty(t, got.Results)
}
