package driven

import (
	"context"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// WebSearcher performs an exact-phrase web search.
// Failures are reified into the outcome's Err field; Search never panics
// and never returns a bare error.
type WebSearcher interface {
	Search(ctx context.Context, phrase string) domain.SearchOutcome
}

// SearchCache stores successful search results keyed by exact phrase.
// Failed outcomes are never cached.
type SearchCache interface {
	// Get returns the cached results for a phrase and whether they were found.
	Get(ctx context.Context, phrase string) ([]domain.SearchResult, bool, error)

	// Put stores the results for a phrase, replacing any previous entry.
	Put(ctx context.Context, phrase string, results []domain.SearchResult) error

	// Close releases resources.
	Close() error
}
