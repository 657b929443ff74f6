package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
)

// Ensure SearchCache implements the interface.
var _ driven.SearchCache = (*SearchCache)(nil)

// SearchCache keeps search results for the lifetime of the process.
type SearchCache struct {
	mu      sync.RWMutex
	entries map[string][]domain.SearchResult
}

// NewSearchCache creates a new in-memory search cache.
func NewSearchCache() *SearchCache {
	return &SearchCache{
		entries: make(map[string][]domain.SearchResult),
	}
}

// Get returns the cached results for an exact phrase.
func (c *SearchCache) Get(_ context.Context, phrase string) ([]domain.SearchResult, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results, ok := c.entries[phrase]
	if !ok {
		return nil, false, nil
	}
	return copyResults(results), true, nil
}

// Put stores the results for an exact phrase, replacing any earlier entry.
func (c *SearchCache) Put(_ context.Context, phrase string, results []domain.SearchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[phrase] = copyResults(results)
	return nil
}

// Len returns the number of cached phrases.
func (c *SearchCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close releases the cache contents.
func (c *SearchCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]domain.SearchResult)
	return nil
}

func copyResults(results []domain.SearchResult) []domain.SearchResult {
	out := make([]domain.SearchResult, len(results))
	copy(out, results)
	return out
}
