package driven

import (
	"context"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// ChapterSource discovers chapters under a document root.
type ChapterSource interface {
	// Chapters returns the chapters matching filter, sorted by name.
	// An empty filter selects every chapter.
	// Returns domain.ErrChaptersNotFound if the chapters directory is missing.
	Chapters(ctx context.Context, filter string) ([]domain.Chapter, error)
}

// ChapterWatcher emits chapters whose content changed.
type ChapterWatcher interface {
	// Watch streams changed chapters matching filter until ctx is cancelled.
	// The returned channel is closed when watching stops.
	Watch(ctx context.Context, filter string) (<-chan domain.Chapter, error)
}

// CitationSource produces the run's citation term set.
type CitationSource interface {
	// CitationTerms returns the term set. A missing citation document
	// yields an empty set, not an error.
	CitationTerms(ctx context.Context) (*domain.CitationTermSet, error)
}
