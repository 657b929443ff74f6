package driven

import (
	"context"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// PassageSelector picks a bounded number of passages from a chapter's
// paragraphs, spread across the chapter.
type PassageSelector interface {
	// Name returns the selector name for logging.
	Name() string

	// Select returns at most the configured number of passages.
	Select(paragraphs []string) []string
}

// PhraseExtractor derives a short exact-match search phrase from a passage.
type PhraseExtractor interface {
	// Phrase returns the search phrase for the passage.
	Phrase(passage string) string
}

// PassagePipeline runs the deterministic text stages for one chapter:
// prose extraction, passage selection and phrase extraction.
type PassagePipeline interface {
	Process(ctx context.Context, chapter domain.Chapter) (*domain.ChapterExtraction, error)
}
