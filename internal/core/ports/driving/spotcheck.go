package driving

import (
	"context"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// SpotCheckService runs plagiarism spot-checks over a document's chapters.
type SpotCheckService interface {
	// Check processes every selected chapter in order and returns the report.
	// Per-passage search failures are recorded in the report, not returned.
	Check(ctx context.Context, settings domain.CheckSettings) (*domain.Report, error)

	// CheckChapter processes a single chapter.
	CheckChapter(ctx context.Context, chapter domain.Chapter, settings domain.CheckSettings) (domain.ChapterResult, error)
}
