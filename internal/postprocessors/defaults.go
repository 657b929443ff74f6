package postprocessors

import (
	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/normalisers/markdown"
	"github.com/custodia-labs/sercha-spotcheck/internal/postprocessors/passages"
	"github.com/custodia-labs/sercha-spotcheck/internal/postprocessors/phrase"
)

// NewDefaultPipeline builds the standard markdown pipeline for a run.
func NewDefaultPipeline(check domain.CheckSettings, extraction domain.ExtractionSettings) *Pipeline {
	return NewPipeline(
		markdown.NewFromSettings(extraction),
		passages.NewFromSettings(check, extraction),
		phrase.NewFromSettings(extraction),
	)
}
