// Package postprocessors chains the deterministic text stages that turn a
// chapter into checkable passages and search phrases.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.PassagePipeline = (*Pipeline)(nil)

// Pipeline runs prose extraction, passage selection and phrase extraction
// in order for one chapter. It implements the PassagePipeline interface.
type Pipeline struct {
	extractor driven.ProseExtractor
	selector  driven.PassageSelector
	phrases   driven.PhraseExtractor
}

// NewPipeline creates a new processing pipeline from its three stages.
func NewPipeline(
	extractor driven.ProseExtractor,
	selector driven.PassageSelector,
	phrases driven.PhraseExtractor,
) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		selector:  selector,
		phrases:   phrases,
	}
}

// Process extracts the candidates for one chapter.
// Chapters without prose yield an extraction with no candidates.
func (p *Pipeline) Process(ctx context.Context, chapter domain.Chapter) (*domain.ChapterExtraction, error) {
	if p.extractor == nil || p.selector == nil || p.phrases == nil {
		return nil, fmt.Errorf("pipeline is missing a stage")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("process %s: %w", chapter.Name, err)
	}

	paragraphs := p.extractor.Extract(chapter.Content)
	passages := p.selector.Select(paragraphs)

	logger.Debug("%s: %d paragraphs, %d passages via %s",
		chapter.Name, len(paragraphs), len(passages), p.selector.Name())

	candidates := make([]domain.Candidate, 0, len(passages))
	for _, passage := range passages {
		candidates = append(candidates, domain.Candidate{
			Passage:      passage,
			SearchPhrase: p.phrases.Phrase(passage),
		})
	}

	return &domain.ChapterExtraction{
		Chapter:        chapter.Name,
		ParagraphCount: len(paragraphs),
		Candidates:     candidates,
	}, nil
}
