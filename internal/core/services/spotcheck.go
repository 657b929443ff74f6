package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-spotcheck/internal/logger"
)

// Ensure SpotCheckService implements the interface.
var _ driving.SpotCheckService = (*SpotCheckService)(nil)

// PipelineFactory builds the text stages for a run's settings.
type PipelineFactory func(settings domain.CheckSettings) driven.PassagePipeline

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SpotCheckService runs chapters through the text pipeline, searches each
// phrase and classifies the outcome. Chapters and passages are processed
// one at a time, in order.
type SpotCheckService struct {
	chapters  driven.ChapterSource
	citations driven.CitationSource
	pipelines PipelineFactory
	searcher  driven.WebSearcher
	cache     driven.SearchCache
	sleep     SleepFunc
	now       func() time.Time
	newRunID  func() string
}

// SpotCheckOption configures the service.
type SpotCheckOption func(*SpotCheckService)

// WithCache consults the cache before every search and stores successful outcomes.
func WithCache(cache driven.SearchCache) SpotCheckOption {
	return func(s *SpotCheckService) {
		s.cache = cache
	}
}

// WithSleep replaces the inter-request wait.
func WithSleep(sleep SleepFunc) SpotCheckOption {
	return func(s *SpotCheckService) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithClock replaces the clock used for report timestamps.
func WithClock(now func() time.Time) SpotCheckOption {
	return func(s *SpotCheckService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRunID replaces the run identifier generator.
func WithRunID(newRunID func() string) SpotCheckOption {
	return func(s *SpotCheckService) {
		if newRunID != nil {
			s.newRunID = newRunID
		}
	}
}

// NewSpotCheckService creates a new spot-check service.
// The searcher may be nil when the service is only used for dry runs.
func NewSpotCheckService(
	chapters driven.ChapterSource,
	citations driven.CitationSource,
	pipelines PipelineFactory,
	searcher driven.WebSearcher,
	opts ...SpotCheckOption,
) *SpotCheckService {
	s := &SpotCheckService{
		chapters:  chapters,
		citations: citations,
		pipelines: pipelines,
		searcher:  searcher,
		sleep:     SleepContext,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Check processes every selected chapter and returns the report.
// Only input problems (bad settings, missing chapters) and cancellation
// are returned as errors; search failures are recorded per passage.
func (s *SpotCheckService) Check(ctx context.Context, settings domain.CheckSettings) (*domain.Report, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	startedAt := s.now()
	runID := s.newRunID()
	logger.Section("Spot Check")
	logger.Debug("Run %s, dry run: %v", runID, settings.DryRun)

	chapters, err := s.chapters.Chapters(ctx, settings.ChapterFilter)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, domain.ErrNoChapters
	}

	terms := s.loadCitations(ctx)
	pipeline := s.pipelines(settings)

	results := make([]domain.ChapterResult, 0, len(chapters))
	for _, chapter := range chapters {
		result, err := s.checkChapter(ctx, pipeline, chapter, settings, terms)
		if err != nil {
			return nil, err
		}
		results = append(results, result)

		if !settings.DryRun {
			logger.Progress("  Checked %s (%d passages)", chapter.Name, len(result.Passages))
		}
	}

	return domain.NewReport(runID, startedAt, settings.DryRun, results), nil
}

// CheckChapter processes a single chapter with a freshly loaded citation set.
func (s *SpotCheckService) CheckChapter(
	ctx context.Context,
	chapter domain.Chapter,
	settings domain.CheckSettings,
) (domain.ChapterResult, error) {
	if err := settings.Validate(); err != nil {
		return domain.ChapterResult{}, err
	}
	return s.checkChapter(ctx, s.pipelines(settings), chapter, settings, s.loadCitations(ctx))
}

func (s *SpotCheckService) checkChapter(
	ctx context.Context,
	pipeline driven.PassagePipeline,
	chapter domain.Chapter,
	settings domain.CheckSettings,
	terms *domain.CitationTermSet,
) (domain.ChapterResult, error) {
	extraction, err := pipeline.Process(ctx, chapter)
	if err != nil {
		return domain.ChapterResult{}, fmt.Errorf("extract %s: %w", chapter.Name, err)
	}

	result := domain.ChapterResult{
		Chapter:        chapter.Name,
		ParagraphCount: extraction.ParagraphCount,
		Passages:       make([]domain.PassageResult, 0, len(extraction.Candidates)),
	}

	for _, candidate := range extraction.Candidates {
		var outcome domain.SearchOutcome
		if !settings.DryRun {
			outcome, err = s.search(ctx, candidate.SearchPhrase, settings.Delay)
			if err != nil {
				return domain.ChapterResult{}, err
			}
		}
		result.Passages = append(result.Passages,
			Classify(candidate.Passage, candidate.SearchPhrase, outcome, terms))
	}

	return result, nil
}

// search resolves one phrase from the cache or the network. Network searches
// are followed by the inter-request delay whether or not they succeeded.
// The returned error is only ever a cancellation.
func (s *SpotCheckService) search(ctx context.Context, phrase string, delay time.Duration) (domain.SearchOutcome, error) {
	if s.cache != nil {
		results, ok, err := s.cache.Get(ctx, phrase)
		if err != nil {
			logger.Warn("Cache lookup failed for %q: %v", phrase, err)
		} else if ok {
			logger.Debug("Cache hit: %q", phrase)
			return domain.SearchOutcome{Results: results}, nil
		}
	}

	if s.searcher == nil {
		return domain.SearchOutcome{Err: fmt.Errorf("no search client configured")}, nil
	}

	logger.Debug("Searching: %q", phrase)
	outcome := s.searcher.Search(ctx, phrase)

	if s.cache != nil && !outcome.Failed() {
		if err := s.cache.Put(ctx, phrase, outcome.Results); err != nil {
			logger.Warn("Cache store failed for %q: %v", phrase, err)
		}
	}

	if err := s.sleep(ctx, delay); err != nil {
		return domain.SearchOutcome{}, err
	}

	return outcome, nil
}

// loadCitations returns the citation terms, or an empty set if they cannot be read.
func (s *SpotCheckService) loadCitations(ctx context.Context) *domain.CitationTermSet {
	if s.citations == nil {
		return domain.NewCitationTermSet()
	}
	terms, err := s.citations.CitationTerms(ctx)
	if err != nil {
		logger.Warn("Citation terms unavailable: %v", err)
		return domain.NewCitationTermSet()
	}
	logger.Debug("Loaded %d citation terms", terms.Len())
	return terms
}

// SleepContext waits for d or until ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
