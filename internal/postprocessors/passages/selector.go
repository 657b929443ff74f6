// Package passages selects distinctive, target-length passages from a
// chapter's prose paragraphs.
package passages

import (
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/postprocessors/sentence"
)

// Ensure Selector implements the interface.
var _ driven.PassageSelector = (*Selector)(nil)

// DefaultPassageCount is the default number of passages per chapter.
const DefaultPassageCount = 5

// DefaultTargetWords is the default passage length in words.
const DefaultTargetWords = 75

// DefaultTrimLookahead is how many words past the target are considered when trimming.
const DefaultTrimLookahead = 15

// DefaultTrimSlack is how far past the target a trimmed passage may run.
const DefaultTrimSlack = 10

// Selector picks one passage per equal-width segment of a chapter.
type Selector struct {
	count       int
	targetWords int
	lookahead   int
	slack       int
	commonWords map[string]struct{}
}

// Option configures the selector.
type Option func(*Selector)

// WithPassageCount sets the maximum number of passages per chapter.
func WithPassageCount(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.count = n
		}
	}
}

// WithTargetWords sets the ideal passage length in words.
func WithTargetWords(n int) Option {
	return func(s *Selector) {
		if n > 0 {
			s.targetWords = n
		}
	}
}

// WithTrim sets the trimming lookahead and slack in words.
func WithTrim(lookahead, slack int) Option {
	return func(s *Selector) {
		if lookahead >= 0 {
			s.lookahead = lookahead
		}
		if slack >= 0 {
			s.slack = slack
		}
	}
}

// WithCommonWords replaces the set of words that lower the distinctiveness score.
func WithCommonWords(words []string) Option {
	return func(s *Selector) {
		s.commonWords = wordSet(words)
	}
}

// New creates a new selector with the given options.
func New(opts ...Option) *Selector {
	s := &Selector{
		count:       DefaultPassageCount,
		targetWords: DefaultTargetWords,
		lookahead:   DefaultTrimLookahead,
		slack:       DefaultTrimSlack,
		commonWords: wordSet(domain.DefaultCommonWords()),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewFromSettings creates a selector from run and extraction settings.
func NewFromSettings(check domain.CheckSettings, extraction domain.ExtractionSettings) *Selector {
	opts := []Option{
		WithPassageCount(check.PassagesPerChapter),
		WithTargetWords(check.TargetWords),
		WithTrim(extraction.TrimLookahead, extraction.TrimSlack),
	}
	if len(extraction.CommonWords) > 0 {
		opts = append(opts, WithCommonWords(extraction.CommonWords))
	}
	return New(opts...)
}

// Name returns the selector name.
func (s *Selector) Name() string {
	return "passages"
}

// Select returns at most the configured number of passages.
// With no more paragraphs than the passage count every paragraph is used.
// Otherwise the paragraphs are split into equal-width segments and the
// most distinctive paragraph of each non-empty segment is used.
func (s *Selector) Select(paragraphs []string) []string {
	if len(paragraphs) == 0 {
		return nil
	}

	if len(paragraphs) <= s.count {
		passages := make([]string, 0, len(paragraphs))
		for _, p := range paragraphs {
			passages = append(passages, s.Trim(p))
		}
		return passages
	}

	passages := make([]string, 0, s.count)
	for _, seg := range Segments(len(paragraphs), s.count) {
		if seg.Empty() {
			continue
		}
		best := s.mostDistinctive(paragraphs[seg.Start:seg.End])
		passages = append(passages, s.Trim(best))
	}

	return passages
}

// mostDistinctive returns the highest scoring paragraph; the first wins ties.
func (s *Selector) mostDistinctive(segment []string) string {
	best := segment[0]
	bestScore := s.Score(best)
	for _, p := range segment[1:] {
		if score := s.Score(p); score > bestScore {
			best, bestScore = p, score
		}
	}
	return best
}

// Score rates a paragraph's distinctiveness:
// word count + 10 × average word length + 50 × (1 − common word ratio).
// Empty text scores 0.
func (s *Selector) Score(text string) float64 {
	words := sentence.Words(text)
	if len(words) == 0 {
		return 0
	}

	letters := 0
	common := 0
	for _, w := range words {
		letters += utf8.RuneCountInString(w)
		if _, ok := s.commonWords[strings.ToLower(w)]; ok {
			common++
		}
	}

	n := float64(len(words))
	avgWordLen := float64(letters) / n
	commonRatio := float64(common) / n

	return n + avgWordLen*10 + (1-commonRatio)*50
}

// Trim shortens a paragraph to roughly the target length.
// Paragraphs at or under the target are returned unchanged. Longer ones are
// cut to target+lookahead words and rebuilt from whole sentences, stopping
// before a sentence that would pass target+slack once at least half the
// target is collected. If no sentence fits, the first target words are used.
func (s *Selector) Trim(text string) string {
	words := sentence.Words(text)
	if len(words) <= s.targetWords {
		return text
	}

	limit := s.targetWords + s.lookahead
	if limit > len(words) {
		limit = len(words)
	}
	candidate := strings.Join(words[:limit], " ")

	var kept []string
	count := 0
	for _, sent := range sentence.Split(candidate) {
		n := sentence.Count(sent)
		if count+n > s.targetWords+s.slack && count >= s.targetWords/2 {
			break
		}
		kept = append(kept, sent)
		count += n
	}

	if len(kept) > 0 {
		return strings.Join(kept, " ")
	}
	return strings.Join(words[:s.targetWords], " ")
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
