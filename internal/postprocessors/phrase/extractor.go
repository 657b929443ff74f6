// Package phrase derives a short exact-match search phrase from a passage.
package phrase

import (
	"strings"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/postprocessors/sentence"
)

// Ensure Extractor implements the interface.
var _ driven.PhraseExtractor = (*Extractor)(nil)

const (
	// DefaultMinWords is the lower bound used to centre the phrase window.
	DefaultMinWords = 8
	// DefaultMaxWords is the longest phrase ever returned.
	DefaultMaxWords = 12
)

// Extractor picks the longest interior sentence of a passage and, when it is
// too long, a window of words around its middle.
type Extractor struct {
	minWords int
	maxWords int
}

// Option configures the extractor.
type Option func(*Extractor)

// WithBounds sets the phrase length bounds in words.
// Invalid bounds are ignored.
func WithBounds(minWords, maxWords int) Option {
	return func(e *Extractor) {
		if minWords > 0 && maxWords >= minWords {
			e.minWords = minWords
			e.maxWords = maxWords
		}
	}
}

// New creates a new extractor with the given options.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		minWords: DefaultMinWords,
		maxWords: DefaultMaxWords,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// NewFromSettings creates an extractor from extraction settings.
func NewFromSettings(s domain.ExtractionSettings) *Extractor {
	return New(WithBounds(s.PhraseMinWords, s.PhraseMaxWords))
}

// Phrase returns the search phrase for a passage.
// Empty passages yield an empty phrase.
func (e *Extractor) Phrase(passage string) string {
	best := longest(interior(sentence.Split(passage)))
	words := sentence.Words(best)

	if len(words) <= e.maxWords {
		return strings.TrimSpace(best)
	}

	mid := len(words) / 2
	half := (e.minWords + e.maxWords) / 4
	start := max(0, mid-half)
	end := min(len(words), start+e.maxWords)
	start = max(0, end-e.maxWords)

	return strings.Join(words[start:end], " ")
}

// interior drops the opening and closing sentences where there are enough
// sentences to spare them.
func interior(sentences []string) []string {
	switch {
	case len(sentences) >= 3:
		return sentences[1 : len(sentences)-1]
	case len(sentences) == 2:
		return sentences[1:]
	default:
		return sentences
	}
}

// longest returns the sentence with the most words; the first wins ties.
func longest(sentences []string) string {
	best := ""
	bestCount := -1
	for _, s := range sentences {
		if n := sentence.Count(s); n > bestCount {
			best, bestCount = s, n
		}
	}
	return best
}
