// Package markdown extracts prose paragraphs from Markdown chapters.
package markdown

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.ProseExtractor = (*Normaliser)(nil)

// DefaultMinWords is the minimum word count for a paragraph to count as prose.
const DefaultMinWords = 20

// Normaliser handles Markdown chapters.
type Normaliser struct {
	minWords int
}

// Option configures the normaliser.
type Option func(*Normaliser)

// WithMinWords sets the minimum paragraph length in words.
func WithMinWords(n int) Option {
	return func(m *Normaliser) {
		if n > 0 {
			m.minWords = n
		}
	}
}

// New creates a new Markdown normaliser.
func New(opts ...Option) *Normaliser {
	n := &Normaliser{minWords: DefaultMinWords}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewFromSettings creates a normaliser using the extraction thresholds.
func NewFromSettings(s domain.ExtractionSettings) *Normaliser {
	return New(WithMinWords(s.MinParagraphWords))
}

// Pre-compiled regular expressions for line classification and inline stripping.
var (
	// Lines that end the current paragraph and are themselves discarded.
	skipLinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^#{1,6}\s`),       // headings
		regexp.MustCompile(`^\|`),             // table rows
		regexp.MustCompile("^```"),            // code fences
		regexp.MustCompile(`^\\newpage`),      // page breaks
		regexp.MustCompile(`^\*\*Next:\s*\[`), // navigation links
		regexp.MustCompile(`^!\[`),            // image references
		regexp.MustCompile(`^<!--`),           // HTML comments
		regexp.MustCompile(`^>\s*\*\*`),       // callout openers (> **Title:**)
	}

	inlineCitation = regexp.MustCompile(`\[Source:\s*[^\]]+\]`)
	inlineImage    = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	inlineLink     = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	inlineBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	inlineItalic   = regexp.MustCompile(`\*(.+?)\*`)
	inlineCode     = regexp.MustCompile("`[^`]+`")
	htmlComments   = regexp.MustCompile(`(?s)<!--.*?-->`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Extract returns the chapter's prose paragraphs in document order.
// A paragraph ends at a blank line, a non-prose line, or end of input.
// Lines inside fenced code blocks are ignored entirely.
func (n *Normaliser) Extract(content string) []string {
	var (
		raw     []string
		current []string
		inCode  bool
	)

	flush := func() {
		if len(current) > 0 {
			raw = append(raw, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "```") {
			inCode = !inCode
			flush()
			continue
		}

		if inCode {
			continue
		}

		if isSkipLine(stripped) || stripped == "" {
			flush()
			continue
		}

		current = append(current, stripped)
	}
	flush()

	paragraphs := make([]string, 0, len(raw))
	for _, p := range raw {
		text := StripInline(p)
		if len(strings.Fields(text)) >= n.minWords {
			paragraphs = append(paragraphs, text)
		}
	}

	return paragraphs
}

// isSkipLine returns true if a trimmed line is not prose.
func isSkipLine(line string) bool {
	for _, pattern := range skipLinePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// StripInline removes inline Markdown (citation markers, images, links,
// emphasis, code spans, HTML comments) and collapses whitespace.
func StripInline(text string) string {
	text = inlineCitation.ReplaceAllString(text, "")
	text = inlineImage.ReplaceAllString(text, "")
	text = inlineLink.ReplaceAllString(text, "$1")
	text = inlineBold.ReplaceAllString(text, "$1")
	text = inlineItalic.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "")
	text = htmlComments.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
