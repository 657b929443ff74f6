package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

const (
	wrapWidth  = 76
	wrapIndent = "    "
)

// DryRunFormatter lists the extracted passages and phrases of each chapter.
type DryRunFormatter struct{}

// NewDryRunFormatter creates a dry-run formatter.
func NewDryRunFormatter() *DryRunFormatter {
	return &DryRunFormatter{}
}

// Format writes every chapter of the report.
func (f *DryRunFormatter) Format(w io.Writer, report *domain.Report) error {
	var lines []string
	for _, chapter := range report.Chapters {
		lines = append(lines, chapterLines(chapter)...)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// FormatChapter writes a single chapter, as used by watch mode.
func (f *DryRunFormatter) FormatChapter(w io.Writer, chapter domain.ChapterResult) error {
	_, err := fmt.Fprintln(w, strings.Join(chapterLines(chapter), "\n"))
	return err
}

func chapterLines(chapter domain.ChapterResult) []string {
	lines := []string{
		fmt.Sprintf("\n=== %s ===", chapter.Chapter),
		fmt.Sprintf("%sProse paragraphs found: %d", wrapIndent, chapter.ParagraphCount),
	}

	for i, passage := range chapter.Passages {
		lines = append(lines, fmt.Sprintf("\n  Passage %d (%d words):", i+1, passage.WordCount()))
		lines = append(lines, wrap(passage.Passage, wrapWidth, wrapIndent)...)
		lines = append(lines, fmt.Sprintf("  Search phrase: \"%s\"", passage.SearchPhrase))
	}

	return lines
}

// wrap fills words into indented lines of at most width runes.
// A single word longer than the line gets a line of its own.
func wrap(text string, width int, indent string) []string {
	var lines []string
	current := indent
	for _, word := range strings.Fields(text) {
		empty := current == indent
		if !empty && utf8.RuneCountInString(current)+utf8.RuneCountInString(word)+1 > width {
			lines = append(lines, current)
			current = indent + word
			continue
		}
		if !empty {
			current += " "
		}
		current += word
	}
	if current != indent {
		lines = append(lines, current)
	}
	return lines
}
