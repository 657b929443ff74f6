package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

const (
	reportTitle = "PLAGIARISM SPOT-CHECK REPORT"
	ruleWidth   = 70

	// Matches listed under each severity.
	citedListed     = 2
	potentialListed = 3

	titleWidth   = 80
	snippetWidth = 100

	// Width of the summary labels column.
	labelWidth = 20
)

// TextFormatter renders the human-readable report.
type TextFormatter struct {
	styles *Styles
}

// NewTextFormatter creates a text formatter. Nil styles render plain text.
func NewTextFormatter(styles *Styles) *TextFormatter {
	if styles == nil {
		styles = PlainStyles()
	}
	return &TextFormatter{styles: styles}
}

// Format writes the report with one section per chapter and a summary table.
func (f *TextFormatter) Format(w io.Writer, report *domain.Report) error {
	s := f.styles
	rule := s.banner(strings.Repeat("=", ruleWidth))

	var lines []string
	lines = append(lines, rule, s.banner(reportTitle), rule)

	for _, chapter := range report.Chapters {
		lines = append(lines, "\n"+s.chapter("--- "+chapter.Chapter+" ---"))
		for _, passage := range chapter.Passages {
			lines = append(lines, f.passageLines(passage)...)
		}
	}

	// Counted from the passages listed above.
	summary := domain.Summarise(report.Chapters)

	lines = append(lines, "\n"+rule, s.banner("SUMMARY"))
	for _, severity := range domain.AllSeverities() {
		lines = append(lines, summaryLine(severity.Description(), summary.Count(severity)))
	}
	lines = append(lines, summaryLine("Total checked", summary.Total()), rule)

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func (f *TextFormatter) passageLines(p domain.PassageResult) []string {
	s := f.styles
	lines := []string{fmt.Sprintf("  %s \"%s\"", s.severityLabel(p.Severity), p.SearchPhrase)}

	switch p.Severity {
	case domain.SeveritySearchError:
		errText := p.Error
		if errText == "" {
			errText = "unknown"
		}
		lines = append(lines, "    -> "+errText)
	case domain.SeverityCitedMatch:
		for _, r := range p.Results[:min(len(p.Results), citedListed)] {
			lines = append(lines, "    -> "+truncate(r.Title, titleWidth))
		}
	case domain.SeverityPotentialMatch:
		for _, r := range p.Results[:min(len(p.Results), potentialListed)] {
			lines = append(lines, "    -> "+truncate(r.Title, titleWidth))
			if r.Snippet != "" {
				lines = append(lines, "       "+s.muted(truncate(r.Snippet, snippetWidth)))
			}
		}
	}

	return lines
}

func summaryLine(label string, count int) string {
	return fmt.Sprintf("  %-*s%d", labelWidth, label+":", count)
}
