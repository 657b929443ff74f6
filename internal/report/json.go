package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// JSONFormatter renders the machine-readable report.
type JSONFormatter struct {
	indent string
}

// NewJSONFormatter creates a JSON formatter with two-space indentation.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{indent: "  "}
}

type jsonSummary struct {
	domain.Summary
	Total int `json:"total"`
}

type jsonReport struct {
	RunID     string                 `json:"run_id"`
	StartedAt time.Time              `json:"started_at"`
	DryRun    bool                   `json:"dry_run"`
	Chapters  []domain.ChapterResult `json:"chapters"`
	Summary   jsonSummary            `json:"summary"`
}

// Format writes the report as one JSON document.
// Empty passage and result lists are written as [] rather than null.
func (f *JSONFormatter) Format(w io.Writer, report *domain.Report) error {
	chapters := make([]domain.ChapterResult, len(report.Chapters))
	for i, chapter := range report.Chapters {
		passages := make([]domain.PassageResult, len(chapter.Passages))
		for j, passage := range chapter.Passages {
			if passage.Results == nil {
				passage.Results = []domain.SearchResult{}
			}
			passages[j] = passage
		}
		chapter.Passages = passages
		chapters[i] = chapter
	}

	summary := domain.Summarise(chapters)
	doc := jsonReport{
		RunID:     report.RunID,
		StartedAt: report.StartedAt,
		DryRun:    report.DryRun,
		Chapters:  chapters,
		Summary:   jsonSummary{Summary: summary, Total: summary.Total()},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", f.indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
