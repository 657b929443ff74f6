package report

import (
	"io"
	"unicode/utf8"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// Formatter writes a report to w.
type Formatter interface {
	Format(w io.Writer, report *domain.Report) error
}

// Ensure formatters implement the interface.
var (
	_ Formatter = (*TextFormatter)(nil)
	_ Formatter = (*JSONFormatter)(nil)
	_ Formatter = (*DryRunFormatter)(nil)
)

// New returns the formatter for the run's settings. Dry runs always use the
// passage listing. Styles only affect the text report; nil means plain.
func New(settings domain.CheckSettings, styles *Styles) Formatter {
	switch {
	case settings.DryRun:
		return NewDryRunFormatter()
	case settings.Format == domain.FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter(styles)
	}
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
