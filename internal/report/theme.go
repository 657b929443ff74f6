package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// Theme defines the colour palette of the text report.
type Theme struct {
	// Primary colours the banner and headings.
	Primary lipgloss.Color

	// Secondary colours chapter headers.
	Secondary lipgloss.Color

	// Muted is for snippets and secondary detail.
	Muted lipgloss.Color

	// Success marks clean passages.
	Success lipgloss.Color

	// Info marks cited matches.
	Info lipgloss.Color

	// Warning marks potential matches.
	Warning lipgloss.Color

	// Error marks search errors.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Info:      lipgloss.Color("#89B4FA"), // Blue
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
		Error:     lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles holds the lipgloss styles used by the text report.
// The zero value renders plain text.
type Styles struct {
	enabled bool

	Banner  lipgloss.Style
	Chapter lipgloss.Style
	Muted   lipgloss.Style

	severity map[domain.Severity]lipgloss.Style
}

// NewStyles creates styles for w from a theme.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return &Styles{
		enabled: true,

		Banner: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Chapter: r.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Muted: r.NewStyle().
			Foreground(theme.Muted),

		severity: map[domain.Severity]lipgloss.Style{
			domain.SeverityClean:          r.NewStyle().Foreground(theme.Success),
			domain.SeverityCitedMatch:     r.NewStyle().Foreground(theme.Info),
			domain.SeverityPotentialMatch: r.NewStyle().Bold(true).Foreground(theme.Warning),
			domain.SeveritySearchError:    r.NewStyle().Foreground(theme.Error),
		},
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() *Styles {
	return &Styles{}
}

// Enabled reports whether the styles emit any markup.
func (s *Styles) Enabled() bool {
	return s != nil && s.enabled
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.Enabled() {
		return text
	}
	return style.Render(text)
}

func (s *Styles) banner(text string) string  { return s.render(s.Banner, text) }
func (s *Styles) chapter(text string) string { return s.render(s.Chapter, text) }
func (s *Styles) muted(text string) string   { return s.render(s.Muted, text) }

func (s *Styles) severityLabel(severity domain.Severity) string {
	label := "[" + severity.String() + "]"
	if !s.Enabled() {
		return label
	}
	return s.severity[severity].Render(label)
}

// ColorEnabled reports whether w is a terminal that should get colour.
// NO_COLOR disables colour regardless of the terminal.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
