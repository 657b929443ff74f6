package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// OutputFormat selects how the report is rendered.
type OutputFormat string

// Available output formats.
const (
	// FormatText renders a human-readable report with a summary table.
	FormatText OutputFormat = "text"

	// FormatJSON renders a machine-readable report.
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case FormatText:
		return "Text (human-readable report)"
	case FormatJSON:
		return "JSON (machine-readable report)"
	default:
		return unknownDescription
	}
}

// CacheMode selects where successful search outcomes are cached.
type CacheMode string

// Available cache modes.
const (
	// CacheModeOff disables caching; every phrase is searched.
	CacheModeOff CacheMode = "off"

	// CacheModeMemory caches for the duration of one run.
	CacheModeMemory CacheMode = "memory"

	// CacheModeSQLite caches across runs in a local database.
	CacheModeSQLite CacheMode = "sqlite"
)

// IsValid returns true if the cache mode is recognised.
func (m CacheMode) IsValid() bool {
	switch m {
	case CacheModeOff, CacheModeMemory, CacheModeSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m CacheMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m CacheMode) Description() string {
	switch m {
	case CacheModeOff:
		return "Off (always search)"
	case CacheModeMemory:
		return "Memory (per run)"
	case CacheModeSQLite:
		return "SQLite (persistent)"
	default:
		return unknownDescription
	}
}

// CheckSettings configures one spot-check run.
type CheckSettings struct {
	// PassagesPerChapter is the maximum number of passages checked per chapter.
	PassagesPerChapter int

	// TargetWords is the ideal passage length in words.
	TargetWords int

	// Delay is inserted after every completed search.
	Delay time.Duration

	// MaxRetries is the number of retries after a rate-limit response.
	MaxRetries int

	// DryRun extracts passages without searching.
	DryRun bool

	// Format selects the report rendering.
	Format OutputFormat

	// ChapterFilter is an optional glob restricting which chapters are checked.
	ChapterFilter string
}

// Validate returns ErrInvalidInput if any value is out of range.
func (s CheckSettings) Validate() error {
	if s.PassagesPerChapter <= 0 {
		return fmt.Errorf("%w: passages per chapter must be positive, got %d", ErrInvalidInput, s.PassagesPerChapter)
	}
	if s.TargetWords <= 0 {
		return fmt.Errorf("%w: target words must be positive, got %d", ErrInvalidInput, s.TargetWords)
	}
	if s.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %s", ErrInvalidInput, s.Delay)
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must not be negative, got %d", ErrInvalidInput, s.MaxRetries)
	}
	if !s.Format.IsValid() {
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidInput, s.Format)
	}
	return nil
}

// SearchSettings configures the web search client.
type SearchSettings struct {
	// Endpoint is the HTML search endpoint URL.
	Endpoint string

	// UserAgent identifies the client to the search service.
	UserAgent string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// BackoffStep is multiplied by the attempt number between rate-limit retries.
	BackoffStep time.Duration
}

// CacheSettings configures the search result cache.
type CacheSettings struct {
	Mode CacheMode

	// Dir holds the SQLite database when Mode is CacheModeSQLite.
	// Empty means the default data directory.
	Dir string
}

// ExtractionSettings holds the thresholds of the text stages.
type ExtractionSettings struct {
	// MinParagraphWords is the minimum word count for a paragraph to count as prose.
	MinParagraphWords int

	// PhraseMinWords and PhraseMaxWords bound the search phrase length.
	PhraseMinWords int
	PhraseMaxWords int

	// TrimLookahead is how many words past the target are considered when trimming.
	TrimLookahead int

	// TrimSlack is how far past the target an accumulated passage may run.
	TrimSlack int

	// CommonWords are the function words that lower a paragraph's distinctiveness.
	CommonWords []string
}

// AppSettings contains all spotcheck settings.
type AppSettings struct {
	Check      CheckSettings
	Search     SearchSettings
	Cache      CacheSettings
	Extraction ExtractionSettings
}

// DefaultCommonWords returns the closed set of common function words
// used by the distinctiveness score.
func DefaultCommonWords() []string {
	return []string{
		"the", "is", "are", "was", "were", "be", "to", "of",
		"and", "a", "in", "that", "it", "for", "on", "with",
	}
}

// DefaultExtractionSettings returns the standard extraction thresholds.
func DefaultExtractionSettings() ExtractionSettings {
	return ExtractionSettings{
		MinParagraphWords: 20,
		PhraseMinWords:    8,
		PhraseMaxWords:    12,
		TrimLookahead:     15,
		TrimSlack:         10,
		CommonWords:       DefaultCommonWords(),
	}
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Check: CheckSettings{
			PassagesPerChapter: 5,
			TargetWords:        75,
			Delay:              5 * time.Second,
			MaxRetries:         2,
			Format:             FormatText,
		},
		Search: SearchSettings{
			Endpoint:    "https://html.duckduckgo.com/html/",
			UserAgent:   "Mozilla/5.0 (compatible; PlagiarismChecker/1.0)",
			Timeout:     15 * time.Second,
			BackoffStep: 10 * time.Second,
		},
		Cache: CacheSettings{
			Mode: CacheModeOff,
		},
		Extraction: DefaultExtractionSettings(),
	}
}
