package domain

import "time"

// Summary counts passage severities across a whole run.
type Summary struct {
	Clean          int `json:"clean"`
	CitedMatch     int `json:"cited_match"`
	PotentialMatch int `json:"potential_match"`
	SearchError    int `json:"search_error"`
}

// Count returns the count for a severity.
func (s Summary) Count(severity Severity) int {
	switch severity {
	case SeverityClean:
		return s.Clean
	case SeverityCitedMatch:
		return s.CitedMatch
	case SeverityPotentialMatch:
		return s.PotentialMatch
	case SeveritySearchError:
		return s.SearchError
	default:
		return 0
	}
}

// Total returns the number of passages checked.
func (s Summary) Total() int {
	return s.Clean + s.CitedMatch + s.PotentialMatch + s.SearchError
}

// Summarise counts the severities of every passage in the given chapters.
func Summarise(chapters []ChapterResult) Summary {
	var s Summary
	for _, chapter := range chapters {
		for _, passage := range chapter.Passages {
			switch passage.Severity {
			case SeverityClean:
				s.Clean++
			case SeverityCitedMatch:
				s.CitedMatch++
			case SeverityPotentialMatch:
				s.PotentialMatch++
			case SeveritySearchError:
				s.SearchError++
			}
		}
	}
	return s
}

// Report is the aggregated result of one spot-check run.
type Report struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// DryRun is true when no searches were performed.
	DryRun bool `json:"dry_run"`

	// Chapters are the chapter results in processing order.
	Chapters []ChapterResult `json:"chapters"`

	// Summary counts severities across all chapters.
	Summary Summary `json:"summary"`
}

// NewReport builds a report and computes its summary.
func NewReport(runID string, startedAt time.Time, dryRun bool, chapters []ChapterResult) *Report {
	if chapters == nil {
		chapters = []ChapterResult{}
	}
	return &Report{
		RunID:     runID,
		StartedAt: startedAt,
		DryRun:    dryRun,
		Chapters:  chapters,
		Summary:   Summarise(chapters),
	}
}
