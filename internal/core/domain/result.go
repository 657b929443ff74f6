package domain

// PassageResult is the outcome of checking one passage.
// Severity is assigned when the result is created and never changed.
type PassageResult struct {
	// Passage is the trimmed prose span that was checked.
	Passage string `json:"passage"`

	// SearchPhrase is the exact-match query derived from Passage.
	SearchPhrase string `json:"search_phrase"`

	// Severity is the classification of the search outcome.
	Severity Severity `json:"severity"`

	// Results holds what the search returned; empty when clean or errored.
	Results []SearchResult `json:"results"`

	// Error is the search error text, only set for SeveritySearchError.
	Error string `json:"error,omitempty"`
}

// WordCount returns the number of whitespace-separated words in the passage.
func (p PassageResult) WordCount() int {
	return countWords(p.Passage)
}

// ChapterResult groups the passage results of one chapter.
type ChapterResult struct {
	// Chapter is the chapter name.
	Chapter string `json:"chapter"`

	// ParagraphCount is the number of prose paragraphs extracted.
	ParagraphCount int `json:"paragraph_count"`

	// Passages are the passage results in selection order.
	Passages []PassageResult `json:"passages"`
}

func countWords(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			inWord = false
		default:
			if !inWord {
				n++
			}
			inWord = true
		}
	}
	return n
}
