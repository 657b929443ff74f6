package domain

// SearchResult is a single title/snippet pair returned by the web search.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchOutcome is the reified result of searching one phrase.
// Exactly one of Results or Err is meaningful: when Err is set the
// search failed and Results is empty.
type SearchOutcome struct {
	Results []SearchResult
	Err     error
}

// Failed returns true if the search call itself errored.
func (o SearchOutcome) Failed() bool {
	return o.Err != nil
}

// ErrorText returns the error message verbatim, or "" if the search succeeded.
func (o SearchOutcome) ErrorText() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
