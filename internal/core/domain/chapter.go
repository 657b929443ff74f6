package domain

// Chapter is one document unit to be spot-checked.
// Name identifies the chapter in reports (typically the file name).
type Chapter struct {
	Name    string
	Content string
}

// Candidate pairs a selected passage with the search phrase derived from it.
type Candidate struct {
	Passage      string
	SearchPhrase string
}

// ChapterExtraction is the output of the text stages for one chapter:
// how many prose paragraphs were found and which passages will be checked.
type ChapterExtraction struct {
	Chapter        string
	ParagraphCount int
	Candidates     []Candidate
}
