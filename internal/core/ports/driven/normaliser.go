package driven

// ProseExtractor turns raw chapter text into prose paragraphs.
// Non-prose lines (headings, tables, code, images, navigation) are dropped,
// inline markup is stripped, and short paragraphs are discarded.
// Extraction never fails; malformed markup degrades to stripped text.
type ProseExtractor interface {
	Extract(content string) []string
}
