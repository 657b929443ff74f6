// Package sentence provides the word and sentence splitting shared by the
// passage and phrase stages.
package sentence

import (
	"strings"
	"unicode"
)

// Words splits text on runs of whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// Count returns the number of words in text.
func Count(text string) int {
	return len(strings.Fields(text))
}

// Split breaks text into sentences. A boundary is a run of whitespace
// immediately preceded by '.', '!' or '?'; the whitespace is consumed and
// the terminator stays with its sentence. Empty pieces are dropped.
func Split(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) || i == 0 || !isTerminator(runes[i-1]) {
			continue
		}
		end := i
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		sentences = appendNonEmpty(sentences, string(runes[start:end]))
		start = i
		i-- // loop increment lands on the first rune of the next sentence
	}

	return appendNonEmpty(sentences, string(runes[start:]))
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func appendNonEmpty(sentences []string, s string) []string {
	if strings.TrimSpace(s) == "" {
		return sentences
	}
	return append(sentences, s)
}
