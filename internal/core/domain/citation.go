package domain

import (
	"sort"
	"strings"
)

// CitationTermSet is the set of lower-cased terms (author surnames, title
// fragments, site domains) taken from the document's citation list.
// It is built once per run and never modified afterwards.
type CitationTermSet struct {
	terms map[string]struct{}
}

// NewCitationTermSet builds a set from the given terms.
// Terms are trimmed and lower-cased; empty terms and duplicates are dropped.
func NewCitationTermSet(terms ...string) *CitationTermSet {
	set := &CitationTermSet{terms: make(map[string]struct{}, len(terms))}
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		set.terms[term] = struct{}{}
	}
	return set
}

// Len returns the number of distinct terms.
func (c *CitationTermSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.terms)
}

// Contains returns true if the exact term is in the set.
func (c *CitationTermSet) Contains(term string) bool {
	if c == nil {
		return false
	}
	_, ok := c.terms[strings.ToLower(term)]
	return ok
}

// Terms returns the terms in sorted order.
func (c *CitationTermSet) Terms() []string {
	if c == nil {
		return nil
	}
	terms := make([]string, 0, len(c.terms))
	for term := range c.terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Matches returns true if any term occurs, case-insensitively, inside the
// result's title and snippet joined by a space.
func (c *CitationTermSet) Matches(result SearchResult) bool {
	if c.Len() == 0 {
		return false
	}
	text := strings.ToLower(result.Title + " " + result.Snippet)
	for term := range c.terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
