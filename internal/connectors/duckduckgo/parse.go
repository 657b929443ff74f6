package duckduckgo

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

const (
	titleClass   = "result__a"
	snippetClass = "result__snippet"
)

// ParseResults extracts title/snippet pairs from a results page.
// Markup the parser cannot make sense of yields fewer results, not an error;
// only a failing reader is reported.
func ParseResults(r io.Reader) ([]domain.SearchResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}

	var titles, snippets []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case hasClass(n, titleClass):
				titles = append(titles, textContent(n))
				return
			case hasClass(n, snippetClass):
				snippets = append(snippets, textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	n := min(len(titles), len(snippets))
	results := make([]domain.SearchResult, 0, n)
	for i := 0; i < n; i++ {
		if titles[i] == "" && snippets[i] == "" {
			continue
		}
		results = append(results, domain.SearchResult{Title: titles[i], Snippet: snippets[i]})
	}

	return results, nil
}

// hasClass reports whether the element's class attribute lists class.
func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// textContent concatenates the text below n and trims the ends.
// Entities are already decoded by the parser.
func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(b.String())
}
