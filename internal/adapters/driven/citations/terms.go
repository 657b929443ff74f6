package citations

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	// minTitleLength is the shortest italic text treated as a title.
	minTitleLength = 5

	// footerMarker prefixes the italic "last updated" footer, which is not a title.
	footerMarker = "last updated"
)

var domainPattern = regexp.MustCompile(`\b(\w+\.(?:com|org|io|net))\b`)

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

func markdownParser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New()
	})
	return parserInstance
}

// ExtractTerms returns the lower-cased, de-duplicated citation terms found in
// a markdown citation list, in order of first appearance.
func ExtractTerms(source []byte) []string {
	seen := make(map[string]struct{})
	var terms []string
	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	doc := markdownParser().Parser().Parse(text.NewReader(source))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		emphasis, ok := n.(*ast.Emphasis)
		if !ok {
			return ast.WalkContinue, nil
		}

		content := inlineText(emphasis, source)
		switch emphasis.Level {
		case 2:
			add(boldEntryTerm(content))
		case 1:
			if isTitle(content) {
				add(content)
			}
		}
		return ast.WalkContinue, nil
	})

	for _, m := range domainPattern.FindAllStringSubmatch(string(source), -1) {
		add(m[1])
	}

	return terms
}

// boldEntryTerm returns the part of a "Surname, First." entry before the
// first comma. Bold text not ending in a period is not an entry.
func boldEntryTerm(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasSuffix(content, ".") {
		return ""
	}
	content = strings.TrimSuffix(content, ".")
	name, _, _ := strings.Cut(content, ",")
	return name
}

func isTitle(content string) bool {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) < minTitleLength {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(content), footerMarker)
}

// inlineText concatenates the literal text below n. Soft line breaks become spaces.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.CodeSpan:
			for c := t.FirstChild(); c != nil; c = c.NextSibling() {
				if seg, ok := c.(*ast.Text); ok {
					b.Write(seg.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
