// Package domain defines the core business entities for spotcheck.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chapter: A named unit of raw document text
//   - SearchResult / SearchOutcome: What the web search returned for a phrase
//   - CitationTermSet: Known cited authors, titles and domains
//   - PassageResult / ChapterResult: Classified findings per passage and chapter
//   - Report: All chapter results of one run plus severity counts
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
