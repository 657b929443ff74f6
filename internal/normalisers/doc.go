// Package normalisers provides implementations of the ProseExtractor
// interface. Each normaliser knows how to pull prose out of one source
// format and discard everything that is not running text.
package normalisers
