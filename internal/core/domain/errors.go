package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Document Errors.

	// ErrDocumentRootNotFound indicates the document root directory does not exist.
	ErrDocumentRootNotFound = errors.New("document root not found")

	// ErrChaptersNotFound indicates the chapters directory does not exist.
	ErrChaptersNotFound = errors.New("chapters directory not found")

	// ErrNoChapters indicates no chapter files matched the selection.
	ErrNoChapters = errors.New("no chapters found")

	// Search Errors.

	// ErrRateLimited indicates the search service refused the request as rate limited.
	ErrRateLimited = errors.New("rate limited")

	// ErrCacheUnavailable indicates the search cache could not be opened.
	// Checks still run, every phrase goes to the network.
	ErrCacheUnavailable = errors.New("search cache unavailable")
)
