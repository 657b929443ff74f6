package duckduckgo

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
)

// StatusError represents a non-success HTTP response from the search endpoint.
type StatusError struct {
	StatusCode int
	URL        string
}

// Error returns e.g. "HTTP Error 403: Forbidden".
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap exposes domain.ErrRateLimited for rate-limit responses.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusForbidden {
		return domain.ErrRateLimited
	}
	return nil
}

// IsRateLimited checks if the error is a rate-limit response.
func IsRateLimited(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsRetryable checks if the search should be attempted again.
// Only rate-limit responses are retried.
func IsRetryable(err error) bool {
	return IsRateLimited(err)
}

// IsStatus checks if the error is an HTTP response with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == code
	}
	return false
}
