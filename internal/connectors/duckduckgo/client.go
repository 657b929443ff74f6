package duckduckgo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.WebSearcher = (*Client)(nil)

const (
	// DefaultEndpoint is the DuckDuckGo HTML search endpoint.
	DefaultEndpoint = "https://html.duckduckgo.com/html/"

	// DefaultUserAgent identifies the client to the search service.
	DefaultUserAgent = "Mozilla/5.0 (compatible; PlagiarismChecker/1.0)"

	// DefaultTimeout bounds each request.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxRetries is the number of retries after a rate-limit response.
	DefaultMaxRetries = 2

	// DefaultBackoffStep is multiplied by the attempt number between retries.
	DefaultBackoffStep = 10 * time.Second

	// maxBodySize caps how much of a results page is read.
	maxBodySize = 5 << 20
)

// Client searches DuckDuckGo for exact phrases.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	userAgent   string
	timeout     time.Duration
	maxRetries  int
	backoffStep time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option configures the client.
type Option func(*Client)

// WithEndpoint sets the search endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxRetries sets how many times a rate-limited search is retried.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithBackoffStep sets the linear backoff step between retries.
func WithBackoffStep(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.backoffStep = d
		}
	}
}

// WithHTTPClient replaces the HTTP client. The client's own timeout applies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithSleep replaces the backoff wait.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// New creates a new search client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:    DefaultEndpoint,
		userAgent:   DefaultUserAgent,
		timeout:     DefaultTimeout,
		maxRetries:  DefaultMaxRetries,
		backoffStep: DefaultBackoffStep,
		sleep:       sleepContext,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// NewFromSettings creates a client from search settings and the run's retry limit.
func NewFromSettings(s domain.SearchSettings, maxRetries int, opts ...Option) *Client {
	base := []Option{
		WithEndpoint(s.Endpoint),
		WithUserAgent(s.UserAgent),
		WithTimeout(s.Timeout),
		WithBackoffStep(s.BackoffStep),
		WithMaxRetries(maxRetries),
	}
	return New(append(base, opts...)...)
}

// Search looks up an exact phrase. Failures are returned inside the outcome.
func (c *Client) Search(ctx context.Context, phrase string) domain.SearchOutcome {
	results, err := c.search(ctx, phrase)
	if err != nil {
		logger.Debug("Search failed for %q: %v", phrase, err)
		return domain.SearchOutcome{Results: []domain.SearchResult{}, Err: err}
	}
	logger.Debug("Search for %q returned %d results", phrase, len(results))
	return domain.SearchOutcome{Results: results}
}

func (c *Client) search(ctx context.Context, phrase string) ([]domain.SearchResult, error) {
	searchURL, err := c.searchURL(phrase)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		results, err := c.fetch(ctx, searchURL)
		if err == nil {
			return results, nil
		}
		if !IsRetryable(err) || attempt >= c.maxRetries {
			return nil, err
		}

		backoff := c.backoffStep * time.Duration(attempt+1)
		logger.Progress("    Rate limited, waiting %s before retry...", backoff)
		if err := c.sleep(ctx, backoff); err != nil {
			return nil, err
		}
	}
}

// searchURL builds <endpoint>?q="<phrase>", keeping any query the endpoint already has.
func (c *Client) searchURL(phrase string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", `"`+phrase+`"`)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// fetch performs one request and parses the page.
func (c *Client) fetch(ctx context.Context, searchURL string) ([]domain.SearchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: searchURL}
	}

	return ParseResults(io.LimitReader(resp.Body, maxBodySize))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
