// Package duckduckgo implements exact-phrase web search against the
// DuckDuckGo HTML endpoint.
//
// # Request
//
// Each search is one GET of <endpoint>?q="<phrase>" with a fixed User-Agent
// and a per-request timeout.
//
// # Rate Limiting
//
// DuckDuckGo answers bursts with HTTP 403. A 403 is retried up to the
// configured maximum with a linear backoff of step × attempt (10s, 20s, ...),
// announcing each wait on the progress channel. Every other failure is
// returned at once. Pacing between searches is the caller's job.
//
// # Results
//
// Titles come from a.result__a elements and snippets from .result__snippet
// elements. Both are reduced to their text with entities decoded, paired by
// position up to the shorter list, and kept when either is non-empty.
package duckduckgo
