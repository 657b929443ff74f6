// Package connectors provides the adapters that reach outside the process:
// the chapter files of a document on disk and the web search service.
//
//   - filesystem: chapter discovery, reading and change watching
//   - duckduckgo: exact-phrase search over the DuckDuckGo HTML endpoint
package connectors
