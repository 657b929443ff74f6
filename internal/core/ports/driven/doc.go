// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ChapterSource: Discovers and reads chapter files
//   - CitationSource: Produces the citation term set
//   - PassagePipeline: Runs the text stages (prose, passages, phrases)
//   - WebSearcher: Exact-phrase web search (DuckDuckGo HTML endpoint)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SearchCache: Caches successful search outcomes. Without it every phrase is searched.
//   - ChapterWatcher: Emits chapters as they change. Only used by watch mode.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
