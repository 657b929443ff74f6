// Package sqlite provides a SQLite-backed search result cache.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. Successful search outcomes are stored by exact phrase so repeated runs
// over unchanged chapters do not hit the search service again.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.sercha-spotcheck/data/cache.db
package sqlite
