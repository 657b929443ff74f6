package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/sercha-spotcheck/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
)

// dbFile is the cache database file name inside the data directory.
const dbFile = "cache.db"

// Store is a SQLite database holding the search cache.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.sercha-spotcheck/data/cache.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sercha-spotcheck", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", domain.ErrCacheUnavailable, err)
	}

	dbPath := filepath.Join(dataDir, dbFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrCacheUnavailable, err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
		now:  time.Now,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SearchCache returns a SearchCache interface backed by this store.
// Closing the cache closes the store.
func (s *Store) SearchCache() driven.SearchCache {
	return &searchCache{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_search_cache.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Search Cache ====================

// searchCache implements driven.SearchCache.
type searchCache struct {
	store *Store
}

var _ driven.SearchCache = (*searchCache)(nil)

// Get returns the cached results for an exact phrase.
func (c *searchCache) Get(ctx context.Context, phrase string) ([]domain.SearchResult, bool, error) {
	row := c.store.db.QueryRowContext(ctx, `SELECT results FROM search_cache WHERE phrase = ?`, phrase)

	var resultsJSON string
	if err := row.Scan(&resultsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("scanning cached results: %w", err)
	}

	var results []domain.SearchResult
	if err := json.Unmarshal([]byte(resultsJSON), &results); err != nil {
		return nil, false, fmt.Errorf("unmarshaling cached results: %w", err)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	return results, true, nil
}

// Put stores or replaces the results for an exact phrase.
func (c *searchCache) Put(ctx context.Context, phrase string, results []domain.SearchResult) error {
	if results == nil {
		results = []domain.SearchResult{}
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshalling results: %w", err)
	}

	_, err = c.store.db.ExecContext(ctx, `
		INSERT INTO search_cache (phrase, results, cached_at)
		VALUES (?, ?, ?)
		ON CONFLICT(phrase) DO UPDATE SET
			results = excluded.results,
			cached_at = excluded.cached_at
	`, phrase, string(resultsJSON), c.store.now().UTC())
	if err != nil {
		return fmt.Errorf("saving cached results: %w", err)
	}
	return nil
}

// Close closes the underlying store.
func (c *searchCache) Close() error {
	return c.store.Close()
}
