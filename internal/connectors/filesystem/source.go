// Package filesystem reads chapter files from a document root.
//
// A document root holds a chapters/ directory of Markdown files and an
// optional WORKS_CITED.md. Chapters are selected with a glob and processed
// in file name order.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
)

// Ensure Source implements the interfaces.
var (
	_ driven.ChapterSource  = (*Source)(nil)
	_ driven.ChapterWatcher = (*Source)(nil)
)

const (
	// ChaptersDir is the chapters directory name under the document root.
	ChaptersDir = "chapters"

	// DefaultPattern selects every Markdown chapter.
	DefaultPattern = "*.md"
)

// ErrSourceClosed is returned when watching a closed source.
var ErrSourceClosed = errors.New("filesystem: source is closed")

// Source reads chapters from <root>/chapters.
type Source struct {
	root      string
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a chapter source for a document root.
func New(root string) *Source {
	return &Source{
		root: root,
		done: make(chan struct{}),
	}
}

// Root returns the document root.
func (s *Source) Root() string {
	return s.root
}

// ChaptersPath returns the chapters directory.
func (s *Source) ChaptersPath() string {
	return filepath.Join(s.root, ChaptersDir)
}

// Pattern normalises a chapter filter: empty selects every Markdown file,
// and ".md" is appended when missing so "06-*" means "06-*.md".
func Pattern(filter string) string {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return DefaultPattern
	}
	if !strings.HasSuffix(filter, ".md") {
		filter += ".md"
	}
	return filepath.ToSlash(filter)
}

// Chapters returns the chapters matching filter, sorted by path.
func (s *Source) Chapters(ctx context.Context, filter string) ([]domain.Chapter, error) {
	dir, err := s.checkLayout()
	if err != nil {
		return nil, err
	}

	pattern := Pattern(filter)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad chapter pattern %q", domain.ErrInvalidInput, filter)
	}

	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}
	sort.Strings(matches)

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no files match %s in %s", domain.ErrNoChapters, pattern, dir)
	}

	chapters := make([]domain.Chapter, 0, len(matches))
	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading chapter %s: %w", name, err)
		}
		chapters = append(chapters, domain.Chapter{Name: name, Content: string(content)})
	}

	return chapters, nil
}

// checkLayout verifies the document root and chapters directory exist.
func (s *Source) checkLayout() (string, error) {
	if info, err := os.Stat(s.root); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrDocumentRootNotFound, s.root)
	}

	dir := s.ChaptersPath()
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrChaptersNotFound, dir)
	}
	return dir, nil
}

// Close stops any active watches. Safe to call more than once.
func (s *Source) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

func (s *Source) isClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
