package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/logger"
)

// Watch emits a chapter every time a matching file in the chapters
// directory is created or written. The channel closes when ctx is done
// or the source is closed. Only the top level of the directory is watched.
func (s *Source) Watch(ctx context.Context, filter string) (<-chan domain.Chapter, error) {
	if s.isClosed() {
		return nil, ErrSourceClosed
	}

	dir, err := s.checkLayout()
	if err != nil {
		return nil, err
	}

	pattern := Pattern(filter)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad chapter pattern %q", domain.ErrInvalidInput, filter)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	out := make(chan domain.Chapter)
	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				chapter, ok := s.handleFsEvent(dir, pattern, event)
				if !ok {
					continue
				}
				select {
				case out <- chapter:
				case <-ctx.Done():
					return
				case <-s.done:
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error: %v", err)
			}
		}
	}()

	return out, nil
}

// handleFsEvent turns a create or write of a matching chapter file into a
// chapter. Removals, renames, directories and unreadable files are ignored.
func (s *Source) handleFsEvent(dir, pattern string, event fsnotify.Event) (domain.Chapter, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return domain.Chapter{}, false
	}

	rel, err := filepath.Rel(dir, event.Name)
	if err != nil {
		return domain.Chapter{}, false
	}
	rel = filepath.ToSlash(rel)

	if matched, _ := doublestar.Match(pattern, rel); !matched {
		return domain.Chapter{}, false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return domain.Chapter{}, false
	}

	content, err := os.ReadFile(event.Name)
	if err != nil {
		logger.Warn("Reading %s: %v", event.Name, err)
		return domain.Chapter{}, false
	}

	logger.Debug("Chapter changed: %s", rel)
	return domain.Chapter{Name: rel, Content: string(content)}, true
}
