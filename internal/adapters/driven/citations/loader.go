package citations

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.CitationSource = (*Loader)(nil)

// FileName is the citation list's fixed name inside the document root.
const FileName = "WORKS_CITED.md"

// Loader reads citation terms from <root>/WORKS_CITED.md.
type Loader struct {
	root string
}

// New creates a loader for the given document root.
func New(root string) *Loader {
	return &Loader{root: root}
}

// Path returns the citation file location.
func (l *Loader) Path() string {
	return filepath.Join(l.root, FileName)
}

// CitationTerms parses the citation file. A missing file yields an empty set.
func (l *Loader) CitationTerms(ctx context.Context) (*domain.CitationTermSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := os.ReadFile(l.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("No %s in %s, citation matching disabled", FileName, l.root)
			return domain.NewCitationTermSet(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	terms := ExtractTerms(source)
	logger.Debug("Loaded %d citation terms from %s", len(terms), l.Path())
	return domain.NewCitationTermSet(terms...), nil
}
