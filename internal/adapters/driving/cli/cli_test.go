package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-spotcheck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/services"
	"github.com/custodia-labs/sercha-spotcheck/internal/logger"
)

const (
	introChapter = `# Introduction

The lighthouse keeper climbed the spiral stairs every evening at dusk, counting each of the one hundred and twelve iron steps beneath his boots.

## The Storm

When the storm finally broke over the headland, salt spray hammered the lantern glass and the old brass fittings groaned against the relentless wind.

- a list item that is not prose and should never be selected as a passage at all
`
	secondChapter = `# Second

Months later a surveyor arrived with crates of theodolites, chains and leather notebooks, determined to chart every cove along the broken northern coastline.
`
	worksCited = `# Works Cited

**Example Co.** *A History of Lighthouses*. example.com
`
)

// fakeSearcher records phrases and returns a fixed outcome.
type fakeSearcher struct {
	mu      sync.Mutex
	phrases []string
	outcome domain.SearchOutcome
}

func (f *fakeSearcher) Search(_ context.Context, phrase string) domain.SearchOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.phrases = append(f.phrases, phrase)
	return f.outcome
}

func (f *fakeSearcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.phrases)
}

// setupTestServices installs an in-memory settings service, a fake
// searcher and a no-op sleep, and restores everything afterwards.
func setupTestServices(t *testing.T, searcher *fakeSearcher) {
	t.Helper()

	oldSettings, oldSearcher, oldSleep := settingsService, newSearcher, newSleep
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	newSearcher = func(*domain.AppSettings) driven.WebSearcher {
		if searcher == nil {
			t.Error("searcher should not be created")
			return nil
		}
		return searcher
	}
	newSleep = func() services.SleepFunc {
		return func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	}

	t.Cleanup(func() {
		settingsService, newSearcher, newSleep = oldSettings, oldSearcher, oldSleep
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
}

// resetFlags restores every flag below cmd to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// setupDocument writes a document root with two chapters and a citation list.
func setupDocument(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	chapters := filepath.Join(root, "chapters")
	require.NoError(t, os.MkdirAll(chapters, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(chapters, "01-intro.md"), []byte(introChapter), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(chapters, "02-second.md"), []byte(secondChapter), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "WORKS_CITED.md"), []byte(worksCited), 0o644))
	return root
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
