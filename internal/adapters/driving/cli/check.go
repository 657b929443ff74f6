package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-spotcheck/internal/adapters/driven/citations"
	"github.com/custodia-labs/sercha-spotcheck/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-spotcheck/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sercha-spotcheck/internal/connectors/duckduckgo"
	"github.com/custodia-labs/sercha-spotcheck/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/domain"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/services"
	"github.com/custodia-labs/sercha-spotcheck/internal/logger"
	"github.com/custodia-labs/sercha-spotcheck/internal/postprocessors"
	"github.com/custodia-labs/sercha-spotcheck/internal/report"
)

var checkOpts struct {
	chapters           string
	passagesPerChapter int
	targetWords        int
	delay              float64
	maxRetries         int
	dryRun             bool
	format             string
	cache              string
	watch              bool
}

// newSearcher builds the web search client. Tests replace it.
var newSearcher = func(settings *domain.AppSettings) driven.WebSearcher {
	return duckduckgo.NewFromSettings(settings.Search, settings.Check.MaxRetries)
}

// newSleep returns the inter-request wait. Tests replace it.
var newSleep = func() services.SleepFunc {
	return services.SleepContext
}

var checkCmd = &cobra.Command{
	Use:   "check <document-root>",
	Short: "Spot-check a document's chapters for copied passages",
	Long: `Checks the chapters/*.md files under <document-root>.

For each chapter the most distinctive prose passages are selected and an
exact phrase from each is searched on the web. Every passage is reported as
one of:

  CLEAN            no match found
  CITED MATCH      every match is accounted for by WORKS_CITED.md
  POTENTIAL MATCH  at least one match has no known citation
  SEARCH ERROR     the search itself failed

Searches run one at a time with a delay between them. Use --dry-run to see
the selected passages without searching.`,
	Example: `  spotcheck check ebooks/my-book
  spotcheck check ebooks/my-book --chapters "06-*" --format json
  spotcheck check ebooks/my-book --dry-run --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	flags := checkCmd.Flags()
	flags.StringVar(&checkOpts.chapters, "chapters", "", `glob for specific chapters, e.g. "06-*"`)
	flags.IntVar(&checkOpts.passagesPerChapter, "passages-per-chapter", 5, "number of passages to check per chapter")
	flags.IntVar(&checkOpts.targetWords, "target-words", 75, "target words per passage")
	flags.Float64Var(&checkOpts.delay, "delay", 5, "delay between web searches in seconds")
	flags.IntVar(&checkOpts.maxRetries, "max-retries", 2, "retries after a rate-limited search")
	flags.BoolVar(&checkOpts.dryRun, "dry-run", false, "show extracted passages without searching")
	flags.StringVar(&checkOpts.format, "format", "text", "output format: text or json")
	flags.StringVar(&checkOpts.cache, "cache", "off", "search cache: off, memory or sqlite")
	flags.BoolVar(&checkOpts.watch, "watch", false, "with --dry-run, re-extract chapters as they change")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := applyCheckFlags(cmd, settings); err != nil {
		return err
	}
	if err := settings.Check.Validate(); err != nil {
		return err
	}
	if checkOpts.watch && !settings.Check.DryRun {
		return fmt.Errorf("%w: --watch requires --dry-run", domain.ErrInvalidInput)
	}

	root := args[0]
	source := filesystem.New(root)
	defer source.Close()

	var searcher driven.WebSearcher
	opts := []services.SpotCheckOption{services.WithSleep(newSleep())}
	if !settings.Check.DryRun {
		searcher = newSearcher(settings)
		if cache := openCache(settings.Cache); cache != nil {
			defer cache.Close()
			opts = append(opts, services.WithCache(cache))
		}
	}

	spotCheck := services.NewSpotCheckService(
		source,
		citations.New(root),
		pipelineFactory(settings.Extraction),
		searcher,
		opts...,
	)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := spotCheck.Check(ctx, settings.Check)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	var styles *report.Styles
	if report.ColorEnabled(out) {
		styles = report.NewStyles(out, nil)
	}
	if err := report.New(settings.Check, styles).Format(out, rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if checkOpts.watch {
		return watchChapters(ctx, cmd, spotCheck, source, settings.Check)
	}
	return nil
}

// applyCheckFlags overlays explicitly set flags on the stored settings.
func applyCheckFlags(cmd *cobra.Command, settings *domain.AppSettings) error {
	flags := cmd.Flags()
	check := &settings.Check

	if flags.Changed("passages-per-chapter") {
		check.PassagesPerChapter = checkOpts.passagesPerChapter
	}
	if flags.Changed("target-words") {
		check.TargetWords = checkOpts.targetWords
	}
	if flags.Changed("delay") {
		check.Delay = time.Duration(checkOpts.delay * float64(time.Second))
	}
	if flags.Changed("max-retries") {
		check.MaxRetries = checkOpts.maxRetries
	}
	if flags.Changed("format") {
		check.Format = domain.OutputFormat(checkOpts.format)
	}
	if flags.Changed("cache") {
		mode := domain.CacheMode(checkOpts.cache)
		if !mode.IsValid() {
			return fmt.Errorf("%w: unknown cache mode %q", domain.ErrInvalidInput, checkOpts.cache)
		}
		settings.Cache.Mode = mode
	}
	check.DryRun = checkOpts.dryRun
	check.ChapterFilter = checkOpts.chapters
	return nil
}

// openCache returns the configured search cache, or nil when caching is off.
// A persistent cache that cannot be opened degrades to a per-run cache.
func openCache(settings domain.CacheSettings) driven.SearchCache {
	switch settings.Mode {
	case domain.CacheModeMemory:
		return memory.NewSearchCache()
	case domain.CacheModeSQLite:
		store, err := sqlite.NewStore(settings.Dir)
		if err != nil {
			logger.Progress("Warning: %v; using an in-memory cache", err)
			return memory.NewSearchCache()
		}
		logger.Debug("Search cache at %s", store.Path())
		return store.SearchCache()
	default:
		return nil
	}
}

func pipelineFactory(extraction domain.ExtractionSettings) services.PipelineFactory {
	return func(check domain.CheckSettings) driven.PassagePipeline {
		return postprocessors.NewDefaultPipeline(check, extraction)
	}
}

// watchChapters re-extracts each changed chapter until ctx is cancelled.
func watchChapters(
	ctx context.Context,
	cmd *cobra.Command,
	spotCheck *services.SpotCheckService,
	watcher driven.ChapterWatcher,
	check domain.CheckSettings,
) error {
	changes, err := watcher.Watch(ctx, check.ChapterFilter)
	if err != nil {
		return fmt.Errorf("failed to watch chapters: %w", err)
	}
	logger.Progress("Watching for chapter changes (Ctrl+C to stop)...")

	formatter := report.NewDryRunFormatter()
	for chapter := range changes {
		result, err := spotCheck.CheckChapter(ctx, chapter, check)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			logger.Progress("Warning: %s: %v", chapter.Name, err)
			continue
		}
		if err := formatter.FormatChapter(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write chapter: %w", err)
		}
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
