package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the defaults used by 'spotcheck check'.

Settings are stored in config.toml inside the config directory. Flags given
to 'spotcheck check' override stored settings for that run only.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Validate and store a single setting.

Available keys:
  check.passages_per_chapter  passages checked per chapter (positive integer)
  check.target_words          target words per passage (positive integer)
  check.delay_seconds         delay between searches (seconds, may be 0)
  check.max_retries           retries after a rate-limited search
  check.format                text or json
  search.endpoint             HTML search endpoint URL
  search.user_agent           User-Agent header sent with searches
  search.timeout_seconds      per-request timeout (seconds)
  cache.mode                  off, memory or sqlite
  cache.dir                   directory for the sqlite cache`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Check]")
	cmd.Printf("  Passages per chapter: %d\n", settings.Check.PassagesPerChapter)
	cmd.Printf("  Target words: %d\n", settings.Check.TargetWords)
	cmd.Printf("  Delay: %s\n", settings.Check.Delay)
	cmd.Printf("  Max retries: %d\n", settings.Check.MaxRetries)
	cmd.Printf("  Format: %s\n", settings.Check.Format.Description())
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Endpoint: %s\n", settings.Search.Endpoint)
	cmd.Printf("  User agent: %s\n", settings.Search.UserAgent)
	cmd.Printf("  Timeout: %s\n", settings.Search.Timeout)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Mode: %s\n", settings.Cache.Mode.Description())
	dir := settings.Cache.Dir
	if dir == "" {
		dir = "(default)"
	}
	cmd.Printf("  Directory: %s\n", dir)
	cmd.Println()

	cmd.Printf("Config file: %s\n", svc.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	key, value := strings.TrimSpace(args[0]), args[1]
	if err := svc.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w (keys: %s)", key, err, strings.Join(svc.Keys(), ", "))
	}

	cmd.Printf("Set %s = %s\n", key, strings.TrimSpace(value))
	return nil
}
