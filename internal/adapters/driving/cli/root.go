// Package cli provides the spotcheck command-line interface.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-spotcheck/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-spotcheck/internal/core/services"
	"github.com/custodia-labs/sercha-spotcheck/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// settingsService is created on first use from the config directory.
// Tests replace it with one backed by an in-memory store.
var settingsService driving.SettingsService

var rootCmd = &cobra.Command{
	Use:   "spotcheck",
	Short: "Plagiarism spot-check for long-form documents",
	Long: `spotcheck samples distinctive passages from each chapter of a document,
searches the web for an exact phrase from each one, and reports whether any
matches are accounted for by the document's WORKS_CITED.md.

Diagnostics and progress go to stderr; the report goes to stdout.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostics")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.sercha-spotcheck)")
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if settingsService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return err
	}
	settingsService = services.NewSettingsService(store)
	logger.Debug("Using config file %s", store.Path())
	return nil
}

func requireSettings() (driving.SettingsService, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	return settingsService, nil
}

// Execute runs the root command.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}
