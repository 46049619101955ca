// Package commands wires the CLI surface: one subcommand per report, each
// a single run with inputs captured once via flags.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/buildinfo"
	"github.com/spendlens/spendlens/internal/config"
)

// Report file names, fixed by the established output contract.
const (
	filteredFileName = "filtered_operations.json"
	searchFileName   = "transactions_search_result.json"
	reportFileName   = "operations_data.json"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "spendlens",
		Short:   "Personal finance transaction reports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "spendlens.yaml", "path to the config file")

	rootCmd.AddCommand(newReportCommand(&configPath))
	rootCmd.AddCommand(newFilterCommand(&configPath))
	rootCmd.AddCommand(newSearchCommand(&configPath))
	rootCmd.AddCommand(newExpensesCommand(&configPath))

	return rootCmd
}

// newRunLogger builds the logger handed through to services, tagged with a
// fresh run ID so one invocation's lines correlate.
func newRunLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logger.With("run_id", uuid.NewString())
}

// loadConfig reads spendlens.yaml, falling back to defaults when the file
// does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// capitalize upper-cases the first rune and lower-cases the rest, matching
// how category input is normalized before the exact-match filter.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
