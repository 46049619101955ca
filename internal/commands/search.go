package commands

import (
	"errors"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/analyze"
	"github.com/spendlens/spendlens/internal/operations"
	"github.com/spendlens/spendlens/internal/output"
)

func newSearchCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search transactions by keyword in description or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(*configPath, args[0])
		},
	}
	return cmd
}

func runSearch(configPath, term string) error {
	logger := newRunLogger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.Reports.Dir, searchFileName)

	txns, err := operations.Load(cfg.Operations.Path)
	if err != nil {
		// Search reports a missing source as a structured payload in the
		// result file instead of aborting the run.
		var srcErr *operations.SourceError
		if errors.As(err, &srcErr) {
			logger.Error("operations source unavailable", "path", srcErr.Path, "error", err)
			if werr := output.WriteFile(path, output.ErrorDocument(err)); werr != nil {
				return werr
			}
			color.Yellow("Search failed: %v (details in %s)", err, path)
			return nil
		}
		return err
	}

	result := analyze.SearchByKeyword(txns, term)
	if err := output.WriteFile(path, output.SearchDocument(result)); err != nil {
		return err
	}

	if result.Empty() {
		logger.Info("no matches", "term", term, "path", path)
		color.Yellow("No matches for %q; result written to %s", term, path)
		return nil
	}

	logger.Info("search results written", "term", term, "count", len(result.Matches), "path", path)
	color.Green("%d matching operations written to %s", len(result.Matches), path)
	return nil
}
