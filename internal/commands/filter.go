package commands

import (
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/analyze"
	"github.com/spendlens/spendlens/internal/model"
	"github.com/spendlens/spendlens/internal/operations"
	"github.com/spendlens/spendlens/internal/output"
)

func newFilterCommand(configPath *string) *cobra.Command {
	var category string
	var from string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter transactions by category over a 90-day window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(*configPath, category, from)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "spending category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&from, "from", "", "window start date, DD.MM.YYYY (required)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func runFilter(configPath, category, from string) error {
	logger := newRunLogger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	txns, err := operations.Load(cfg.Operations.Path)
	if err != nil {
		return err
	}

	normalized := capitalize(category)
	filtered, err := analyze.FilterByCategoryAndWindow(txns, normalized, from)
	if err != nil {
		return err
	}
	if filtered == nil {
		filtered = []model.Transaction{}
	}

	path := filepath.Join(cfg.Reports.Dir, filteredFileName)
	if err := output.WriteFile(path, filtered); err != nil {
		return err
	}

	logger.Info("filtered transactions written",
		"category", normalized, "from", from, "count", len(filtered), "path", path)
	color.Green("Filtered operations written to %s", path)
	return nil
}
