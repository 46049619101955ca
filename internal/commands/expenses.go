package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/analyze"
	"github.com/spendlens/spendlens/internal/operations"
	"github.com/spendlens/spendlens/internal/output"
)

func newExpensesCommand(configPath *string) *cobra.Command {
	var category string
	var date string

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Sum category expenses over the last 3 calendar months",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpenses(cmd, *configPath, category, date)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "spending category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&date, "date", "", "reference date, YYYY-MM-DD (default: today)")

	return cmd
}

func runExpenses(cmd *cobra.Command, configPath, category, date string) error {
	logger := newRunLogger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	reference := time.Now()
	if date != "" {
		reference, err = analyze.ParseReferenceDate(date)
		if err != nil {
			return err
		}
	}

	txns, err := operations.Load(cfg.Operations.Path)
	if err != nil {
		return err
	}

	result := analyze.ExpensesByCategory(txns, category, reference)
	logger.Info("category expenses calculated",
		"category", category, "report_date", result.ReportDate, "total", result.TotalExpenses)

	return output.WriteDocument(cmd.OutOrStdout(), result)
}
