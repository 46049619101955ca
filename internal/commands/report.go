package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/market"
	"github.com/spendlens/spendlens/internal/model"
	"github.com/spendlens/spendlens/internal/operations"
	"github.com/spendlens/spendlens/internal/output"
	"github.com/spendlens/spendlens/internal/report"
)

// reportTimeFormat is the layout of the optional --time flag.
const reportTimeFormat = "2006-01-02 15:04:05"

func newReportCommand(configPath *string) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Assemble the full report with market rates and prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, *configPath, at)
		},
	}

	cmd.Flags().StringVar(&at, "time", "", "report time, YYYY-MM-DD HH:MM:SS (default: now)")

	return cmd
}

func runReport(cmd *cobra.Command, configPath, at string) error {
	logger := newRunLogger()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	env := config.LoadEnv()

	reference := time.Now()
	if at != "" {
		reference, err = time.Parse(reportTimeFormat, at)
		if err != nil {
			return fmt.Errorf("invalid time %q: expected YYYY-MM-DD HH:MM:SS", at)
		}
	}

	txns, err := operations.Load(cfg.Operations.Path)
	if err != nil {
		return err
	}

	rates := market.NewRatesClient(cfg.Rates.BaseURL, env.ExchangeAPIKey, cfg.Rates.Quote)
	stocks, err := market.NewStocksClient(cfg.Stocks.BaseURL)
	if err != nil {
		return err
	}

	assembler := report.NewAssembler(rates, stocks, cfg.Rates.Currencies, cfg.Stocks.Symbols, logger)
	rpt := assembler.Assemble(cmd.Context(), txns, reference)

	path := filepath.Join(cfg.Reports.Dir, reportFileName)
	if err := output.WriteFile(path, rpt); err != nil {
		return err
	}
	logger.Info("report written", "path", path, "transactions", len(txns))

	// Echo the written document so a run shows exactly what landed on disk.
	var written model.Report
	if err := output.ReadFile(path, &written); err != nil {
		return err
	}
	if err := output.WriteDocument(cmd.OutOrStdout(), written); err != nil {
		return err
	}

	color.Green("Report written to %s", path)
	return nil
}
