// Package report composes the full assembled report: greeting, expense
// totals, card aggregates, top transactions, and external market lookups.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/analyze"
	"github.com/spendlens/spendlens/internal/model"
)

// topCount is the number of transactions in the report's top list.
const topCount = 5

// RateSource resolves a currency code to its exchange rate.
type RateSource interface {
	Rate(ctx context.Context, currency string) (decimal.Decimal, error)
}

// PriceSource resolves a stock symbol to its latest daily-high price.
type PriceSource interface {
	Price(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// Greeting returns the time-of-day greeting for t. Boundaries are
// half-open; 23:00 through 04:59 is night.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return "Good morning!"
	case hour >= 12 && hour < 18:
		return "Good afternoon!"
	case hour >= 18 && hour < 23:
		return "Good evening!"
	default:
		return "Good night!"
	}
}

// TotalExpenses sums the absolute values of all negative amounts, reported
// as a positive number.
func TotalExpenses(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Amount.IsNegative() {
			total = total.Add(txn.Amount.Neg())
		}
	}
	return total
}

// Assembler builds full reports from a transaction table and external
// market sources.
type Assembler struct {
	rates      RateSource
	stocks     PriceSource
	currencies []string
	symbols    []string
	logger     *slog.Logger
}

// NewAssembler creates an Assembler. currencies and symbols fix the set of
// market lookups performed per report.
func NewAssembler(rates RateSource, stocks PriceSource, currencies, symbols []string, logger *slog.Logger) *Assembler {
	return &Assembler{
		rates:      rates,
		stocks:     stocks,
		currencies: currencies,
		symbols:    symbols,
		logger:     logger,
	}
}

// Assemble builds the report for a table at the given reference time. Each
// market lookup is isolated: a failure fills that item's error field and
// the report still completes.
func (a *Assembler) Assemble(ctx context.Context, txns []model.Transaction, at time.Time) model.Report {
	rpt := model.Report{
		Greeting:        Greeting(at),
		TotalExpenses:   TotalExpenses(txns),
		CardData:        analyze.AggregateByCard(txns),
		TopTransactions: analyze.TopTransactions(txns, topCount),
	}

	for _, currency := range a.currencies {
		item := model.CurrencyRate{Currency: currency}
		rate, err := a.rates.Rate(ctx, currency)
		if err != nil {
			a.logger.Warn("currency rate lookup failed", "currency", currency, "error", err)
			item.Error = err.Error()
		} else {
			item.Rate = rate
		}
		rpt.CurrencyRates = append(rpt.CurrencyRates, item)
	}

	for _, symbol := range a.symbols {
		item := model.StockPrice{Stock: symbol}
		price, err := a.stocks.Price(ctx, symbol)
		if err != nil {
			a.logger.Warn("stock price lookup failed", "stock", symbol, "error", err)
			item.Error = err.Error()
		} else {
			item.Price = price
		}
		rpt.StockPrices = append(rpt.StockPrices, item)
	}

	return rpt
}
