package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "Good morning!"},
		{6, "Good morning!"},
		{11, "Good morning!"},
		{12, "Good afternoon!"},
		{17, "Good afternoon!"},
		{18, "Good evening!"},
		{22, "Good evening!"},
		{23, "Good night!"},
		{0, "Good night!"},
		{4, "Good night!"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour_%d", tt.hour), func(t *testing.T) {
			at := time.Date(2021, time.December, 25, tt.hour, 30, 0, 0, time.UTC)
			assert.Equal(t, tt.want, Greeting(at))
		})
	}
}

func TestTotalExpenses(t *testing.T) {
	txns := []model.Transaction{
		{Amount: dec("-100.5")},
		{Amount: dec("2000")},
		{Amount: dec("-49.5")},
	}

	got := TotalExpenses(txns)
	assert.True(t, got.Equal(dec("150")), "got %s", got)
}

type stubRates struct {
	rates map[string]decimal.Decimal
}

func (s stubRates) Rate(_ context.Context, currency string) (decimal.Decimal, error) {
	rate, ok := s.rates[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate for %s", currency)
	}
	return rate, nil
}

type stubStocks struct {
	prices map[string]decimal.Decimal
}

func (s stubStocks) Price(_ context.Context, symbol string) (decimal.Decimal, error) {
	price, ok := s.prices[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price for %s", symbol)
	}
	return price, nil
}

func TestAssemble(t *testing.T) {
	txns := []model.Transaction{
		{
			Description: "Groceries",
			Category:    "Food",
			Date:        model.NewDate(2021, time.December, 20),
			Amount:      dec("-100.0"),
			CardNumber:  "*1234567890123456",
			Cashback:    dec("5.0"),
		},
		{
			Description: "Salary",
			Date:        model.NewDate(2021, time.December, 21),
			Amount:      dec("50000"),
		},
	}

	assembler := NewAssembler(
		stubRates{rates: map[string]decimal.Decimal{"USD": dec("73.21"), "EUR": dec("86.90")}},
		stubStocks{prices: map[string]decimal.Decimal{"AAPL": dec("180.1")}},
		[]string{"USD", "EUR"},
		[]string{"AAPL"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	at := time.Date(2021, time.December, 25, 6, 0, 0, 0, time.UTC)
	rpt := assembler.Assemble(context.Background(), txns, at)

	assert.Equal(t, "Good morning!", rpt.Greeting)
	assert.True(t, rpt.TotalExpenses.Equal(dec("100.0")))

	require.Len(t, rpt.CardData, 1)
	assert.Equal(t, "1234", rpt.CardData[0].LastDigits)

	require.Len(t, rpt.TopTransactions, 2)
	assert.Equal(t, "Salary", rpt.TopTransactions[0].Description)

	require.Len(t, rpt.CurrencyRates, 2)
	assert.True(t, rpt.CurrencyRates[0].Rate.Equal(dec("73.21")))
	assert.Empty(t, rpt.CurrencyRates[0].Error)

	require.Len(t, rpt.StockPrices, 1)
	assert.True(t, rpt.StockPrices[0].Price.Equal(dec("180.1")))
}

func TestAssembleIsolatesLookupFailures(t *testing.T) {
	assembler := NewAssembler(
		stubRates{rates: map[string]decimal.Decimal{"USD": dec("73.21")}},
		stubStocks{},
		[]string{"USD", "EUR"},
		[]string{"AAPL"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	rpt := assembler.Assemble(context.Background(), nil, time.Now())

	require.Len(t, rpt.CurrencyRates, 2)
	assert.Empty(t, rpt.CurrencyRates[0].Error)
	assert.NotEmpty(t, rpt.CurrencyRates[1].Error, "EUR failure should be recorded per-item")

	require.Len(t, rpt.StockPrices, 1)
	assert.NotEmpty(t, rpt.StockPrices[0].Error)
	assert.True(t, rpt.StockPrices[0].Price.IsZero())
}
