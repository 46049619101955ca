package model

import "github.com/shopspring/decimal"

// CardSummary aggregates spend and cashback for one masked card suffix.
type CardSummary struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"` // each expense rounded to 1dp before summing
	Cashback   decimal.Decimal `json:"cashback"`
}

// CurrencyRate is one currency lookup in the assembled report. Error is set
// when the lookup failed; the rate is zero in that case.
type CurrencyRate struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
	Error    string          `json:"error,omitempty"`
}

// StockPrice is one stock lookup in the assembled report.
type StockPrice struct {
	Stock string          `json:"stock"`
	Price decimal.Decimal `json:"price"`
	Error string          `json:"error,omitempty"`
}

// Report is the full assembled report written to operations_data.json.
type Report struct {
	Greeting        string          `json:"greeting"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	CardData        []CardSummary   `json:"card_data"`
	TopTransactions []Transaction   `json:"top_transactions"`
	CurrencyRates   []CurrencyRate  `json:"currency_rates"`
	StockPrices     []StockPrice    `json:"stock_prices"`
}
