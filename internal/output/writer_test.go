package output

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/analyze"
	"github.com/spendlens/spendlens/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleReport() model.Report {
	return model.Report{
		Greeting:      "Good morning!",
		TotalExpenses: dec("1150.5"),
		CardData: []model.CardSummary{
			{LastDigits: "1234", TotalSpent: dec("1150.5"), Cashback: dec("11.2")},
		},
		TopTransactions: []model.Transaction{
			{
				Description: "Visited a cafe",
				Category:    "Food",
				Date:        model.NewDate(2021, time.December, 25),
				Amount:      dec("-316.34"),
				CardNumber:  "*1234567890123456",
				Cashback:    dec("3.0"),
			},
		},
		CurrencyRates: []model.CurrencyRate{{Currency: "USD", Rate: dec("73.21")}},
		StockPrices:   []model.StockPrice{{Stock: "AAPL", Price: dec("180.12")}},
	}
}

func TestReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations_data.json")
	want := sampleReport()

	require.NoError(t, WriteFile(path, want))

	var got model.Report
	require.NoError(t, ReadFile(path, &got))

	assert.Equal(t, want.Greeting, got.Greeting)
	assert.True(t, want.TotalExpenses.Equal(got.TotalExpenses))
	require.Len(t, got.CardData, 1)
	assert.True(t, want.CardData[0].TotalSpent.Equal(got.CardData[0].TotalSpent))
	require.Len(t, got.TopTransactions, 1)
	assert.True(t, want.TopTransactions[0].Date.Equal(got.TopTransactions[0].Date.Time))
	assert.True(t, want.TopTransactions[0].Amount.Equal(got.TopTransactions[0].Amount))
	assert.True(t, want.CurrencyRates[0].Rate.Equal(got.CurrencyRates[0].Rate))
	assert.True(t, want.StockPrices[0].Price.Equal(got.StockPrices[0].Price))
}

func TestWriteDocumentFormatting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, sampleReport()))
	out := buf.String()

	// 4-space indentation, amounts as plain numbers, day-first dates.
	assert.Contains(t, out, "\n    \"greeting\"")
	assert.Contains(t, out, `"total_expenses": 1150.5`)
	assert.Contains(t, out, `"data_payment": "25.12.2021"`)
}

func TestWriteDocumentLeavesNonASCIIUnescaped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, map[string]string{"greeting": "Доброе утро!"}))

	assert.Contains(t, buf.String(), "Доброе утро!")
	assert.NotContains(t, buf.String(), `\u`)
}

func TestSearchDocumentSentinel(t *testing.T) {
	doc := SearchDocument(analyze.SearchResult{})

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, doc))
	assert.Contains(t, buf.String(), `"message": "no matches found"`)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "["), "sentinel stays a list")
}

func TestSearchDocumentWithMatches(t *testing.T) {
	result := analyze.SearchResult{Matches: sampleReport().TopTransactions}
	doc := SearchDocument(result)

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, doc))
	assert.Contains(t, buf.String(), "Visited a cafe")
	assert.NotContains(t, buf.String(), NoMatchesMessage)
}

func TestErrorDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, ErrorDocument(assert.AnError)))
	assert.Contains(t, buf.String(), `"error"`)
}
