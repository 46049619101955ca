package analyze

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/model"
)

// referenceDateFormat is the layout for user-supplied reference dates and
// the report_date field, e.g. "2021-12-25".
const referenceDateFormat = "2006-01-02"

// CategoryExpenses is the result of a 3-month category expense calculation.
type CategoryExpenses struct {
	Category      string          `json:"category"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	ReportDate    string          `json:"report_date"`
}

// ParseReferenceDate parses a YYYY-MM-DD reference date. Returns
// *InvalidDateError when the value is malformed.
func ParseReferenceDate(s string) (time.Time, error) {
	t, err := time.Parse(referenceDateFormat, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s}
	}
	return t, nil
}

// ExpensesByCategory sums the signed amounts of transactions in category
// over the window [reference - 3 calendar months, reference], inclusive on
// both ends. Unlike the card aggregator the sum keeps its sign: a category
// of pure outflows totals negative.
func ExpensesByCategory(txns []model.Transaction, category string, reference time.Time) CategoryExpenses {
	begin := reference.AddDate(0, -3, 0)

	total := decimal.Zero
	for _, txn := range txns {
		if txn.Category != category {
			continue
		}
		if txn.Date.Before(begin) || txn.Date.After(reference) {
			continue
		}
		total = total.Add(txn.Amount)
	}

	return CategoryExpenses{
		Category:      category,
		TotalExpenses: total,
		ReportDate:    reference.Format(referenceDateFormat),
	}
}
