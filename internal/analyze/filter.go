// Package analyze implements the aggregation and filtering operations over
// an in-memory transaction table. Every function is pure: the input slice
// is never mutated and each call returns a newly derived value.
package analyze

import (
	"fmt"

	"github.com/spendlens/spendlens/internal/model"
)

// windowDays is the fixed length of the category filter window. This is a
// day offset, distinct from the calendar-month window in ExpensesByCategory.
const windowDays = 90

// InvalidDateError reports a user-supplied date that does not match the
// expected day-first pattern.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected DD.MM.YYYY", e.Value)
}

// FilterByCategoryAndWindow selects transactions whose category matches
// exactly and whose payment date falls in [begin, begin+90d). Results keep
// the table's original order. Returns *InvalidDateError when beginDate is
// unparsable.
func FilterByCategoryAndWindow(txns []model.Transaction, category, beginDate string) ([]model.Transaction, error) {
	begin, err := model.ParseDate(beginDate)
	if err != nil {
		return nil, &InvalidDateError{Value: beginDate}
	}
	end := begin.AddDate(0, 0, windowDays)

	var out []model.Transaction
	for _, txn := range txns {
		if txn.Category != category {
			continue
		}
		if txn.Date.Before(begin.Time) || !txn.Date.Before(end) {
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}
