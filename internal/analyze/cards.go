package analyze

import (
	"strings"

	"github.com/spendlens/spendlens/internal/model"
)

// suffixLen is the number of trailing card-number characters used as the
// grouping key.
const suffixLen = 4

// AggregateByCard groups transactions by masked card suffix, accumulating
// spend and cashback per card. Only card numbers starting with '*' and long
// enough to carry a clean 4-character suffix qualify; everything else is
// skipped silently. Output order is first-seen suffix order.
//
// Spend adds round(-amount, 1) for each negative-amount transaction;
// cashback adds the unrounded cashback field regardless of amount sign.
func AggregateByCard(txns []model.Transaction) []model.CardSummary {
	var order []string
	bySuffix := make(map[string]*model.CardSummary)

	for _, txn := range txns {
		if !strings.HasPrefix(txn.CardNumber, "*") || len(txn.CardNumber) < suffixLen+1 {
			continue
		}
		suffix := txn.CardNumber[len(txn.CardNumber)-suffixLen:]

		card, ok := bySuffix[suffix]
		if !ok {
			card = &model.CardSummary{LastDigits: suffix}
			bySuffix[suffix] = card
			order = append(order, suffix)
		}

		if txn.Amount.IsNegative() {
			card.TotalSpent = card.TotalSpent.Add(txn.Amount.Neg().Round(1))
		}
		card.Cashback = card.Cashback.Add(txn.Cashback)
	}

	out := make([]model.CardSummary, 0, len(order))
	for _, suffix := range order {
		out = append(out, *bySuffix[suffix])
	}
	return out
}
