package analyze

import (
	"slices"
	"sort"

	"github.com/spendlens/spendlens/internal/model"
)

// TopTransactions returns the n transactions with the largest signed
// amounts, descending. The sort is stable, so ties keep their original
// relative order, and it runs on a copy: the caller's table is untouched.
func TopTransactions(txns []model.Transaction, n int) []model.Transaction {
	sorted := slices.Clone(txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	return sorted[:n]
}
