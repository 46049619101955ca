package analyze

import (
	"strings"

	"github.com/spendlens/spendlens/internal/model"
)

// SearchResult holds the outcome of a keyword search. An empty result is a
// typed signal, not an error: the output layer decides how to render it.
type SearchResult struct {
	Matches []model.Transaction
}

// Empty reports whether the search found no transactions.
func (r SearchResult) Empty() bool { return len(r.Matches) == 0 }

// SearchByKeyword returns all transactions whose description or category
// contains term, case-insensitively. A missing category is treated as an
// empty string and can never match a non-empty term.
func SearchByKeyword(txns []model.Transaction, term string) SearchResult {
	needle := strings.ToLower(term)

	var matches []model.Transaction
	for _, txn := range txns {
		if strings.Contains(strings.ToLower(txn.Description), needle) ||
			strings.Contains(strings.ToLower(txn.Category), needle) {
			matches = append(matches, txn)
		}
	}
	return SearchResult{Matches: matches}
}
