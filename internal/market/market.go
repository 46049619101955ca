// Package market provides the external currency-rate and stock-price
// lookup clients.
package market

import (
	"fmt"
	"time"
)

// lookupTimeout bounds each external lookup request.
const lookupTimeout = 40 * time.Second

// LookupError reports a failed rate or price lookup for a single item.
type LookupError struct {
	Kind   string // "rate" or "price"
	Symbol string
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup for %s: %v", e.Kind, e.Symbol, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
