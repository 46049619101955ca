package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// RatesClient fetches exchange rates from an exchangerates-style API.
// Authentication is an apikey header; the key comes from process
// configuration, never hardcoded.
type RatesClient struct {
	baseURL string
	apiKey  string
	quote   string // currency the rate is expressed in, e.g. "RUB"
	client  *http.Client
}

// NewRatesClient creates a RatesClient against baseURL.
func NewRatesClient(baseURL, apiKey, quote string) *RatesClient {
	return &RatesClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		quote:   quote,
		client:  &http.Client{Timeout: lookupTimeout},
	}
}

type ratesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Rate returns how much one unit of currency is worth in the client's
// quote currency.
func (c *RatesClient) Rate(ctx context.Context, currency string) (decimal.Decimal, error) {
	u := fmt.Sprintf("%s/latest?symbols=%s&base=%s",
		c.baseURL, url.QueryEscape(c.quote), url.QueryEscape(currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return decimal.Zero, &LookupError{Kind: "rate", Symbol: currency, Err: err}
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, &LookupError{Kind: "rate", Symbol: currency, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, &LookupError{
			Kind:   "rate",
			Symbol: currency,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, &LookupError{Kind: "rate", Symbol: currency, Err: err}
	}

	rate, ok := body.Rates[c.quote]
	if !ok {
		return decimal.Zero, &LookupError{
			Kind:   "rate",
			Symbol: currency,
			Err:    fmt.Errorf("response missing %s rate", c.quote),
		}
	}
	return rate, nil
}
