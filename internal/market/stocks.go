package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/shopspring/decimal"
	"golang.org/x/net/publicsuffix"
)

// userAgent is sent with stock lookups; the chart endpoint rejects
// requests without a browser-like agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

// StocksClient fetches daily-high stock prices from a Yahoo-style chart
// API. The client carries a cookie jar so session cookies set on the first
// request are replayed on later ones.
type StocksClient struct {
	baseURL string
	client  *http.Client
}

// NewStocksClient creates a StocksClient against baseURL.
func NewStocksClient(baseURL string) (*StocksClient, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &StocksClient{
		baseURL: baseURL,
		client: &http.Client{
			Jar:     jar,
			Timeout: lookupTimeout,
		},
	}, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					High []*float64 `json:"high"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Price returns the most recent daily-high price for symbol.
func (c *StocksClient) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d",
		c.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return decimal.Zero, &LookupError{Kind: "price", Symbol: symbol, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, &LookupError{Kind: "price", Symbol: symbol, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, &LookupError{
			Kind:   "price",
			Symbol: symbol,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, &LookupError{Kind: "price", Symbol: symbol, Err: err}
	}

	if body.Chart.Error != nil {
		return decimal.Zero, &LookupError{
			Kind:   "price",
			Symbol: symbol,
			Err:    fmt.Errorf("%s: %s", body.Chart.Error.Code, body.Chart.Error.Description),
		}
	}

	high, ok := latestHigh(body)
	if !ok {
		return decimal.Zero, &LookupError{
			Kind:   "price",
			Symbol: symbol,
			Err:    fmt.Errorf("response contains no high price"),
		}
	}
	return decimal.NewFromFloat(high), nil
}

// latestHigh picks the last non-null high from the first chart result.
// Trading-gap intervals come back as nulls.
func latestHigh(body chartResponse) (float64, bool) {
	results := body.Chart.Result
	if len(results) == 0 || len(results[0].Indicators.Quote) == 0 {
		return 0, false
	}
	highs := results[0].Indicators.Quote[0].High
	for i := len(highs) - 1; i >= 0; i-- {
		if highs[i] != nil {
			return *highs[i], true
		}
	}
	return 0, false
}
