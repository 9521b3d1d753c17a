package coindesk

// Response represents the raw JSON document returned by the CoinDesk
// price feed. It is transient: constructed per fetch and never persisted.
//
// The structure includes:
//   - Time: three differently formatted update timestamps; UpdatedISO is
//     the ISO-8601 offset timestamp the transformation parses
//   - ChartName: display name of the priced asset (e.g. "Bitcoin")
//   - Bpi: per-currency rate details keyed by currency code
type Response struct {
	Time       TimeInfo                `json:"time"`
	Disclaimer string                  `json:"disclaimer"`
	ChartName  string                  `json:"chartName"`
	Bpi        map[string]CurrencyInfo `json:"bpi"`
}

// TimeInfo carries the feed's three update timestamp renderings.
type TimeInfo struct {
	Updated    string `json:"updated"`
	UpdatedISO string `json:"updatedISO"`
	UpdatedUK  string `json:"updateduk"`
}

// CurrencyInfo holds the rate details for one currency in the feed.
type CurrencyInfo struct {
	Code        string  `json:"code"`
	Symbol      string  `json:"symbol"`
	Rate        string  `json:"rate"`
	Description string  `json:"description"`
	RateFloat   float64 `json:"rate_float"`
}
