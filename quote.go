package stockfolio

// Quote is a point-in-time market quote for one ticker, as delivered by the
// market data gateway. IsMock marks quotes synthesized while the live source
// is unreachable.
type Quote struct {
	Ticker        string  `json:"ticker"`
	CompanyName   string  `json:"companyName"`
	Price         float64 `json:"price"`
	Volume        float64 `json:"volume"`
	DayHigh       float64 `json:"dayHigh"`
	DayLow        float64 `json:"dayLow"`
	PreviousClose float64 `json:"previousClose"`
	IsMock        bool    `json:"isMock,omitempty"`
}

// QuoteMap indexes quotes by ticker. Refreshes merge into it key by key, so a
// ticker missing from one batch keeps its previous quote.
type QuoteMap map[string]Quote

// Merge applies the given quotes over the map, last write wins per ticker.
func (m QuoteMap) Merge(quotes ...Quote) {
	for _, q := range quotes {
		m[q.Ticker] = q
	}
}
