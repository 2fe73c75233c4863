package stockfolio

import "github.com/shopspring/decimal"

// Summary aggregates the current position set of one account. No rounding is
// applied here; presentation rounds for display only.
type Summary struct {
	TotalMarketValue     float64         `json:"totalMarketValue"`
	TotalCostBasis       float64         `json:"totalCostBasis"`
	TotalGainLoss        float64         `json:"totalGainLoss"`
	TotalGainLossPercent float64         `json:"totalGainLossPercent"`
	TradingCash          decimal.Decimal `json:"tradingCash"`
}

// NewSummary computes the summary metrics over the given positions. The
// account's cash passes through untouched.
func NewSummary(positions []Position, tradingCash decimal.Decimal) Summary {
	var market, basis float64
	for _, p := range positions {
		market += p.MarketValue()
		basis += p.CostBasis()
	}
	s := Summary{
		TotalMarketValue: market,
		TotalCostBasis:   basis,
		TotalGainLoss:    market - basis,
		TradingCash:      tradingCash,
	}
	if basis != 0 {
		// Guarded so a zero cost basis yields 0, never NaN or Inf.
		s.TotalGainLossPercent = s.TotalGainLoss / basis * 100
	}
	return s
}
