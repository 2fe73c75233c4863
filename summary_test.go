package stockfolio

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewSummary(t *testing.T) {
	positions := []Position{
		{Ticker: "AAPL", Shares: 10, AverageCost: 150, CurrentPrice: 172.50},
		{Ticker: "NVDA", Shares: 4, AverageCost: 450, CurrentPrice: 488.30},
	}
	cash := decimal.NewFromFloat(2500.10)
	s := NewSummary(positions, cash)

	wantMarket := 10*172.50 + 4*488.30
	wantBasis := 10*150.0 + 4*450.0
	if math.Abs(s.TotalMarketValue-wantMarket) > 1e-9 {
		t.Errorf("TotalMarketValue = %v, want %v", s.TotalMarketValue, wantMarket)
	}
	if s.TotalCostBasis != wantBasis {
		t.Errorf("TotalCostBasis = %v, want %v", s.TotalCostBasis, wantBasis)
	}
	if math.Abs(s.TotalGainLoss-(wantMarket-wantBasis)) > 1e-9 {
		t.Errorf("TotalGainLoss = %v, want %v", s.TotalGainLoss, wantMarket-wantBasis)
	}
	wantPct := (wantMarket - wantBasis) / wantBasis * 100
	if math.Abs(s.TotalGainLossPercent-wantPct) > 1e-9 {
		t.Errorf("TotalGainLossPercent = %v, want %v", s.TotalGainLossPercent, wantPct)
	}
	if !s.TradingCash.Equal(cash) {
		t.Errorf("TradingCash = %s, want %s", s.TradingCash, cash)
	}
}

func TestNewSummary_ZeroBasis(t *testing.T) {
	cases := []struct {
		name      string
		positions []Position
	}{
		{"no positions", nil},
		{"free shares", []Position{{Ticker: "AAPL", Shares: 10, AverageCost: 0, CurrentPrice: 100}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSummary(tc.positions, decimal.Zero)
			if s.TotalGainLossPercent != 0 {
				t.Errorf("TotalGainLossPercent = %v, want 0 on zero basis", s.TotalGainLossPercent)
			}
			if math.IsNaN(s.TotalGainLossPercent) || math.IsInf(s.TotalGainLossPercent, 0) {
				t.Errorf("TotalGainLossPercent must never be NaN or Inf, got %v", s.TotalGainLossPercent)
			}
		})
	}
}
