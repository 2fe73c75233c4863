package stockfolio

import (
	"math"
	"testing"

	"github.com/ocolin/stockfolio/date"
)

func buy(ticker string, shares, price float64, day string) Transaction {
	return NewTransaction(ticker, ticker+" Inc.", Buy, shares, price, date.MustParse(day), "")
}

func sell(ticker string, shares, price float64, day string) Transaction {
	return NewTransaction(ticker, ticker+" Inc.", Sell, shares, price, date.MustParse(day), "")
}

func TestPositions_AverageCost(t *testing.T) {
	txs := []Transaction{
		buy("AAPL", 10, 100, "2025-01-10"),
		buy("AAPL", 10, 200, "2025-02-10"),
	}
	got := Positions(txs, nil)
	if len(got) != 1 {
		t.Fatalf("Positions() returned %d positions, want 1", len(got))
	}
	p := got[0]
	if p.Shares != 20 {
		t.Errorf("Shares = %v, want 20", p.Shares)
	}
	if p.AverageCost != 150 {
		t.Errorf("AverageCost = %v, want 150", p.AverageCost)
	}
}

func TestPositions_SellReducesBasisProportionally(t *testing.T) {
	// 10 shares at $100 = $1000 pool; selling 4 removes 4*$100,
	// leaving $600 over 6 shares: the average cost must not move.
	txs := []Transaction{
		buy("AAPL", 10, 100, "2025-01-10"),
		sell("AAPL", 4, 250, "2025-02-10"),
	}
	got := Positions(txs, nil)
	if len(got) != 1 {
		t.Fatalf("Positions() returned %d positions, want 1", len(got))
	}
	p := got[0]
	if p.Shares != 6 {
		t.Errorf("Shares = %v, want 6", p.Shares)
	}
	if p.AverageCost != 100 {
		t.Errorf("AverageCost = %v, want 100 (sell must not move average cost)", p.AverageCost)
	}
	if basis := p.CostBasis(); basis != 600 {
		t.Errorf("CostBasis() = %v, want 600", basis)
	}
}

func TestPositions_FullLiquidationDisappears(t *testing.T) {
	txs := []Transaction{
		buy("TSLA", 15, 250, "2025-01-10"),
		sell("TSLA", 15, 280, "2025-03-01"),
	}
	if got := Positions(txs, nil); len(got) != 0 {
		t.Errorf("Positions() = %v, want empty after full liquidation", got)
	}
}

func TestPositions_OversoldIsHidden(t *testing.T) {
	// Selling more than held is accepted and nets the ticker negative; the
	// negative position is computed but excluded from the visible set.
	txs := []Transaction{
		buy("GME", 5, 20, "2025-01-10"),
		sell("GME", 8, 40, "2025-02-10"),
	}
	if got := Positions(txs, nil); len(got) != 0 {
		t.Errorf("Positions() = %v, want empty for oversold ticker", got)
	}
}

func TestPositions_BuyOrderIndependence(t *testing.T) {
	// Aggregation does not sort; for buys only, the result must not depend
	// on entry order.
	a := []Transaction{
		buy("AAPL", 10, 100, "2025-03-10"),
		buy("AAPL", 5, 400, "2025-01-10"),
	}
	b := []Transaction{a[1], a[0]}
	pa, pb := Positions(a, nil), Positions(b, nil)
	if len(pa) != 1 || len(pb) != 1 {
		t.Fatalf("Positions() returned %d and %d positions, want 1 and 1", len(pa), len(pb))
	}
	if pa[0].AverageCost != pb[0].AverageCost || pa[0].Shares != pb[0].Shares {
		t.Errorf("entry order changed the result: %+v vs %+v", pa[0], pb[0])
	}
}

func TestPositions_Idempotent(t *testing.T) {
	txs := []Transaction{
		buy("AAPL", 10, 150, "2025-01-10"),
		sell("AAPL", 3, 170, "2025-02-10"),
		buy("NVDA", 4, 450, "2025-02-20"),
	}
	first := Positions(txs, nil)
	second := Positions(txs, nil)
	if len(first) != len(second) {
		t.Fatalf("recomputation changed position count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("recomputation changed position %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestPositions_QuoteEnrichment(t *testing.T) {
	txs := []Transaction{buy("AAPL", 10, 150, "2025-01-10")}
	quotes := QuoteMap{}
	quotes.Merge(Quote{Ticker: "AAPL", Price: 172.50, DayHigh: 175, DayLow: 171, PreviousClose: 170})

	got := Positions(txs, quotes)
	if len(got) != 1 {
		t.Fatalf("Positions() returned %d positions, want 1", len(got))
	}
	p := got[0]
	if p.CurrentPrice != 172.50 {
		t.Errorf("CurrentPrice = %v, want 172.50", p.CurrentPrice)
	}
	if v := p.MarketValue(); v != 1725 {
		t.Errorf("MarketValue() = %v, want 1725", v)
	}
	if g := p.GainLoss(); math.Abs(g-225) > 1e-9 {
		t.Errorf("GainLoss() = %v, want 225", g)
	}
	if pct := p.GainLossPercent(); math.Abs(pct-15) > 1e-9 {
		t.Errorf("GainLossPercent() = %v, want 15", pct)
	}
}

func TestPositions_NoQuoteMeansZeroPrice(t *testing.T) {
	txs := []Transaction{buy("AAPL", 10, 150, "2025-01-10")}
	got := Positions(txs, QuoteMap{})
	if got[0].CurrentPrice != 0 {
		t.Errorf("CurrentPrice = %v, want 0 without a quote", got[0].CurrentPrice)
	}
	if got[0].GainLossPercent() != -100 {
		t.Errorf("GainLossPercent() = %v, want -100 at zero price", got[0].GainLossPercent())
	}
}

func TestPositions_SortedByTicker(t *testing.T) {
	txs := []Transaction{
		buy("NVDA", 1, 450, "2025-01-10"),
		buy("AAPL", 1, 150, "2025-01-11"),
		buy("GOOGL", 1, 120, "2025-01-12"),
	}
	got := Positions(txs, nil)
	want := []string{"AAPL", "GOOGL", "NVDA"}
	for i, w := range want {
		if got[i].Ticker != w {
			t.Errorf("position %d ticker = %q, want %q", i, got[i].Ticker, w)
		}
	}
}
