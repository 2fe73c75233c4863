package stockfolio

import (
	"slices"
	"strings"
)

// Epsilon is the share-count threshold under which a position is considered
// fully closed. Full liquidations leave float residue near zero; anything at
// or below this is dropped from the visible position set.
const Epsilon = 1e-5

// Position is the derived, per-ticker net holding of one account.
// It is recomputed wholesale on every ledger or quote change.
type Position struct {
	Ticker      string  `json:"ticker"`
	CompanyName string  `json:"companyName"`
	Shares      float64 `json:"shares"`
	AverageCost float64 `json:"averageCost"`

	// From the latest quote, zero while none was fetched yet.
	CurrentPrice  float64 `json:"currentPrice"`
	Volume        float64 `json:"volume,omitempty"`
	DayHigh       float64 `json:"dayHigh,omitempty"`
	DayLow        float64 `json:"dayLow,omitempty"`
	PreviousClose float64 `json:"previousClose,omitempty"`
}

// MarketValue returns the marked-to-market value of the position.
func (p Position) MarketValue() float64 { return p.Shares * p.CurrentPrice }

// CostBasis returns the total cost of the currently held shares.
func (p Position) CostBasis() float64 { return p.Shares * p.AverageCost }

// GainLoss returns the unrealized gain or loss of the position.
func (p Position) GainLoss() float64 { return p.MarketValue() - p.CostBasis() }

// GainLossPercent returns the unrealized gain or loss relative to cost.
func (p Position) GainLossPercent() float64 {
	basis := p.CostBasis()
	if basis == 0 {
		return 0
	}
	return p.GainLoss() / basis * 100
}

// Positions aggregates a ledger into per-ticker positions under
// moving-average cost accounting, marked with the given quotes.
//
// Transactions are processed in the order given, without sorting by date.
// For a fixed set of buys the weighted-average cost does not depend on
// sequence, so out-of-order entry of historical trades still yields a
// consistent snapshot; only sells interleaved with buys make the cost pool
// order-sensitive. This is a known limitation of the accounting method, kept
// as is.
//
// Selling short is not guarded: an oversell nets the accumulator negative and
// the cost pool keeps shrinking proportionally. Positions whose net shares
// end at or below Epsilon, negative ones included, are absent from the result.
// NaN shares or prices are not sanitized and propagate into the output.
func Positions(txs []Transaction, quotes QuoteMap) []Position {
	type acc struct {
		shares      float64
		totalCost   float64
		companyName string
	}
	book := make(map[string]*acc)

	for _, tx := range txs {
		a := book[tx.Ticker]
		if a == nil {
			a = &acc{}
			book[tx.Ticker] = a
		}
		switch tx.Type {
		case Buy:
			a.shares += tx.Shares
			a.totalCost += tx.Shares * tx.Price
		case Sell:
			avgCost := 0.0
			if a.shares > 0 {
				avgCost = a.totalCost / a.shares
			}
			a.totalCost -= tx.Shares * avgCost // reduce cost basis proportionally
			a.shares -= tx.Shares
		}
		a.companyName = tx.CompanyName
	}

	positions := make([]Position, 0, len(book))
	for ticker, a := range book {
		if !(a.shares > Epsilon) {
			continue // closed out, or oversold below zero
		}
		p := Position{
			Ticker:      ticker,
			CompanyName: a.companyName,
			Shares:      a.shares,
			AverageCost: a.totalCost / a.shares,
		}
		if q, ok := quotes[ticker]; ok {
			p.CurrentPrice = q.Price
			p.Volume = q.Volume
			p.DayHigh = q.DayHigh
			p.DayLow = q.DayLow
			p.PreviousClose = q.PreviousClose
		}
		positions = append(positions, p)
	}
	slices.SortFunc(positions, func(a, b Position) int {
		return strings.Compare(a.Ticker, b.Ticker)
	})
	return positions
}
