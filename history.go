package stockfolio

import (
	"slices"

	"github.com/ocolin/stockfolio/date"
)

// HistoryWindow is the default trailing window, in calendar days, of the
// portfolio value series.
const HistoryWindow = 30

// ValuePoint is the total marked-to-market value of all held positions on one day.
type ValuePoint struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

// ValueSeries reconstructs the day-by-day total value of the holdings over
// the trailing window of 'days' calendar days ending on 'last', oldest first.
//
// For each day the ledger is replayed up to and including that day to obtain
// the net shares per ticker (a simple signed sum, independent of cost basis),
// and every ticker held long is valued at its closing price for that exact
// date. A ticker with no close recorded on a day contributes zero for that
// day; there is no forward or backward fill, so weekends and holidays
// understate the total for tickers whose series skips non-trading days. This
// mirrors the quote feed's shape and is accepted behavior, not a bug.
//
// When the ledger is empty, or no closing prices were retrieved at all, the
// result is nil: callers must treat that as "no data", distinct from a series
// of zero-value points.
func ValueSeries(txs []Transaction, closes map[string]*date.History[float64], days int, last date.Date) []ValuePoint {
	if len(txs) == 0 {
		return nil
	}
	empty := true
	for _, h := range closes {
		if h != nil && h.Len() > 0 {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}

	// A single forward pass over the window: transactions sorted by date are
	// consumed once, maintaining the running net position per ticker. The
	// output is identical to replaying the full ledger for every day.
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	})

	held := make(map[string]float64)
	next := 0
	series := make([]ValuePoint, 0, days)
	for day := range date.Over(last, days) {
		for next < len(sorted) && !sorted[next].Date.After(day) {
			tx := sorted[next]
			if tx.Type == Buy {
				held[tx.Ticker] += tx.Shares
			} else {
				held[tx.Ticker] -= tx.Shares
			}
			next++
		}

		var total float64
		for ticker, shares := range held {
			if shares <= 0 {
				continue
			}
			h := closes[ticker]
			if h == nil {
				continue
			}
			if price, ok := h.Get(day); ok {
				total += shares * price
			}
		}
		series = append(series, ValuePoint{Date: day, Value: total})
	}
	return series
}
