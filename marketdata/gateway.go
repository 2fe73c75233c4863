// Package marketdata fetches quotes and historical closes for the valuation
// engine.
//
// The Gateway fronts two providers: a live HTTP source and a synthetic mock.
// The first live failure latches the gateway into mock mode for the rest of
// the session; it never probes the live source again. Every quote carries an
// IsMock flag so the presentation layer can surface degraded mode.
package marketdata

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ocolin/stockfolio"
	"github.com/ocolin/stockfolio/date"
)

// ErrUnknownTicker is returned when a ticker cannot be resolved to a quote.
// Callers use it to block recording a trade against a bogus symbol.
var ErrUnknownTicker = errors.New("unknown ticker")

// Provider serves quotes and historical closes for one ticker at a time.
type Provider interface {
	Quote(ctx context.Context, ticker string) (stockfolio.Quote, error)
	// History returns up to 'days' trailing daily closes, oldest first.
	History(ctx context.Context, ticker string, days int) (*date.History[float64], error)
}

// Gateway is the market data entry point of the application.
type Gateway struct {
	live Provider
	mock Provider

	mu       sync.Mutex
	degraded bool
}

// NewGateway fronts the live provider with a mock fallback. A nil live
// provider starts the gateway in mock mode immediately.
func NewGateway(live, mock Provider) *Gateway {
	return &Gateway{live: live, mock: mock, degraded: live == nil}
}

// Degraded reports whether the gateway has latched into mock mode.
func (g *Gateway) Degraded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.degraded
}

// latch switches permanently to the mock provider.
func (g *Gateway) latch(cause error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.degraded {
		log.Printf("live market data unavailable (%v), using mock quotes for the rest of the session", cause)
		g.degraded = true
	}
}

// Quote fetches the current quote for a ticker.
//
// A live failure latches the gateway and the answer comes from the mock
// provider instead; the caller never sees a transport error. A mock error
// means the ticker itself is invalid, and that one does surface: it is how
// ticker validation blocks recording a trade.
func (g *Gateway) Quote(ctx context.Context, ticker string) (stockfolio.Quote, error) {
	if !g.Degraded() {
		q, err := g.live.Quote(ctx, ticker)
		if err == nil {
			return q, nil
		}
		g.latch(err)
	}
	q, err := g.mock.Quote(ctx, ticker)
	if err != nil {
		return stockfolio.Quote{}, fmt.Errorf("%w %q: %v", ErrUnknownTicker, ticker, err)
	}
	q.IsMock = true
	return q, nil
}

// History fetches up to 'days' trailing daily closes for a ticker, oldest
// first, falling back (and latching) like Quote does.
func (g *Gateway) History(ctx context.Context, ticker string, days int) (*date.History[float64], error) {
	if !g.Degraded() {
		h, err := g.live.History(ctx, ticker, days)
		if err == nil {
			return h, nil
		}
		g.latch(err)
	}
	return g.mock.History(ctx, ticker, days)
}

// Refresh fetches quotes for all tickers as one batch and merges them into
// the quote map, last write wins per ticker. The lookups are issued together
// and awaited as a whole.
//
// A ticker that fails to resolve is skipped, keeping whatever quote the map
// already holds for it; a refresh must never tear down previously good data.
func (g *Gateway) Refresh(ctx context.Context, quotes stockfolio.QuoteMap, tickers []string) {
	var wg sync.WaitGroup
	fetched := make([]stockfolio.Quote, len(tickers))
	ok := make([]bool, len(tickers))
	for i, ticker := range tickers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := g.Quote(ctx, ticker)
			if err != nil {
				log.Printf("skipping quote refresh for %q: %v", ticker, err)
				return
			}
			fetched[i], ok[i] = q, true
		}()
	}
	wg.Wait()
	for i := range tickers {
		if ok[i] {
			quotes.Merge(fetched[i])
		}
	}
}

// Closes fetches the trailing daily closes of every ticker, keyed by ticker.
// Tickers whose history cannot be resolved are absent from the map.
func (g *Gateway) Closes(ctx context.Context, tickers []string, days int) map[string]*date.History[float64] {
	closes := make(map[string]*date.History[float64], len(tickers))
	for _, ticker := range tickers {
		h, err := g.History(ctx, ticker, days)
		if err != nil {
			log.Printf("no price history for %q: %v", ticker, err)
			continue
		}
		closes[ticker] = h
	}
	return closes
}
