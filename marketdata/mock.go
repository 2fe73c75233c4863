package marketdata

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/ocolin/stockfolio"
	"github.com/ocolin/stockfolio/date"
)

// Mock synthesizes plausible quotes without touching the network. Each ticker
// gets a sticky base price, so repeated quotes fluctuate around a stable
// value instead of jumping randomly.
type Mock struct {
	mu   sync.Mutex
	base map[string]mockBase
	rand *rand.Rand
}

type mockBase struct {
	price       float64
	companyName string
}

// wellKnown seeds the base table so the common seed-data tickers look
// realistic out of the box.
var wellKnown = map[string]mockBase{
	"AAPL":  {172.50, "Apple Inc."},
	"GOOGL": {135.80, "Alphabet Inc."},
	"TSLA":  {225.40, "Tesla, Inc."},
	"NVDA":  {488.30, "NVIDIA Corporation"},
	"AMZN":  {130.00, "Amazon.com, Inc."},
	"MSFT":  {330.00, "Microsoft Corporation"},
}

// NewMock returns a mock provider seeded with the well-known tickers.
func NewMock() *Mock {
	m := &Mock{
		base: make(map[string]mockBase, len(wellKnown)),
		rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for ticker, b := range wellKnown {
		m.base[ticker] = b
	}
	return m
}

// lookup returns the sticky base for a ticker, inventing one for tickers
// never seen before. The ticker "FAIL" is the one symbol that does not
// resolve, it stands in for an invalid ticker in degraded mode.
func (m *Mock) lookup(ticker string) (mockBase, error) {
	upper := strings.ToUpper(strings.TrimSpace(ticker))
	if upper == "FAIL" {
		return mockBase{}, fmt.Errorf("unknown symbol %q", ticker)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.base[upper]
	if !ok {
		b = mockBase{
			price:       50 + m.rand.Float64()*450,
			companyName: upper + " Company Inc.",
		}
		m.base[upper] = b
	}
	return b, nil
}

// Quote synthesizes a quote around the ticker's base price: up to ±2.5% off
// the base, with a previous close, day range and volume to match.
func (m *Mock) Quote(ctx context.Context, ticker string) (stockfolio.Quote, error) {
	b, err := m.lookup(ticker)
	if err != nil {
		return stockfolio.Quote{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	price := b.price * (1 + (m.rand.Float64()-0.495)*0.05)
	previousClose := b.price / (1 + (m.rand.Float64()-0.5)*0.1)
	return stockfolio.Quote{
		Ticker:        strings.ToUpper(strings.TrimSpace(ticker)),
		CompanyName:   b.companyName,
		Price:         price,
		Volume:        1_000_000 + m.rand.Float64()*10_000_000,
		DayHigh:       math.Max(price, previousClose) * (1 + m.rand.Float64()*0.02),
		DayLow:        math.Min(price, previousClose) * (1 - m.rand.Float64()*0.02),
		PreviousClose: previousClose,
		IsMock:        true,
	}, nil
}

// History synthesizes a daily random walk of closes ending at the ticker's
// base price, one point per calendar day, oldest first.
func (m *Mock) History(ctx context.Context, ticker string, days int) (*date.History[float64], error) {
	b, err := m.lookup(ticker)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Walk backwards from today's base so the series always lands on it.
	closes := make([]float64, days)
	price := b.price
	for i := days - 1; i >= 0; i-- {
		closes[i] = price
		price /= 1 + (m.rand.Float64()-0.5)*0.04
	}

	h := new(date.History[float64])
	i := 0
	for day := range date.Over(date.Today(), days) {
		h.Append(day, closes[i])
		i++
	}
	return h, nil
}
