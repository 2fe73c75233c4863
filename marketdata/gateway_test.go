package marketdata

import (
	"context"
	"errors"
	"testing"

	"github.com/ocolin/stockfolio"
	"github.com/ocolin/stockfolio/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flaky is a provider scripted to fail, counting how often it was consulted.
type flaky struct {
	calls int
	fail  bool
}

func (f *flaky) Quote(ctx context.Context, ticker string) (stockfolio.Quote, error) {
	f.calls++
	if f.fail {
		return stockfolio.Quote{}, errors.New("connection refused")
	}
	return stockfolio.Quote{Ticker: ticker, Price: 100}, nil
}

func (f *flaky) History(ctx context.Context, ticker string, days int) (*date.History[float64], error) {
	f.calls++
	if f.fail {
		return nil, errors.New("connection refused")
	}
	return new(date.History[float64]).Append(date.Today(), 100), nil
}

func TestGateway_LiveQuotesAreNotMock(t *testing.T) {
	g := NewGateway(&flaky{}, NewMock())
	q, err := g.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.False(t, q.IsMock)
	assert.False(t, g.Degraded())
}

func TestGateway_LatchesOnLiveFailure(t *testing.T) {
	live := &flaky{fail: true}
	g := NewGateway(live, NewMock())

	q, err := g.Quote(context.Background(), "AAPL")
	require.NoError(t, err, "a live failure must fall back, not surface")
	assert.True(t, q.IsMock)
	assert.True(t, g.Degraded())

	// Once degraded the live source is never probed again.
	for range 3 {
		_, err := g.Quote(context.Background(), "AAPL")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, live.calls, "gateway must not retry the live source after latching")
}

func TestGateway_NilLiveStartsDegraded(t *testing.T) {
	g := NewGateway(nil, NewMock())
	assert.True(t, g.Degraded())
	q, err := g.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.True(t, q.IsMock)
}

func TestGateway_InvalidTickerSurfaces(t *testing.T) {
	g := NewGateway(nil, NewMock())
	_, err := g.Quote(context.Background(), "FAIL")
	assert.ErrorIs(t, err, ErrUnknownTicker, "an invalid ticker must block, it is the validation path")
}

func TestGateway_HistoryFallsBack(t *testing.T) {
	g := NewGateway(&flaky{fail: true}, NewMock())
	h, err := g.History(context.Background(), "AAPL", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, h.Len())
	assert.True(t, g.Degraded())
}

func TestGateway_RefreshMergesByTicker(t *testing.T) {
	g := NewGateway(nil, NewMock())
	quotes := stockfolio.QuoteMap{}

	g.Refresh(context.Background(), quotes, []string{"AAPL", "NVDA"})
	require.Len(t, quotes, 2)

	// A second refresh of only one ticker must not evict the other.
	g.Refresh(context.Background(), quotes, []string{"AAPL"})
	assert.Len(t, quotes, 2)
	assert.Contains(t, quotes, "NVDA")
}

func TestGateway_RefreshSkipsBadTickers(t *testing.T) {
	g := NewGateway(nil, NewMock())
	quotes := stockfolio.QuoteMap{}
	g.Refresh(context.Background(), quotes, []string{"AAPL", "FAIL"})
	assert.Len(t, quotes, 1)
	assert.Contains(t, quotes, "AAPL")
}

func TestGateway_ClosesKeyedByTicker(t *testing.T) {
	g := NewGateway(nil, NewMock())
	closes := g.Closes(context.Background(), []string{"AAPL", "FAIL", "NVDA"}, stockfolio.HistoryWindow)
	assert.Len(t, closes, 2)
	require.Contains(t, closes, "AAPL")
	assert.Equal(t, stockfolio.HistoryWindow, closes["AAPL"].Len())
}
