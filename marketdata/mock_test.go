package marketdata

import (
	"context"
	"testing"

	"github.com/ocolin/stockfolio/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_StickyBasePrice(t *testing.T) {
	m := NewMock()
	first, err := m.Quote(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", first.Ticker)
	assert.Equal(t, "Apple Inc.", first.CompanyName)
	assert.True(t, first.IsMock)

	// Fluctuation is bounded: every synthetic quote stays within ±2.5% of
	// the sticky base.
	for range 50 {
		q, err := m.Quote(context.Background(), "AAPL")
		require.NoError(t, err)
		assert.InDelta(t, 172.50, q.Price, 172.50*0.026)
		assert.GreaterOrEqual(t, q.DayHigh, q.Price)
		assert.LessOrEqual(t, q.DayLow, q.Price)
	}
}

func TestMock_InventsUnknownTickers(t *testing.T) {
	m := NewMock()
	q, err := m.Quote(context.Background(), "ZZZT")
	require.NoError(t, err)
	assert.Equal(t, "ZZZT Company Inc.", q.CompanyName)
	assert.GreaterOrEqual(t, q.Price, 48.0)
	assert.LessOrEqual(t, q.Price, 515.0)

	// The invented base must stick across quotes.
	again, err := m.Quote(context.Background(), "ZZZT")
	require.NoError(t, err)
	assert.InDelta(t, q.Price, again.Price, q.Price*0.06)
}

func TestMock_FailTicker(t *testing.T) {
	m := NewMock()
	_, err := m.Quote(context.Background(), "FAIL")
	assert.Error(t, err)
	_, err = m.History(context.Background(), "FAIL", 30)
	assert.Error(t, err)
}

func TestMock_HistoryShape(t *testing.T) {
	m := NewMock()
	h, err := m.History(context.Background(), "AAPL", 30)
	require.NoError(t, err)
	require.Equal(t, 30, h.Len())

	last, close := h.Latest()
	assert.Equal(t, date.Today(), last)
	assert.Equal(t, 172.50, close, "the walk must land on the base price")

	// One point per calendar day over the window, ascending.
	prev := date.Date{}
	for day := range h.Values() {
		if !prev.IsZero() {
			assert.Equal(t, prev.Add(1), day)
		}
		prev = day
	}
}
