package stockfolio

import (
	"time"

	"github.com/ocolin/stockfolio/date"
)

// DefaultAccountName is used when a portfolio has to be created from scratch
// or migrated from a legacy single-account blob.
const DefaultAccountName = "Main Account"

// SampleTransactions returns seed trades for a brand new portfolio, so the
// first run has something to value and render.
func SampleTransactions() []Transaction {
	return []Transaction{
		sample("AAPL", "Apple Inc.", Buy, 10, 150.75, 2023, 5, 10, "Initial purchase"),
		sample("GOOGL", "Alphabet Inc.", Buy, 5, 120.20, 2023, 7, 22, "Buy the dip"),
		sample("TSLA", "Tesla, Inc.", Buy, 15, 250.00, 2023, 1, 15, "Long term hold"),
		sample("NVDA", "NVIDIA Corporation", Buy, 15, 450.50, 2023, 9, 1, "AI boom"),
		sample("TSLA", "Tesla, Inc.", Sell, 7, 280.00, 2023, 10, 5, "Take some profit"),
	}
}

func sample(ticker, name string, typ TxType, shares, price float64, y int, m time.Month, d int, notes string) Transaction {
	return NewTransaction(ticker, name, typ, shares, price, date.New(y, m, d), notes)
}

// DefaultPortfolio builds the portfolio handed out when no saved blob exists:
// a single default account seeded with the sample transactions. The seeds
// describe past trades, not fresh orders, so they bypass cash adjustment and
// the balance stays at zero.
func DefaultPortfolio() *Portfolio {
	p := NewPortfolio(DefaultAccountName)
	p.ActiveLedger().Append(SampleTransactions()...)
	return p
}
