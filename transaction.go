package stockfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ocolin/stockfolio/date"
)

// TxType identifies the side of a transaction.
type TxType string

const (
	Buy  TxType = "BUY"
	Sell TxType = "SELL"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction records a single trade. It is immutable once recorded; edits
// replace the whole record under the same ID.
type Transaction struct {
	ID          string    `json:"id"`
	Ticker      string    `json:"ticker"`
	CompanyName string    `json:"companyName"`
	Type        TxType    `json:"type"`
	Shares      float64   `json:"shares"`
	Price       float64   `json:"price"`
	Date        date.Date `json:"date"`
	Notes       string    `json:"notes,omitempty"`
}

// NewTransaction creates a transaction with a fresh ID. The ticker is
// normalized to uppercase.
func NewTransaction(ticker, companyName string, typ TxType, shares, price float64, on date.Date, notes string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Ticker:      strings.ToUpper(strings.TrimSpace(ticker)),
		CompanyName: companyName,
		Type:        typ,
		Shares:      shares,
		Price:       price,
		Date:        on,
		Notes:       notes,
	}
}

// Amount returns the total traded amount, shares times price.
func (t Transaction) Amount() float64 { return t.Shares * t.Price }

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (uppercasing the ticker, defaulting a zero date to today). It
// returns the validated (and potentially modified) transaction or an error.
//
// Selling more shares than held is deliberately not rejected here: holdings
// are not consulted at all, an oversell simply nets the position negative.
func (t Transaction) Validate() (Transaction, error) {
	t.Ticker = strings.ToUpper(strings.TrimSpace(t.Ticker))
	if t.Ticker == "" {
		return t, errors.New("ticker is missing")
	}
	if t.Type != Buy && t.Type != Sell {
		return t, fmt.Errorf("unknown transaction type: %q", t.Type)
	}
	if !(t.Shares > 0) {
		return t, fmt.Errorf("shares must be positive, got %v", t.Shares)
	}
	if !(t.Price >= 0) {
		return t, fmt.Errorf("price must not be negative, got %v", t.Price)
	}
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	return t, nil
}
