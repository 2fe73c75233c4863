// Package renderer turns engine output into markdown reports.
package renderer

import (
	"fmt"
	"log"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency of every displayed amount. The engine is currency-agnostic; the
// display layer is not.
const Currency = "USD"

// Money represents a monetary value for display.
type Money struct {
	value *money.Money
}

// NewMoney creates a new Money instance from a decimal.Decimal.
func NewMoney(amount decimal.Decimal) Money {
	cur := money.GetCurrency(Currency)
	if cur == nil {
		log.Fatalf("unknown display currency %q", Currency)
	}
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	amount = amount.Mul(factor)
	return Money{money.New(amount.Round(0).IntPart(), Currency)}
}

// NewMoneyFromFloat creates a new Money instance from a float64, rounding to
// the currency's smallest unit. Rounding happens here and only here.
func NewMoneyFromFloat(amount float64) Money {
	return NewMoney(decimal.NewFromFloat(amount))
}

// String returns the display representation, e.g. "$1,725.00".
func (m Money) String() string {
	if m.value == nil {
		return ""
	}
	return m.value.Display()
}

// SignedString is like String with an explicit sign for positive values, for
// gain/loss columns.
func (m Money) SignedString() string {
	if m.value == nil {
		return ""
	}
	if m.value.IsPositive() {
		return "+" + m.value.Display()
	}
	return m.value.Display()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.value != nil && m.value.IsNegative()
}

// Percent renders a ratio already scaled to percent, e.g. 15 -> "15.00%".
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString is like String with an explicit sign for positive values.
func (p Percent) SignedString() string {
	if p > 0 {
		return "+" + p.String()
	}
	return p.String()
}

// Quantity renders a share count, trimming the trailing zeros of whole
// counts.
type Quantity float64

func (q Quantity) String() string {
	d := decimal.NewFromFloat(float64(q))
	return d.String()
}
