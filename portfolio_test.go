package stockfolio

import (
	"errors"
	"testing"

	"github.com/ocolin/stockfolio/date"
	"github.com/shopspring/decimal"
)

func TestPortfolio_CashRoundTrip(t *testing.T) {
	p := NewPortfolio("Main")
	id := p.ActiveID()
	if err := p.SetCash(id, decimal.NewFromFloat(1234.56)); err != nil {
		t.Fatal(err)
	}
	before := p.Active().Cash

	tx, err := p.AddTransaction(id, NewTransaction("AAPL", "Apple Inc.", Buy, 5, 10, date.MustParse("2025-01-10"), ""))
	if err != nil {
		t.Fatal(err)
	}
	if want := before.Sub(decimal.NewFromInt(50)); !p.Active().Cash.Equal(want) {
		t.Errorf("cash after buy = %s, want %s", p.Active().Cash, want)
	}

	if err := p.DeleteTransaction(id, tx.ID); err != nil {
		t.Fatal(err)
	}
	// Exact equality, not approximate: delete must reverse the adjustment
	// to the cent and beyond.
	if !p.Active().Cash.Equal(before) {
		t.Errorf("cash after add+delete = %s, want exactly %s", p.Active().Cash, before)
	}
}

func TestPortfolio_SellCreditsCash(t *testing.T) {
	p := NewPortfolio("Main")
	id := p.ActiveID()
	if _, err := p.AddTransaction(id, NewTransaction("AAPL", "Apple Inc.", Sell, 2, 100.10, date.MustParse("2025-01-10"), "")); err != nil {
		t.Fatal(err)
	}
	if want := decimal.NewFromFloat(200.20); !p.Active().Cash.Equal(want) {
		t.Errorf("cash after sell = %s, want %s", p.Active().Cash, want)
	}
}

func TestPortfolio_EditDoesNotTouchCash(t *testing.T) {
	p := NewPortfolio("Main")
	id := p.ActiveID()
	tx, err := p.AddTransaction(id, NewTransaction("AAPL", "Apple Inc.", Buy, 5, 10, date.MustParse("2025-01-10"), ""))
	if err != nil {
		t.Fatal(err)
	}
	after := p.Active().Cash

	tx.Shares = 500
	tx.Price = 999
	if _, err := p.UpdateTransaction(id, tx); err != nil {
		t.Fatal(err)
	}
	if !p.Active().Cash.Equal(after) {
		t.Errorf("cash moved on edit: %s, want %s (only add/delete adjust cash)", p.Active().Cash, after)
	}

	got, ok := p.ActiveLedger().Get(tx.ID)
	if !ok || got.Shares != 500 || got.Price != 999 {
		t.Errorf("edit not applied: %+v", got)
	}
}

func TestPortfolio_AddTransactionValidates(t *testing.T) {
	p := NewPortfolio("Main")
	id := p.ActiveID()
	cases := []Transaction{
		NewTransaction("", "No ticker", Buy, 5, 10, date.MustParse("2025-01-10"), ""),
		NewTransaction("AAPL", "Apple Inc.", Buy, 0, 10, date.MustParse("2025-01-10"), ""),
		NewTransaction("AAPL", "Apple Inc.", Buy, -3, 10, date.MustParse("2025-01-10"), ""),
		NewTransaction("AAPL", "Apple Inc.", Buy, 5, -1, date.MustParse("2025-01-10"), ""),
		{ID: "x", Ticker: "AAPL", Type: "SHORT", Shares: 1, Price: 1, Date: date.MustParse("2025-01-10")},
	}
	for _, tx := range cases {
		if _, err := p.AddTransaction(id, tx); err == nil {
			t.Errorf("AddTransaction(%+v) accepted invalid transaction", tx)
		}
	}
	if p.ActiveLedger().Len() != 0 {
		t.Errorf("invalid transactions were recorded: %d in ledger", p.ActiveLedger().Len())
	}
	if !p.Active().Cash.IsZero() {
		t.Errorf("invalid transactions moved cash: %s", p.Active().Cash)
	}
}

func TestPortfolio_LastAccountUndeletable(t *testing.T) {
	p := NewPortfolio("Main")
	if err := p.DeleteAccount(p.ActiveID()); !errors.Is(err, ErrLastAccount) {
		t.Errorf("DeleteAccount(last) = %v, want ErrLastAccount", err)
	}
	if len(p.Accounts()) != 1 {
		t.Fatalf("account count = %d, want 1", len(p.Accounts()))
	}
}

func TestPortfolio_DeleteActiveFallsBack(t *testing.T) {
	p := NewPortfolio("First")
	second := p.AddAccount("Second")
	third := p.AddAccount("Third")
	if err := p.SetActive(second.ID); err != nil {
		t.Fatal(err)
	}

	if err := p.DeleteAccount(second.ID); err != nil {
		t.Fatal(err)
	}
	// Fallback is the first remaining account in registry order, not the
	// most recently created one.
	if p.ActiveID() != p.Accounts()[0].ID {
		t.Errorf("active = %q, want first remaining %q", p.ActiveID(), p.Accounts()[0].ID)
	}
	if p.ActiveID() == third.ID {
		t.Errorf("active fell back to %q instead of registry head", third.ID)
	}
	if _, err := p.Ledger(second.ID); err == nil {
		t.Error("deleted account's ledger partition still reachable")
	}
}

func TestPortfolio_DeleteInactiveKeepsActive(t *testing.T) {
	p := NewPortfolio("First")
	second := p.AddAccount("Second")
	active := p.ActiveID()
	if err := p.DeleteAccount(second.ID); err != nil {
		t.Fatal(err)
	}
	if p.ActiveID() != active {
		t.Errorf("active changed to %q on unrelated delete", p.ActiveID())
	}
}

func TestPortfolio_LedgerPartitionsAreIsolated(t *testing.T) {
	p := NewPortfolio("First")
	second := p.AddAccount("Second")
	if _, err := p.AddTransaction(p.ActiveID(), NewTransaction("AAPL", "Apple Inc.", Buy, 1, 1, date.MustParse("2025-01-10"), "")); err != nil {
		t.Fatal(err)
	}
	l, err := p.Ledger(second.ID)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("transaction leaked into another account's partition")
	}
}

func TestPortfolio_SwitchUnknownAccount(t *testing.T) {
	p := NewPortfolio("Main")
	if err := p.SetActive("nope"); err == nil {
		t.Error("SetActive accepted an unknown account id")
	}
}
