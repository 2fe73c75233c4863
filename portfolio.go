package stockfolio

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrLastAccount is returned when deleting the only remaining account.
var ErrLastAccount = errors.New("cannot delete the last account")

// Portfolio is the full durable state: the account registry and one ledger
// partition per account. It is always persisted and replaced wholesale.
type Portfolio struct {
	accounts []Account
	ledgers  map[string]*Ledger
	activeID string
}

// NewPortfolio creates a portfolio with a single account of that name and an
// empty ledger, active.
func NewPortfolio(accountName string) *Portfolio {
	p := &Portfolio{ledgers: make(map[string]*Ledger)}
	acc := NewAccount(accountName)
	p.accounts = append(p.accounts, acc)
	p.ledgers[acc.ID] = NewLedger()
	p.activeID = acc.ID
	return p
}

// Accounts returns the accounts in registry order.
func (p *Portfolio) Accounts() []Account {
	return append([]Account(nil), p.accounts...)
}

// Account returns the account with the given id.
func (p *Portfolio) Account(id string) (Account, error) {
	for _, a := range p.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return Account{}, fmt.Errorf("unknown account %q", id)
}

// Active returns the currently active account.
func (p *Portfolio) Active() Account {
	a, _ := p.Account(p.activeID)
	return a
}

// ActiveID returns the id of the active account.
func (p *Portfolio) ActiveID() string { return p.activeID }

// SetActive switches the active account. This is a pure pointer reassignment;
// callers recompute derived data against the newly active ledger afterwards.
func (p *Portfolio) SetActive(id string) error {
	if _, err := p.Account(id); err != nil {
		return err
	}
	p.activeID = id
	return nil
}

// Ledger returns the ledger partition of an account.
func (p *Portfolio) Ledger(accountID string) (*Ledger, error) {
	l, ok := p.ledgers[accountID]
	if !ok {
		return nil, fmt.Errorf("unknown account %q", accountID)
	}
	return l, nil
}

// ActiveLedger returns the ledger of the active account.
func (p *Portfolio) ActiveLedger() *Ledger {
	l, _ := p.Ledger(p.activeID)
	return l
}

// AddAccount appends a new, empty account to the registry.
func (p *Portfolio) AddAccount(name string) Account {
	acc := NewAccount(name)
	p.accounts = append(p.accounts, acc)
	p.ledgers[acc.ID] = NewLedger()
	return acc
}

// RenameAccount changes an account's display label.
func (p *Portfolio) RenameAccount(id, name string) error {
	for i := range p.accounts {
		if p.accounts[i].ID == id {
			p.accounts[i].Name = name
			return nil
		}
	}
	return fmt.Errorf("unknown account %q", id)
}

// DeleteAccount removes an account and its whole ledger partition.
// Transactions are not reassigned or archived. Deleting the last remaining
// account is rejected. If the deleted account was active, activation falls
// back to the first remaining account in registry order.
func (p *Portfolio) DeleteAccount(id string) error {
	if len(p.accounts) <= 1 {
		return ErrLastAccount
	}
	idx := -1
	for i, a := range p.accounts {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("unknown account %q", id)
	}
	p.accounts = append(p.accounts[:idx], p.accounts[idx+1:]...)
	delete(p.ledgers, id)
	if p.activeID == id {
		p.activeID = p.accounts[0].ID
	}
	return nil
}

// SetCash overrides an account's cash balance. Cash is an independent
// balance, a manual override is allowed to desynchronize it from anything the
// ledger implies.
func (p *Portfolio) SetCash(accountID string, cash decimal.Decimal) error {
	for i := range p.accounts {
		if p.accounts[i].ID == accountID {
			p.accounts[i].Cash = cash
			return nil
		}
	}
	return fmt.Errorf("unknown account %q", accountID)
}

// adjustCash applies a signed amount to an account's cash balance.
func (p *Portfolio) adjustCash(accountID string, amount decimal.Decimal) error {
	for i := range p.accounts {
		if p.accounts[i].ID == accountID {
			p.accounts[i].Cash = p.accounts[i].Cash.Add(amount)
			return nil
		}
	}
	return fmt.Errorf("unknown account %q", accountID)
}

// cashEffect is the signed cash movement a transaction causes when recorded:
// a buy debits shares*price, a sell credits it.
func cashEffect(tx Transaction) decimal.Decimal {
	amount := decimal.NewFromFloat(tx.Amount())
	if tx.Type == Buy {
		return amount.Neg()
	}
	return amount
}

// AddTransaction validates and records a transaction in the account's ledger
// and adjusts the account's cash by the traded amount.
func (p *Portfolio) AddTransaction(accountID string, tx Transaction) (Transaction, error) {
	l, err := p.Ledger(accountID)
	if err != nil {
		return tx, err
	}
	tx, err = tx.Validate()
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction: %w", tx.Type, err)
	}
	l.Append(tx)
	if err := p.adjustCash(accountID, cashEffect(tx)); err != nil {
		return tx, err
	}
	return tx, nil
}

// UpdateTransaction replaces a transaction wholesale, keeping its ID.
//
// Cash is deliberately not re-adjusted: only add and delete touch cash. An
// edit that changes shares or price therefore leaves cash where the original
// trade put it. Kept as an accepted inconsistency of the bookkeeping model,
// documented rather than fixed, since cash is a free-standing balance the
// user can override anyway.
func (p *Portfolio) UpdateTransaction(accountID string, tx Transaction) (Transaction, error) {
	l, err := p.Ledger(accountID)
	if err != nil {
		return tx, err
	}
	tx, err = tx.Validate()
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction: %w", tx.Type, err)
	}
	if err := l.Replace(tx); err != nil {
		return tx, err
	}
	return tx, nil
}

// DeleteTransaction removes a transaction and reverses its original cash
// adjustment: deleting a buy credits the cash back, deleting a sell debits it.
func (p *Portfolio) DeleteTransaction(accountID, txID string) error {
	l, err := p.Ledger(accountID)
	if err != nil {
		return err
	}
	tx, err := l.Remove(txID)
	if err != nil {
		return err
	}
	return p.adjustCash(accountID, cashEffect(tx).Neg())
}

// Tickers returns the distinct tickers of the active account's ledger, sorted.
func (p *Portfolio) Tickers() []string { return p.ActiveLedger().Tickers() }

// Positions aggregates the active account's ledger, marked with the given quotes.
func (p *Portfolio) Positions(quotes QuoteMap) []Position {
	return Positions(p.ActiveLedger().All(), quotes)
}

// Summary computes the active account's summary over the given quotes.
func (p *Portfolio) Summary(quotes QuoteMap) Summary {
	return NewSummary(p.Positions(quotes), p.Active().Cash)
}
