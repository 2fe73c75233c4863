package stockfolio

import (
	"encoding/json"
	"fmt"
	"io"
)

// portfolioJSON is the persisted blob layout.
type portfolioJSON struct {
	Accounts        []Account          `json:"accounts"`
	Transactions    map[string]*Ledger `json:"transactions"`
	ActiveAccountID string             `json:"activeAccountId"`
}

// MarshalJSON encodes the portfolio as the single persisted JSON blob
// {accounts, transactions, activeAccountId}.
func (p *Portfolio) MarshalJSON() ([]byte, error) {
	return json.Marshal(portfolioJSON{
		Accounts:        p.accounts,
		Transactions:    p.ledgers,
		ActiveAccountID: p.activeID,
	})
}

// UnmarshalJSON decodes the persisted blob and restores the registry
// invariants: every account gets a ledger partition, ledger partitions
// without an account are dropped, and the active id falls back to the first
// account when missing or stale.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var blob portfolioJSON
	if err := json.Unmarshal(data, &blob); err != nil {
		return err
	}
	if len(blob.Accounts) == 0 {
		return fmt.Errorf("portfolio blob has no accounts")
	}
	p.accounts = blob.Accounts
	p.ledgers = make(map[string]*Ledger, len(blob.Accounts))
	for _, a := range blob.Accounts {
		if l := blob.Transactions[a.ID]; l != nil {
			p.ledgers[a.ID] = l
		} else {
			p.ledgers[a.ID] = NewLedger()
		}
	}
	p.activeID = blob.ActiveAccountID
	if _, err := p.Account(p.activeID); err != nil {
		p.activeID = p.accounts[0].ID
	}
	return nil
}

// DecodePortfolio reads a persisted portfolio from r.
//
// Three blob generations are accepted: the current multi-account shape, the
// legacy single-account object holding only a transactions array, and the
// oldest format, a bare transaction array. Legacy blobs are migrated by
// synthesizing one default account owning all transactions.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read portfolio blob: %w", err)
	}

	var probe struct {
		Accounts     []json.RawMessage `json:"accounts"`
		Transactions json.RawMessage   `json:"transactions"`
	}
	if err := json.Unmarshal(data, &probe); err == nil {
		if len(probe.Accounts) > 0 {
			p := new(Portfolio)
			if err := p.UnmarshalJSON(data); err != nil {
				return nil, fmt.Errorf("invalid portfolio blob: %w", err)
			}
			return p, nil
		}
		if len(probe.Transactions) > 0 {
			var txs []Transaction
			if err := json.Unmarshal(probe.Transactions, &txs); err != nil {
				return nil, fmt.Errorf("invalid legacy transactions blob: %w", err)
			}
			return migrated(txs), nil
		}
		return nil, fmt.Errorf("portfolio blob has neither accounts nor transactions")
	}

	// Oldest format: a bare array of transactions.
	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("unrecognized portfolio blob: %w", err)
	}
	return migrated(txs), nil
}

// migrated wraps legacy transactions into a fresh single-account portfolio.
func migrated(txs []Transaction) *Portfolio {
	p := NewPortfolio(DefaultAccountName)
	p.ActiveLedger().Append(txs...)
	return p
}

// EncodePortfolio writes the portfolio blob to w, indented for readability.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal portfolio: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
