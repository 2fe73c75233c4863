package stockfolio

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Ledger holds the ordered transactions of a single account.
//
// Transactions are kept in chronological order; same-day entries keep their
// insertion order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: slices.Clone(txs)}
	l.stableSort()
	return l
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append appends transactions to this ledger and maintains the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Get returns the transaction with the given id, or false if unknown.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Replace swaps the transaction with the same ID for the given one, wholesale.
func (l *Ledger) Replace(tx Transaction) error {
	for i := range l.transactions {
		if l.transactions[i].ID == tx.ID {
			l.transactions[i] = tx
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("unknown transaction %q", tx.ID)
}

// Remove deletes the transaction with the given id and returns it.
func (l *Ledger) Remove(id string) (Transaction, error) {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return tx, nil
		}
	}
	return Transaction{}, fmt.Errorf("unknown transaction %q", id)
}

// Transactions returns an iterator over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// All returns a copy of the transactions slice, in chronological order.
func (l *Ledger) All() []Transaction { return slices.Clone(l.transactions) }

// Tickers returns the distinct tickers appearing in the ledger, sorted.
func (l *Ledger) Tickers() []string {
	seen := make(map[string]struct{})
	for _, tx := range l.transactions {
		seen[tx.Ticker] = struct{}{}
	}
	tickers := make([]string, 0, len(seen))
	for t := range seen {
		tickers = append(tickers, t)
	}
	slices.Sort(tickers)
	return tickers
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// MarshalJSON encodes the ledger as a plain JSON array of transactions.
func (l Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.transactions)
}

// UnmarshalJSON decodes a plain JSON array of transactions.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return err
	}
	l.transactions = txs
	l.stableSort()
	return nil
}
