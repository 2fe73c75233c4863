package stockfolio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/ocolin/stockfolio/date"
	"github.com/shopspring/decimal"
)

// This file contains the import/export formats. Exports must be human
// readable and re-importable without loss (except CSV, which cannot carry
// cash for a single account).

// csvHeader is the column layout of a transaction CSV export.
var csvHeader = []string{"id", "ticker", "companyName", "type", "shares", "price", "date", "notes"}

// csvAccountHeader prefixes every row with its owning account when exporting
// all accounts at once.
var csvAccountHeader = []string{"accountId", "accountName", "accountCash", "id", "ticker", "companyName", "type", "shares", "price", "date", "notes"}

// ExportJSON writes the full portfolio backup: accounts, all ledger
// partitions and the active account id.
func ExportJSON(w io.Writer, p *Portfolio) error {
	return EncodePortfolio(w, p)
}

// accountBackup is the single-account export shape.
type accountBackup struct {
	Account struct {
		Name string          `json:"name"`
		Cash decimal.Decimal `json:"cash"`
	} `json:"account"`
	Transactions []Transaction `json:"transactions"`
}

// ExportAccountJSON writes a backup of one account: its name, cash and
// transactions, without the rest of the portfolio.
func ExportAccountJSON(w io.Writer, p *Portfolio, accountID string) error {
	a, err := p.Account(accountID)
	if err != nil {
		return err
	}
	l, err := p.Ledger(accountID)
	if err != nil {
		return err
	}
	var backup accountBackup
	backup.Account.Name = a.Name
	backup.Account.Cash = a.Cash
	backup.Transactions = l.All()

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal account backup: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ExportCSV writes one account's transactions as flat CSV rows. Cash is not
// representable in this format.
func ExportCSV(w io.Writer, p *Portfolio, accountID string) error {
	l, err := p.Ledger(accountID)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, tx := range l.Transactions() {
		if err := cw.Write(csvRow(tx)); err != nil {
			return fmt.Errorf("cannot write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportAllCSV writes every account's transactions in one CSV, each row
// carrying the owning account's id, name and cash.
func ExportAllCSV(w io.Writer, p *Portfolio) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvAccountHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, a := range p.Accounts() {
		l, err := p.Ledger(a.ID)
		if err != nil {
			return err
		}
		for _, tx := range l.Transactions() {
			row := append([]string{a.ID, a.Name, a.Cash.String()}, csvRow(tx)...)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("cannot write CSV row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(tx Transaction) []string {
	return []string{
		tx.ID,
		tx.Ticker,
		tx.CompanyName,
		string(tx.Type),
		strconv.FormatFloat(tx.Shares, 'f', -1, 64),
		strconv.FormatFloat(tx.Price, 'f', -1, 64),
		tx.Date.String(),
		tx.Notes,
	}
}

// ImportScope tells how much of the portfolio an import would replace.
type ImportScope int

const (
	// ScopePortfolio replaces the whole portfolio: every account, every
	// ledger partition, cash balances and the active selection.
	ScopePortfolio ImportScope = iota
	// ScopeAccount replaces the active account's transactions, cash and name.
	ScopeAccount
	// ScopeTransactions replaces the active account's transactions only,
	// leaving its cash and name untouched.
	ScopeTransactions
)

// Import is a parsed backup staged for application. Parsing never mutates
// anything: the caller inspects Describe, asks the user, and only then calls
// Apply.
type Import struct {
	Scope ImportScope

	portfolio    *Portfolio    // ScopePortfolio
	accountName  string        // ScopeAccount
	cash         decimal.Decimal
	transactions []Transaction // ScopeAccount and ScopeTransactions
}

// ParseImport reads a JSON backup and detects which of the three accepted
// shapes it is: a full portfolio ({accounts, transactions, activeAccountId}),
// a single-account backup ({account:{name,cash}, transactions}), or a bare
// transaction array.
func ParseImport(data []byte) (*Import, error) {
	var probe struct {
		Accounts []json.RawMessage `json:"accounts"`
		Account  json.RawMessage   `json:"account"`
	}
	if err := json.Unmarshal(data, &probe); err == nil {
		if len(probe.Accounts) > 0 {
			p := new(Portfolio)
			if err := p.UnmarshalJSON(data); err != nil {
				return nil, fmt.Errorf("invalid portfolio backup: %w", err)
			}
			return &Import{Scope: ScopePortfolio, portfolio: p}, nil
		}
		if len(probe.Account) > 0 {
			var backup accountBackup
			if err := json.Unmarshal(data, &backup); err != nil {
				return nil, fmt.Errorf("invalid account backup: %w", err)
			}
			txs, err := validated(backup.Transactions)
			if err != nil {
				return nil, err
			}
			return &Import{
				Scope:        ScopeAccount,
				accountName:  backup.Account.Name,
				cash:         backup.Account.Cash,
				transactions: txs,
			}, nil
		}
		return nil, fmt.Errorf("backup has neither accounts nor account")
	}

	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("unrecognized backup format: %w", err)
	}
	txs, err := validated(txs)
	if err != nil {
		return nil, err
	}
	return &Import{Scope: ScopeTransactions, transactions: txs}, nil
}

// ParseCSV reads a transaction CSV export. CSV cannot carry account cash, so
// the result is always a transactions-only import.
func ParseCSV(r io.Reader) (*Import, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty")
	}

	// Locate each known column by its header name, so column order and extra
	// columns (like the all-accounts export's account columns) don't matter.
	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range []string{"ticker", "type", "shares", "price", "date"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var txs []Transaction
	for n, row := range records[1:] {
		typ, err := ParseTxType(field(row, "type"))
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", n+2, err)
		}
		shares, err := strconv.ParseFloat(field(row, "shares"), 64)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: invalid shares %q", n+2, field(row, "shares"))
		}
		price, err := strconv.ParseFloat(field(row, "price"), 64)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: invalid price %q", n+2, field(row, "price"))
		}
		day, err := date.Parse(field(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", n+2, err)
		}
		tx := Transaction{
			ID:          field(row, "id"),
			Ticker:      field(row, "ticker"),
			CompanyName: field(row, "companyName"),
			Type:        typ,
			Shares:      shares,
			Price:       price,
			Date:        day,
			Notes:       field(row, "notes"),
		}
		if tx.ID == "" {
			tx.ID = uuid.NewString()
		}
		tx, err = tx.Validate()
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", n+2, err)
		}
		txs = append(txs, tx)
	}
	return &Import{Scope: ScopeTransactions, transactions: txs}, nil
}

// validated checks every transaction of a staged import before any of them is
// accepted, so a corrupt backup cannot be half-applied.
func validated(txs []Transaction) ([]Transaction, error) {
	out := make([]Transaction, 0, len(txs))
	for i, tx := range txs {
		v, err := tx.Validate()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Describe returns a one-line human description of what Apply would replace,
// meant to be shown before asking for confirmation.
func (im *Import) Describe() string {
	switch im.Scope {
	case ScopePortfolio:
		n := 0
		for _, a := range im.portfolio.Accounts() {
			if l, err := im.portfolio.Ledger(a.ID); err == nil {
				n += l.Len()
			}
		}
		return fmt.Sprintf("replace the ENTIRE portfolio with %d accounts and %d transactions", len(im.portfolio.Accounts()), n)
	case ScopeAccount:
		return fmt.Sprintf("replace the active account with %q (cash %s, %d transactions)", im.accountName, im.cash.String(), len(im.transactions))
	default:
		return fmt.Sprintf("replace the active account's transactions with %d imported ones (cash untouched)", len(im.transactions))
	}
}

// Apply performs the staged replacement on p and returns the portfolio to use
// afterwards (a new one for a full-portfolio import, p itself otherwise).
// Must only be called after the user confirmed Describe.
func (im *Import) Apply(p *Portfolio) *Portfolio {
	switch im.Scope {
	case ScopePortfolio:
		return im.portfolio
	case ScopeAccount:
		id := p.ActiveID()
		// id is the active account, it exists, so these cannot fail.
		p.RenameAccount(id, im.accountName)
		p.SetCash(id, im.cash)
		l := p.ActiveLedger()
		*l = *NewLedger(im.transactions...)
		return p
	default:
		l := p.ActiveLedger()
		*l = *NewLedger(im.transactions...)
		return p
	}
}
