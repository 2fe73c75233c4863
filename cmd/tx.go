package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ocolin/stockfolio"
	"github.com/ocolin/stockfolio/date"
	"github.com/ocolin/stockfolio/renderer"
)

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the active account's transactions" }
func (*txCmd) Usage() string {
	return `folio tx [-head <n> | -tail <n>]

  Lists the active account's transactions, oldest first.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	p, _, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs := p.ActiveLedger().All()
	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	if c.tail > 0 && len(txs) > c.tail {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(p.Active().Name, txs))
	return subcommands.ExitSuccess
}

type editCmd struct {
	id      string
	ticker  string
	company string
	typ     string
	shares  float64
	price   float64
	day     string
	notes   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a recorded transaction" }
func (*editCmd) Usage() string {
	return `folio edit -id <id> [-t <ticker>] [-type BUY|SELL] [-s <shares>] [-p <price>] [-d <date>] [-name <company>] [-n <note>]

  Replaces fields of a recorded transaction. Cash is NOT re-adjusted:
  only recording and deleting a transaction move cash.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id (required, see 'folio tx').")
	f.StringVar(&c.ticker, "t", "", "New ticker symbol.")
	f.StringVar(&c.company, "name", "", "New company name.")
	f.StringVar(&c.typ, "type", "", "New type, BUY or SELL.")
	f.Float64Var(&c.shares, "s", 0, "New share count.")
	f.Float64Var(&c.price, "p", -1, "New price per share.")
	f.StringVar(&c.day, "d", "", "New trade date YYYY-MM-DD.")
	f.StringVar(&c.notes, "n", "", "New note.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, ok := p.ActiveLedger().Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no transaction %q in account %q\n", c.id, p.Active().Name)
		return subcommands.ExitFailure
	}

	if c.ticker != "" {
		tx.Ticker = c.ticker
	}
	if c.company != "" {
		tx.CompanyName = c.company
	}
	if c.typ != "" {
		typ, err := stockfolio.ParseTxType(c.typ)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		tx.Type = typ
	}
	if c.shares != 0 {
		tx.Shares = c.shares
	}
	if c.price >= 0 {
		tx.Price = c.price
	}
	if c.day != "" {
		if tx.Date, err = date.Parse(c.day); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.notes != "" {
		tx.Notes = c.notes
	}

	if _, err := p.UpdateTransaction(p.ActiveID(), tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a recorded transaction" }
func (*deleteCmd) Usage() string {
	return `folio delete -id <id>

  Deletes a transaction and reverses its original cash adjustment.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id (required, see 'folio tx').")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := p.DeleteTransaction(p.ActiveID(), c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %s, cash balance of %q is now %s\n", c.id, p.Active().Name, p.Active().Cash)
	return subcommands.ExitSuccess
}
