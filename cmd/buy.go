package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ocolin/stockfolio"
	"github.com/ocolin/stockfolio/date"
)

// tradeCmd is the shared implementation of buy and sell.
type tradeCmd struct {
	typ stockfolio.TxType

	ticker  string
	company string
	shares  float64
	price   float64
	day     string
	notes   string
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker symbol (required).")
	f.StringVar(&c.company, "name", "", "Company name. Defaults to the name the quote service reports.")
	f.Float64Var(&c.shares, "s", 0, "Number of shares (required).")
	f.Float64Var(&c.price, "p", 0, "Price per share (required).")
	f.StringVar(&c.day, "d", "", "Trade date YYYY-MM-DD. Defaults to today.")
	f.StringVar(&c.notes, "n", "", "Free-form note.")
}

func (c *tradeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var on date.Date
	if c.day != "" {
		if on, err = date.Parse(c.day); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	// The ticker must resolve before anything is recorded; an unknown symbol
	// blocks the trade.
	quote, err := gateway().Quote(ctx, c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	company := c.company
	if company == "" {
		company = quote.CompanyName
	}

	tx := stockfolio.NewTransaction(c.ticker, company, c.typ, c.shares, c.price, on, c.notes)
	tx, err = p.AddTransaction(p.ActiveID(), tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %v %s @ %v on %s (id %s)\n", tx.Type, tx.Shares, tx.Ticker, tx.Price, tx.Date, tx.ID)
	fmt.Printf("Cash balance of %q is now %s\n", p.Active().Name, p.Active().Cash)
	return subcommands.ExitSuccess
}

type buyCmd struct{ tradeCmd }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy in the active account" }
func (*buyCmd) Usage() string {
	return `folio buy -t <ticker> -s <shares> -p <price> [-d <date>] [-name <company>] [-n <note>]

  Records a buy and debits the account's cash by shares*price.
  The ticker is validated against the quote service first.
`
}
func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.typ = stockfolio.Buy
	c.tradeCmd.SetFlags(f)
}

type sellCmd struct{ tradeCmd }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell in the active account" }
func (*sellCmd) Usage() string {
	return `folio sell -t <ticker> -s <shares> -p <price> [-d <date>] [-name <company>] [-n <note>]

  Records a sell and credits the account's cash by shares*price.
  Selling more shares than held is accepted; the position nets negative and
  disappears from the position list.
`
}
func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	c.typ = stockfolio.Sell
	c.tradeCmd.SetFlags(f)
}
