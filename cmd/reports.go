package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/ocolin/stockfolio"
	"github.com/ocolin/stockfolio/date"
	"github.com/ocolin/stockfolio/renderer"
)

type positionsCmd struct{}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "show the active account's open positions" }
func (*positionsCmd) Usage() string {
	return `folio positions

  Fetches fresh quotes for every held ticker and shows the position table.
`
}
func (*positionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	quotes := stockfolio.QuoteMap{}
	gateway().Refresh(ctx, quotes, p.Tickers())
	printMarkdown(renderer.PositionsMarkdown(p.Active().Name, p.Positions(quotes), gateway().Degraded()))
	return subcommands.ExitSuccess
}

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the active account's summary metrics" }
func (*summaryCmd) Usage() string {
	return `folio summary

  Shows total market value, cost basis, gain/loss and trading cash of the
  active account.
`
}
func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	quotes := stockfolio.QuoteMap{}
	gateway().Refresh(ctx, quotes, p.Tickers())
	printMarkdown(renderer.SummaryMarkdown(p.Active().Name, p.Summary(quotes)))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	days int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the portfolio value over the trailing window" }
func (*historyCmd) Usage() string {
	return `folio history [-days <n>]

  Reconstructs the active account's total value day by day over the trailing
  window, valued at historical closing prices.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", stockfolio.HistoryWindow, "Number of trailing days.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -days must be positive.")
		return subcommands.ExitUsageError
	}
	p, _, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	closes := gateway().Closes(ctx, p.Tickers(), c.days)
	series := stockfolio.ValueSeries(p.ActiveLedger().All(), closes, c.days, date.Today())
	printMarkdown(renderer.HistoryMarkdown(p.Active().Name, series))
	return subcommands.ExitSuccess
}

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "look up a ticker" }
func (*quoteCmd) Usage() string {
	return `folio quote <ticker>...

  Fetches and shows the current quote of one or more tickers.
`
}
func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required.")
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		q, err := gateway().Quote(ctx, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		printMarkdown(renderer.QuoteMarkdown(q))
	}
	return status
}

type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "continuously refresh and show positions" }
func (*watchCmd) Usage() string {
	return `folio watch [-interval <duration>]

  Re-fetches quotes on a fixed interval and re-renders the position table
  until interrupted. Refreshes are serialized: a slow fetch delays the next
  tick instead of overlapping it.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.interval, "interval", 60*time.Second, "Delay between refreshes.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	quotes := stockfolio.QuoteMap{}
	for {
		gateway().Refresh(ctx, quotes, p.Tickers())
		printMarkdown(renderer.PositionsMarkdown(p.Active().Name, p.Positions(quotes), gateway().Degraded()))

		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess
		case <-time.After(c.interval):
		}
	}
}
