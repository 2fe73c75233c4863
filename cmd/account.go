package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ocolin/stockfolio/renderer"
	"github.com/shopspring/decimal"
)

type accountCmd struct {
	create   string
	switchTo string
	rename   string
	remove   string
	yes      bool
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "list and manage accounts" }
func (*accountCmd) Usage() string {
	return `folio account [-new <name> | -switch <id|name> | -rename <name> | -delete <id|name> [-y]]

  Without flags, lists all accounts and marks the active one.
  -new creates an account and switches to it.
  -switch changes the active account.
  -rename renames the active account.
  -delete removes an account and all its transactions. The last account
  cannot be deleted.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.create, "new", "", "Create an account with that name and switch to it.")
	f.StringVar(&c.switchTo, "switch", "", "Switch the active account, by id or name.")
	f.StringVar(&c.rename, "rename", "", "Rename the active account.")
	f.StringVar(&c.remove, "delete", "", "Delete an account, by id or name.")
	f.BoolVar(&c.yes, "y", false, "Skip the deletion confirmation.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	switch {
	case c.create != "":
		acc := p.AddAccount(c.create)
		if err := p.SetActive(acc.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created account %q (%s), now active\n", acc.Name, acc.ID)
		changed = true

	case c.switchTo != "":
		acc, err := findAccount(p, c.switchTo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := p.SetActive(acc.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Active account is now %q\n", acc.Name)
		changed = true

	case c.rename != "":
		if err := p.RenameAccount(p.ActiveID(), c.rename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Renamed active account to %q\n", c.rename)
		changed = true

	case c.remove != "":
		acc, err := findAccount(p, c.remove)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		l, err := p.Ledger(acc.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if !c.yes && !confirm(fmt.Sprintf("Delete account %q and its %d transactions for good?", acc.Name, l.Len())) {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
		if err := p.DeleteAccount(acc.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted account %q, active account is now %q\n", acc.Name, p.Active().Name)
		changed = true
	}

	if changed {
		if err := store.Save(p); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.AccountsMarkdown(p.Accounts(), p.ActiveID()))
	return subcommands.ExitSuccess
}

type cashCmd struct{}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "show or set the active account's cash balance" }
func (*cashCmd) Usage() string {
	return `folio cash [<amount>]

  Without an argument, shows the active account's cash balance.
  With an amount, overrides the balance directly; the ledger is not
  consulted.
`
}

func (*cashCmd) SetFlags(f *flag.FlagSet) {}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, store, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Printf("Cash balance of %q: %s\n", p.Active().Name, renderer.NewMoney(p.Active().Cash))
		return subcommands.ExitSuccess
	}

	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	if err := p.SetCash(p.ActiveID(), amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Cash balance of %q is now %s\n", p.Active().Name, renderer.NewMoney(amount))
	return subcommands.ExitSuccess
}
