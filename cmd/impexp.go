package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/ocolin/stockfolio"
)

type exportCmd struct {
	csv     bool
	all     bool
	account bool
	output  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the portfolio as JSON or CSV" }
func (*exportCmd) Usage() string {
	return `folio export [-csv [-all] | -account] [-o <file>]

  Without flags, writes the full portfolio backup as JSON.
  -account writes only the active account (name, cash, transactions).
  -csv writes the active account's transactions as CSV; with -all, every
  account's transactions with account columns.
  Output goes to stdout unless -o is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.csv, "csv", false, "Export CSV instead of JSON.")
	f.BoolVar(&c.all, "all", false, "With -csv, export every account.")
	f.BoolVar(&c.account, "account", false, "Export only the active account as JSON.")
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, _, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	switch {
	case c.csv && c.all:
		err = stockfolio.ExportAllCSV(&buf, p)
	case c.csv:
		err = stockfolio.ExportCSV(&buf, p, p.ActiveID())
	case c.account:
		err = stockfolio.ExportAccountJSON(&buf, p, p.ActiveID())
	default:
		err = stockfolio.ExportJSON(&buf, p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		os.Stdout.Write(buf.Bytes())
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported to %s\n", c.output)
	return subcommands.ExitSuccess
}

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a backup, replacing existing data" }
func (*importCmd) Usage() string {
	return `folio import [-y] <file>

  Imports a JSON or CSV backup. The file's shape decides the scope: a full
  portfolio backup replaces everything, a single-account backup replaces the
  active account, a transaction array (or CSV) replaces the active account's
  transactions. The replacement is described and confirmed before anything
  changes; -y skips the prompt.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one backup file is required.")
		return subcommands.ExitUsageError
	}
	file := f.Arg(0)

	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	var im *stockfolio.Import
	if strings.HasSuffix(strings.ToLower(file), ".csv") {
		im, err = stockfolio.ParseCSV(bytes.NewReader(data))
	} else {
		im, err = stockfolio.ParseImport(data)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p, store, err := openPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("This will %s. Continue?", im.Describe())) {
		fmt.Println("Aborted, nothing changed.")
		return subcommands.ExitSuccess
	}

	p = im.Apply(p)
	if err := store.Save(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %s.\n", file)
	return subcommands.ExitSuccess
}
