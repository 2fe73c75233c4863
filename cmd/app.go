// Package cmd implements the CLI application to manage a stock portfolio.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/ocolin/stockfolio"
	"github.com/ocolin/stockfolio/marketdata"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&accountCmd{}, "accounts")
	c.Register(&cashCmd{}, "accounts")

	c.Register(&positionsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&quoteCmd{}, "reports")
	c.Register(&watchCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&assistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio file (default ~/.stockfolio/portfolio.json)")
var mockData = flag.Bool("mock-data", false, "Use simulated market data instead of the live service")

// storePath resolves the portfolio file location.
func storePath() string {
	if *portfolioFile != "" {
		return *portfolioFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "portfolio.json"
	}
	return filepath.Join(home, ".stockfolio", "portfolio.json")
}

// openPortfolio loads the portfolio from the app store.
func openPortfolio() (*stockfolio.Portfolio, *stockfolio.Store, error) {
	s := stockfolio.NewStore(storePath())
	p, err := s.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("could not load portfolio: %w", err)
	}
	return p, s, nil
}

// gateway is created once per invocation; the mock latch is session-wide.
var sharedGateway *marketdata.Gateway

func gateway() *marketdata.Gateway {
	if sharedGateway == nil {
		if *mockData {
			sharedGateway = marketdata.NewGateway(nil, marketdata.NewMock())
		} else {
			sharedGateway = marketdata.NewGateway(marketdata.NewLive(), marketdata.NewMock())
		}
	}
	return sharedGateway
}

// findAccount resolves an account by id or by exact name.
func findAccount(p *stockfolio.Portfolio, key string) (stockfolio.Account, error) {
	if a, err := p.Account(key); err == nil {
		return a, nil
	}
	for _, a := range p.Accounts() {
		if strings.EqualFold(a.Name, key) {
			return a, nil
		}
	}
	return stockfolio.Account{}, fmt.Errorf("no account with id or name %q", key)
}

// confirm asks a yes/no question on the terminal and returns the answer.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// printMarkdown renders markdown nicely on the terminal, falling back to the
// raw text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
