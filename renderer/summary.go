package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ocolin/stockfolio"
)

// SummaryMarkdown renders the account summary metrics.
func SummaryMarkdown(accountName string, s stockfolio.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s", accountName))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Market Value", NewMoneyFromFloat(s.TotalMarketValue).String()},
			{"Total Cost Basis", NewMoneyFromFloat(s.TotalCostBasis).String()},
			{"Total Gain/Loss", NewMoneyFromFloat(s.TotalGainLoss).SignedString()},
			{"Total Gain/Loss %", Percent(s.TotalGainLossPercent).SignedString()},
			{"Trading Cash", NewMoney(s.TradingCash).String()},
		},
	})
	return doc.String()
}

// AccountsMarkdown renders the account registry, marking the active one.
func AccountsMarkdown(accounts []stockfolio.Account, activeID string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"", "Name", "Cash", "ID"},
		Rows:      [][]string{},
	}
	for _, a := range accounts {
		active := ""
		if a.ID == activeID {
			active = "*"
		}
		table.Rows = append(table.Rows, []string{active, a.Name, NewMoney(a.Cash).String(), a.ID})
	}
	doc.Table(table)
	return doc.String()
}
