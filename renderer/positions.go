package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ocolin/stockfolio"
)

// PositionsMarkdown renders the position set of one account to a markdown
// table. Degraded mode (mock quotes) is called out above the table so the
// numbers are not mistaken for live ones.
func PositionsMarkdown(accountName string, positions []stockfolio.Position, degraded bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Positions for %s", accountName))
	if degraded {
		doc.PlainText("> Live market data unavailable, prices below are simulated.")
	}
	if len(positions) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Company", "Shares", "Avg Cost", "Price", "Market Value", "Gain/Loss", "Gain %"},
		Rows:   [][]string{},
	}
	for _, p := range positions {
		table.Rows = append(table.Rows, []string{
			p.Ticker,
			p.CompanyName,
			Quantity(p.Shares).String(),
			NewMoneyFromFloat(p.AverageCost).String(),
			NewMoneyFromFloat(p.CurrentPrice).String(),
			NewMoneyFromFloat(p.MarketValue()).String(),
			NewMoneyFromFloat(p.GainLoss()).SignedString(),
			Percent(p.GainLossPercent()).SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// QuoteMarkdown renders one quote in detail, as shown after a ticker lookup.
func QuoteMarkdown(q stockfolio.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", q.Ticker, q.CompanyName))
	if q.IsMock {
		doc.PlainText("> Simulated quote, live market data unavailable.")
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Field", "Value"},
		Rows: [][]string{
			{"Price", NewMoneyFromFloat(q.Price).String()},
			{"Previous Close", NewMoneyFromFloat(q.PreviousClose).String()},
			{"Day High", NewMoneyFromFloat(q.DayHigh).String()},
			{"Day Low", NewMoneyFromFloat(q.DayLow).String()},
			{"Volume", fmt.Sprintf("%.0f", q.Volume)},
		},
	})
	return doc.String()
}
