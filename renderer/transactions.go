package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/ocolin/stockfolio"
)

// TransactionsMarkdown renders a ledger as a markdown table, oldest first.
func TransactionsMarkdown(accountName string, txs []stockfolio.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions for %s", accountName))
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Type", "Ticker", "Shares", "Price", "Amount", "Notes", "ID"},
		Rows:   [][]string{},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			string(tx.Type),
			tx.Ticker,
			Quantity(tx.Shares).String(),
			NewMoneyFromFloat(tx.Price).String(),
			NewMoneyFromFloat(tx.Amount()).String(),
			tx.Notes,
			tx.ID,
		})
	}
	doc.Table(table)
	return doc.String()
}
