package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/ocolin/stockfolio"
)

// sparkWidth is the width, in characters, of the inline value bars.
const sparkWidth = 20

// HistoryMarkdown renders the trailing portfolio value series as a table with
// an inline bar per day. An empty series means "no data", not "zero value",
// and is rendered as such.
func HistoryMarkdown(accountName string, series []stockfolio.ValuePoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Value for %s over %d days", accountName, len(series)))
	if len(series) == 0 {
		doc.PlainText("No historical data: record a transaction and refresh prices first.")
		return doc.String()
	}

	max := series[0].Value
	for _, pt := range series {
		if pt.Value > max {
			max = pt.Value
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
		Header:    []string{"Date", "Value", ""},
		Rows:      [][]string{},
	}
	for _, pt := range series {
		table.Rows = append(table.Rows, []string{
			pt.Date.String(),
			NewMoneyFromFloat(pt.Value).String(),
			bar(pt.Value, max),
		})
	}
	doc.Table(table)
	return doc.String()
}

// bar scales a value against the series maximum into a fixed-width bar.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(value / max * sparkWidth)
	return strings.Repeat("█", n)
}
