package agent

import (
	"strings"
	"testing"

	"github.com/ocolin/stockfolio"
	"github.com/shopspring/decimal"
)

func TestNewAssistant_SnapshotInSystemInstruction(t *testing.T) {
	positions := []stockfolio.Position{
		{Ticker: "AAPL", CompanyName: "Apple Inc.", Shares: 10, AverageCost: 150, CurrentPrice: 172.50},
	}
	summary := stockfolio.NewSummary(positions, decimal.NewFromFloat(2500.10))

	a, err := NewAssistant(positions, summary)
	if err != nil {
		t.Fatal(err)
	}

	text := a.Config.SystemInstruction.Parts[0].Text
	for _, want := range []string{
		"portfolio assistant",
		"Do not provide financial advice",
		`"ticker": "AAPL"`,
		`"totalMarketValue": 1725`,
		`"tradingCash": 2500.1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("system instruction missing %q", want)
		}
	}
	if a.ModelName != "gemini-2.5-flash" {
		t.Errorf("ModelName = %q", a.ModelName)
	}
}

func TestNewAssistant_EmptyPortfolio(t *testing.T) {
	a, err := NewAssistant(nil, stockfolio.NewSummary(nil, decimal.Zero))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(a.Config.SystemInstruction.Parts[0].Text, `"positions": null`) {
		t.Error("empty snapshot not embedded")
	}
}
