package cmd

import (
	"testing"

	"github.com/ocolin/stockfolio"
)

func TestFindAccount(t *testing.T) {
	p := stockfolio.NewPortfolio("Main Account")
	retirement := p.AddAccount("Retirement")

	byID, err := findAccount(p, retirement.ID)
	if err != nil || byID.Name != "Retirement" {
		t.Errorf("findAccount(by id) = %+v, %v", byID, err)
	}
	byName, err := findAccount(p, "retirement")
	if err != nil || byName.ID != retirement.ID {
		t.Errorf("findAccount(by case-insensitive name) = %+v, %v", byName, err)
	}
	if _, err := findAccount(p, "nope"); err == nil {
		t.Error("findAccount(nope) did not fail")
	}
}

func TestStorePathFlagOverride(t *testing.T) {
	old := *portfolioFile
	defer func() { *portfolioFile = old }()

	*portfolioFile = "/tmp/elsewhere.json"
	if got := storePath(); got != "/tmp/elsewhere.json" {
		t.Errorf("storePath() = %q, want the flag value", got)
	}

	*portfolioFile = ""
	if got := storePath(); got == "" {
		t.Error("storePath() fell back to empty")
	}
}
