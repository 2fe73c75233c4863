package stockfolio

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Cash balances are persisted as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Account is one brokerage account. Cash is a free-standing balance: buys and
// sells adjust it (see Portfolio), but it is also directly editable, so it is
// never derived from the ledger.
type Account struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Cash decimal.Decimal `json:"cash"`
}

// NewAccount creates an account with a fresh ID and zero cash.
func NewAccount(name string) Account {
	return Account{ID: uuid.NewString(), Name: name}
}
