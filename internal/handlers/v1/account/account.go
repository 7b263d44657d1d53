package account

import (
	"time"

	"github.com/carson-networks/banking-server/internal/ledger"
)

// Account is the API response model for an account.
type Account struct {
	ID               string `json:"id" doc:"Account ID"`
	Name             string `json:"name" doc:"Display name"`
	Type             string `json:"type" doc:"Account type: checking, savings, investment, or credit"`
	Balance          string `json:"balance" doc:"Decimal balance"`
	AvailableBalance string `json:"availableBalance" doc:"Decimal available balance"`
	Currency         string `json:"currency" doc:"ISO 4217 currency code"`
	Icon             string `json:"icon,omitempty" doc:"Display icon"`
	AccountNumber    string `json:"accountNumber" doc:"Masked account number"`
	LastUpdated      string `json:"lastUpdated" doc:"RFC3339 last update time"`
}

// FromLedger converts a store snapshot to the API model.
func FromLedger(account ledger.Account) Account {
	return Account{
		ID:               account.ID,
		Name:             account.Name,
		Type:             string(account.Type),
		Balance:          account.Balance.String(),
		AvailableBalance: account.AvailableBalance.String(),
		Currency:         account.Currency,
		Icon:             account.Icon,
		AccountNumber:    account.AccountNumber,
		LastUpdated:      account.LastUpdated.Format(time.RFC3339),
	}
}
