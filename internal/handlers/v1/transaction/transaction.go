package transaction

import (
	"time"

	"github.com/carson-networks/banking-server/internal/ledger"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction ID"`
	AccountID    string `json:"accountId" doc:"Owning account ID"`
	Description  string `json:"description" doc:"Human-readable description"`
	Category     string `json:"category" doc:"Spending category"`
	Amount       string `json:"amount" doc:"Decimal amount, always positive"`
	Currency     string `json:"currency" doc:"ISO 4217 currency code"`
	Direction    string `json:"direction" doc:"credit or debit"`
	Date         string `json:"date" doc:"RFC3339 transaction date"`
	Status       string `json:"status" doc:"posted or pending"`
	MerchantLogo string `json:"merchantLogo,omitempty" doc:"Merchant logo URL"`
}

// FromLedger converts a store snapshot to the API model.
func FromLedger(txn ledger.Transaction) Transaction {
	return Transaction{
		ID:           txn.ID,
		AccountID:    txn.AccountID,
		Description:  txn.Description,
		Category:     txn.Category,
		Amount:       txn.Amount.String(),
		Currency:     txn.Currency,
		Direction:    string(txn.Direction),
		Date:         txn.Date.Format(time.RFC3339),
		Status:       string(txn.Status),
		MerchantLogo: txn.MerchantLogo,
	}
}
