package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	AccountID string `query:"accountId" doc:"Restrict to one account's history"`
}

// ListTransactionsOutput is the Huma output for listing transactions,
// newest first. The paired transactions of a transfer share one
// timestamp; their relative order under a timestamp sort is a tie.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, accountID string) []ledger.Transaction
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	Transactions transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(transactions transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Transactions: transactions}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns transaction history newest first, optionally filtered by account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	transactions := h.Transactions.ListTransactions(ctx, input.AccountID)

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	body := make([]Transaction, len(transactions))
	for i, txn := range transactions {
		body[i] = FromLedger(txn)
	}

	return &ListTransactionsOutput{Body: body}, nil
}
