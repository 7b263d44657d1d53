package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct{}

// ListAccountsOutput is the Huma output for listing accounts. The body
// is the bare array of accounts.
type ListAccountsOutput struct {
	Body []Account
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context) []ledger.Account
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	Accounts accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(accounts accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{Accounts: accounts}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns every account in the session ledger.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	accounts := h.Accounts.ListAccounts(ctx)

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	body := make([]Account, len(accounts))
	for i, acc := range accounts {
		body[i] = FromLedger(acc)
	}

	return &ListAccountsOutput{Body: body}, nil
}
