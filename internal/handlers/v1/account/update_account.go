package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
	"github.com/carson-networks/banking-server/internal/operator/actions"
)

// UpdateAccountBody is the partial account update payload. Absent
// fields are left untouched.
type UpdateAccountBody struct {
	Name             *string `json:"name,omitempty" doc:"Display name"`
	Type             *string `json:"type,omitempty" doc:"Account type: checking, savings, investment, or credit"`
	Balance          *string `json:"balance,omitempty" doc:"Decimal balance"`
	AvailableBalance *string `json:"availableBalance,omitempty" doc:"Decimal available balance"`
	Currency         *string `json:"currency,omitempty" doc:"ISO 4217 currency code"`
	Icon             *string `json:"icon,omitempty" doc:"Display icon"`
	AccountNumber    *string `json:"accountNumber,omitempty" doc:"Masked account number"`
	LastUpdated      *string `json:"lastUpdated,omitempty" doc:"RFC3339 last update time, defaults to now"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account ID"`
	Body UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Body Account
}

// actionProcessor runs a ledger mutation through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// UpdateAccountHandler handles PUT /v1/accounts/{id}.
type UpdateAccountHandler struct {
	Operator actionProcessor
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(op actionProcessor) *UpdateAccountHandler {
	return &UpdateAccountHandler{Operator: op}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPut,
		Path:        "/v1/accounts/{id}",
		Summary:     "Update an account",
		Description: "Shallow-merges the supplied fields onto the account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseUpdateAccountInput(input *UpdateAccountInput) (ledger.AccountUpdate, error) {
	update := ledger.AccountUpdate{
		ID:            input.ID,
		Name:          input.Body.Name,
		Currency:      input.Body.Currency,
		Icon:          input.Body.Icon,
		AccountNumber: input.Body.AccountNumber,
	}

	if input.Body.Type != nil {
		accountType := ledger.AccountType(*input.Body.Type)
		update.Type = &accountType
	}
	if input.Body.Balance != nil {
		balance, err := decimal.NewFromString(*input.Body.Balance)
		if err != nil {
			return ledger.AccountUpdate{}, huma.NewError(http.StatusBadRequest, "invalid balance", err)
		}
		update.Balance = &balance
	}
	if input.Body.AvailableBalance != nil {
		available, err := decimal.NewFromString(*input.Body.AvailableBalance)
		if err != nil {
			return ledger.AccountUpdate{}, huma.NewError(http.StatusBadRequest, "invalid availableBalance", err)
		}
		update.AvailableBalance = &available
	}
	if input.Body.LastUpdated != nil {
		lastUpdated, err := time.Parse(time.RFC3339, *input.Body.LastUpdated)
		if err != nil {
			return ledger.AccountUpdate{}, huma.NewError(http.StatusBadRequest, "invalid lastUpdated", err)
		}
		update.LastUpdated = &lastUpdated
	}

	return update, nil
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	update, err := parseUpdateAccountInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateAccount{Update: update}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(ledger.StatusOf(err), err.Error())
	}

	if logData != nil {
		logData.AddData("accountID", action.Result.ID)
	}

	return &UpdateAccountOutput{Body: FromLedger(*action.Result)}, nil
}
