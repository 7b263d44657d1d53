package transaction

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

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	AccountID    string `json:"accountId" required:"true" doc:"Owning account ID"`
	Amount       string `json:"amount" required:"true" doc:"Decimal amount, nonzero"`
	Direction    string `json:"direction" required:"true" enum:"credit,debit" doc:"credit or debit"`
	Description  string `json:"description,omitempty" doc:"Human-readable description"`
	Category     string `json:"category,omitempty" doc:"Spending category"`
	Date         string `json:"date,omitempty" doc:"RFC3339 transaction date, defaults to now"`
	Status       string `json:"status,omitempty" doc:"posted or pending, defaults to posted"`
	MerchantLogo string `json:"merchantLogo,omitempty" doc:"Merchant logo URL"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// actionProcessor runs a ledger mutation through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Appends a transaction and adjusts the owning account's balances.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (ledger.TransactionCreate, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return ledger.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	create := ledger.TransactionCreate{
		AccountID:    input.Body.AccountID,
		Description:  input.Body.Description,
		Category:     input.Body.Category,
		Amount:       amount,
		Direction:    ledger.Direction(input.Body.Direction),
		Status:       ledger.TransactionStatus(input.Body.Status),
		MerchantLogo: input.Body.MerchantLogo,
	}

	if input.Body.Date != "" {
		date, err := time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return ledger.TransactionCreate{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		create.Date = date
	}

	return create, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Create: create}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(ledger.StatusOf(err), err.Error())
	}

	if logData != nil {
		logData.AddData("transactionID", action.Result.ID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   FromLedger(*action.Result),
	}, nil
}
