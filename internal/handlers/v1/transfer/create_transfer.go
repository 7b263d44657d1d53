package transfer

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-server/internal/handlers/v1/account"
	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
	"github.com/carson-networks/banking-server/internal/operator/actions"
)

// CreateTransferBody is the request body for moving money between accounts.
type CreateTransferBody struct {
	FromAccountID string `json:"fromAccountId" required:"true" doc:"Source account ID"`
	ToAccountID   string `json:"toAccountId" required:"true" doc:"Destination account ID"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount, must be positive"`
	Schedule      string `json:"schedule,omitempty" doc:"once, weekly or monthly, defaults to once"`
	Memo          string `json:"memo,omitempty" doc:"Optional description for both ledger entries"`
}

// CreateTransferInput is the Huma input for creating a transfer.
type CreateTransferInput struct {
	Body CreateTransferBody
}

// CreateTransferBodyOut is the response body for a completed transfer.
type CreateTransferBodyOut struct {
	TransferID  string          `json:"transferId" doc:"Transfer record ID"`
	CreatedAt   string          `json:"createdAt" doc:"RFC3339 creation time, shared by both ledger entries"`
	Schedule    string          `json:"schedule" doc:"once, weekly or monthly"`
	Amount      string          `json:"amount" doc:"Decimal amount moved"`
	FromAccount account.Account `json:"fromAccount" doc:"Source account after the debit"`
	ToAccount   account.Account `json:"toAccount" doc:"Destination account after the credit"`
}

// CreateTransferOutput is the Huma output for creating a transfer.
type CreateTransferOutput struct {
	Status int
	Body   CreateTransferBodyOut
}

// actionProcessor runs a ledger mutation through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateTransferHandler handles POST /v1/transfers.
type CreateTransferHandler struct {
	Operator actionProcessor
}

// NewCreateTransferHandler creates a new CreateTransferHandler.
func NewCreateTransferHandler(op actionProcessor) *CreateTransferHandler {
	return &CreateTransferHandler{Operator: op}
}

// Register registers the create transfer endpoint with the Huma API.
func (h *CreateTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transfer",
		Method:        http.MethodPost,
		Path:          "/v1/transfers",
		Summary:       "Create transfer",
		Description:   "Debits the source account, credits the destination and records paired transactions.",
		Tags:          []string{"Transfers"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransferInput(input *CreateTransferInput) (ledger.TransferInput, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return ledger.TransferInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	schedule := ledger.TransferSchedule(input.Body.Schedule)
	if schedule == "" {
		schedule = ledger.ScheduleOnce
	}

	return ledger.TransferInput{
		FromAccountID: input.Body.FromAccountID,
		ToAccountID:   input.Body.ToAccountID,
		Amount:        amount,
		Schedule:      schedule,
		Memo:          input.Body.Memo,
	}, nil
}

func (h *CreateTransferHandler) handle(ctx context.Context, input *CreateTransferInput) (*CreateTransferOutput, error) {
	logData := logging.GetLogData(ctx)

	transferInput, err := parseCreateTransferInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.Transfer{Input: transferInput}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransferMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(ledger.StatusOf(err), err.Error())
	}

	result := action.Result
	if logData != nil {
		logData.AddData("transferID", result.TransferID)
	}

	return &CreateTransferOutput{
		Status: http.StatusCreated,
		Body: CreateTransferBodyOut{
			TransferID:  result.TransferID,
			CreatedAt:   result.CreatedAt.Format(time.RFC3339),
			Schedule:    string(result.Schedule),
			Amount:      result.Amount.String(),
			FromAccount: account.FromLedger(result.FromAccount),
			ToAccount:   account.FromLedger(result.ToAccount),
		},
	}, nil
}
