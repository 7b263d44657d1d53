package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
	"github.com/carson-networks/banking-server/internal/operator/actions"
)

// Profile is the password-free API view of a user.
type Profile struct {
	ID    string `json:"id" doc:"User ID"`
	Name  string `json:"name" doc:"Display name"`
	Email string `json:"email" doc:"Email address"`
}

// FromLedger converts a profile snapshot to the API model.
func FromLedger(profile ledger.UserProfile) Profile {
	return Profile{ID: profile.ID, Name: profile.Name, Email: profile.Email}
}

// UpdateUserBody is the request body for a partial user update. Absent
// fields are left alone.
type UpdateUserBody struct {
	Name     *string `json:"name,omitempty" doc:"Display name"`
	Username *string `json:"username,omitempty" doc:"Login username"`
	Email    *string `json:"email,omitempty" doc:"Email address"`
	Password *string `json:"password,omitempty" doc:"New password"`
}

// UpdateUserInput is the Huma input for updating a user.
type UpdateUserInput struct {
	ID   string `path:"id" doc:"User ID"`
	Body UpdateUserBody
}

// UpdateUserOutput is the Huma output for updating a user.
type UpdateUserOutput struct {
	Body Profile
}

// actionProcessor runs a ledger mutation through the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// UpdateUserHandler handles PUT /v1/users/{id}.
type UpdateUserHandler struct {
	Operator actionProcessor
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(op actionProcessor) *UpdateUserHandler {
	return &UpdateUserHandler{Operator: op}
}

// Register registers the update user endpoint with the Huma API.
func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPut,
		Path:        "/v1/users/{id}",
		Summary:     "Update user",
		Description: "Shallow-merges the supplied fields into the user record.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.UpdateUser{Update: ledger.UserUpdate{
		ID:       input.ID,
		Name:     input.Body.Name,
		Username: input.Body.Username,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	}}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(ledger.StatusOf(err), err.Error())
	}

	if logData != nil {
		logData.AddData("userID", action.Result.ID)
	}

	return &UpdateUserOutput{Body: FromLedger(*action.Result)}, nil
}
