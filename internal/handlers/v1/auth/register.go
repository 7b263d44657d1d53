package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	authsvc "github.com/carson-networks/banking-server/internal/auth"
	"github.com/carson-networks/banking-server/internal/handlers/v1/user"
	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
)

// RegisterBody is the request body for creating an account.
type RegisterBody struct {
	Name     string `json:"name" required:"true" doc:"Display name"`
	Username string `json:"username,omitempty" doc:"Login username"`
	Email    string `json:"email" required:"true" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// RegisterInput is the Huma input for registration.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for registration.
type RegisterOutput struct {
	Status int
	Body   user.Profile
}

// registrar creates user accounts.
type registrar interface {
	Register(ctx context.Context, payload authsvc.RegistrationPayload) (*ledger.UserProfile, error)
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	Auth registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(auth registrar) *RegisterHandler {
	return &RegisterHandler{Auth: auth}
}

// Register registers the registration endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/v1/auth/register",
		Summary:       "Register user",
		Description:   "Creates a user account. Duplicate emails or usernames are rejected.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	logData := logging.GetLogData(ctx)

	profile, err := h.Auth.Register(ctx, authsvc.RegistrationPayload{
		Name:     input.Body.Name,
		Username: input.Body.Username,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, huma.NewError(ledger.StatusOf(err), err.Error())
	}

	if logData != nil {
		logData.AddData("userID", profile.ID)
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body:   user.FromLedger(*profile),
	}, nil
}
