package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/banking-server/internal/handlers/v1/user"
	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginBodyOut is the response body for a successful login.
type LoginBodyOut struct {
	Token string       `json:"token" doc:"Opaque session token"`
	User  user.Profile `json:"user" doc:"Authenticated user"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body LoginBodyOut
}

// credentialChecker matches credentials against the user registry.
type credentialChecker interface {
	Login(ctx context.Context, email, password string) (*ledger.UserProfile, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	Auth credentialChecker
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(auth credentialChecker) *LoginHandler {
	return &LoginHandler{Auth: auth}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Matches credentials by email and returns a session token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)

	profile, err := h.Auth.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, huma.NewError(ledger.StatusOf(err), err.Error())
	}

	if logData != nil {
		logData.AddData("userID", profile.ID)
	}

	// Sessions are not persisted; the token only needs to be unique.
	token, err := uuid.NewV4()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "token generation failed", err)
	}

	return &LoginOutput{Body: LoginBodyOut{
		Token: token.String(),
		User:  user.FromLedger(*profile),
	}}, nil
}
