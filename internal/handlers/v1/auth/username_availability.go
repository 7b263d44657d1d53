package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
)

// UsernameAvailabilityInput is the Huma input for the availability check.
type UsernameAvailabilityInput struct {
	Username string `query:"username" required:"true" doc:"Candidate username"`
}

// UsernameAvailabilityBody is the response body for the availability
// check.
type UsernameAvailabilityBody struct {
	Available bool `json:"available" doc:"Whether the username is unused"`
}

// UsernameAvailabilityOutput is the Huma output for the availability
// check.
type UsernameAvailabilityOutput struct {
	Body UsernameAvailabilityBody
}

// usernameChecker reports whether a username is unused.
type usernameChecker interface {
	CheckUsernameAvailability(ctx context.Context, username string) (bool, error)
}

// UsernameAvailabilityHandler handles GET /v1/auth/username-availability.
type UsernameAvailabilityHandler struct {
	Auth usernameChecker
}

// NewUsernameAvailabilityHandler creates a new UsernameAvailabilityHandler.
func NewUsernameAvailabilityHandler(auth usernameChecker) *UsernameAvailabilityHandler {
	return &UsernameAvailabilityHandler{Auth: auth}
}

// Register registers the availability endpoint with the Huma API.
func (h *UsernameAvailabilityHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "check-username-availability",
		Method:      http.MethodGet,
		Path:        "/v1/auth/username-availability",
		Summary:     "Check username availability",
		Description: "Reports whether a username is free to register.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *UsernameAvailabilityHandler) handle(ctx context.Context, input *UsernameAvailabilityInput) (*UsernameAvailabilityOutput, error) {
	logData := logging.GetLogData(ctx)

	available, err := h.Auth.CheckUsernameAvailability(ctx, input.Username)
	if err != nil {
		return nil, huma.NewError(ledger.StatusOf(err), err.Error())
	}

	if logData != nil {
		logData.AddData("available", available)
	}

	return &UsernameAvailabilityOutput{Body: UsernameAvailabilityBody{Available: available}}, nil
}
