package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/banking-server/internal/ledger"
)

func TestRegister_Success(t *testing.T) {
	svc := NewService(ledger.NewStore())

	profile, err := svc.Register(context.Background(), RegistrationPayload{
		Name:     "Fresh User",
		Username: "fresh-user",
		Email:    "fresh@example.com",
		Password: "Abc123!x",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Fresh User", profile.Name)
	assert.Equal(t, "fresh@example.com", profile.Email)
	assert.NotEmpty(t, profile.ID)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	svc := NewService(ledger.NewStore())

	_, err := svc.Register(context.Background(), RegistrationPayload{
		Name:     "Other Avery",
		Username: "avery2",
		Email:    "avery@interactive.bank",
		Password: "Abc123!x",
	})

	assert.Error(t, err)
	assert.Equal(t, 409, ledger.StatusOf(err))
}

func TestRegister_MissingFieldsRejected(t *testing.T) {
	svc := NewService(ledger.NewStore())

	_, err := svc.Register(context.Background(), RegistrationPayload{
		Username: "fresh-user",
	})

	assert.Error(t, err)
	assert.Equal(t, 400, ledger.StatusOf(err))
}

func TestCheckUsernameAvailability(t *testing.T) {
	svc := NewService(ledger.NewStore())

	available, err := svc.CheckUsernameAvailability(context.Background(), "avery")
	assert.NoError(t, err)
	assert.False(t, available, "seed user holds this name")

	available, err = svc.CheckUsernameAvailability(context.Background(), "fresh-user")
	assert.NoError(t, err)
	assert.True(t, available)
}

func TestCheckUsernameAvailability_CancelledContext(t *testing.T) {
	svc := NewService(ledger.NewStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CheckUsernameAvailability(ctx, "fresh-user")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogin(t *testing.T) {
	svc := NewService(ledger.NewStore())

	profile, err := svc.Login(context.Background(), "AVERY@interactive.bank", "banking123")
	assert.NoError(t, err)
	assert.Equal(t, "Avery Hughes", profile.Name)

	_, err = svc.Login(context.Background(), "avery@interactive.bank", "wrong")
	assert.Error(t, err)
	assert.Equal(t, 401, ledger.StatusOf(err))

	_, err = svc.Login(context.Background(), "nobody@example.com", "banking123")
	assert.Error(t, err)
	assert.Equal(t, 401, ledger.StatusOf(err))
}
