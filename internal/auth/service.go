package auth

import (
	"context"
	"strings"

	"github.com/carson-networks/banking-server/internal/ledger"
)

// RegistrationPayload carries the normalized fields of a registration
// request.
type RegistrationPayload struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Service implements registration, login, and the username availability
// check over the ledger's user registry.
type Service struct {
	store *ledger.Store
}

func NewService(store *ledger.Store) *Service {
	return &Service{store: store}
}

// Register creates a new user. Duplicate emails or usernames fail with
// a Conflict error.
func (s *Service) Register(ctx context.Context, payload RegistrationPayload) (*ledger.UserProfile, error) {
	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		return nil, ledger.InvalidPayload("Invalid registration payload.")
	}

	user, err := s.store.CreateUser(ctx, ledger.User{
		Name:     payload.Name,
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// CheckUsernameAvailability reports whether the candidate is unused. A
// blank candidate is available by definition; validators reject it
// before the check runs.
func (s *Service) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	candidate := strings.TrimSpace(username)
	if candidate == "" {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return !s.store.UsernameTaken(ctx, candidate), nil
}

// Login matches credentials against the user registry by email,
// case-insensitively.
func (s *Service) Login(ctx context.Context, email, password string) (*ledger.UserProfile, error) {
	for _, user := range s.store.ListUsers(ctx) {
		if strings.EqualFold(user.Email, email) {
			if user.Password != password {
				break
			}
			profile := user.Profile()
			return &profile, nil
		}
	}
	return nil, ledger.Unauthorized("Invalid email or password.")
}
