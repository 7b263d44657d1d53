package actions

import (
	"context"

	"github.com/carson-networks/banking-server/internal/ledger"
)

// UpdateUser shallow-merges a partial user update.
type UpdateUser struct {
	Update ledger.UserUpdate
	Result *ledger.UserProfile

	IAction
}

func (u *UpdateUser) Perform(ctx context.Context, store *ledger.Store) error {
	result, err := store.UpdateUser(ctx, u.Update)
	if err != nil {
		return err
	}

	u.Result = result
	return nil
}
