package actions

import (
	"context"

	"github.com/carson-networks/banking-server/internal/ledger"
)

// UpdateAccount shallow-merges a partial account update.
type UpdateAccount struct {
	Update ledger.AccountUpdate
	Result *ledger.Account

	IAction
}

func (u *UpdateAccount) Perform(ctx context.Context, store *ledger.Store) error {
	result, err := store.UpdateAccount(ctx, u.Update)
	if err != nil {
		return err
	}

	u.Result = result
	return nil
}
