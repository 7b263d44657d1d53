package actions

import (
	"context"

	"github.com/carson-networks/banking-server/internal/ledger"
)

// CreateTransaction appends a transaction and moves the owning
// account's balances.
type CreateTransaction struct {
	Create ledger.TransactionCreate
	Result *ledger.Transaction

	IAction
}

func (c *CreateTransaction) Perform(ctx context.Context, store *ledger.Store) error {
	result, err := store.CreateTransaction(ctx, c.Create)
	if err != nil {
		return err
	}

	c.Result = result
	return nil
}
