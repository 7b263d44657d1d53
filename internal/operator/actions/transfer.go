package actions

import (
	"context"

	"github.com/carson-networks/banking-server/internal/ledger"
)

// Transfer debits the source account and credits the destination,
// logging the paired transactions and a transfer record.
type Transfer struct {
	Input  ledger.TransferInput
	Result *ledger.TransferResult

	IAction
}

func (t *Transfer) Perform(ctx context.Context, store *ledger.Store) error {
	result, err := store.ApplyTransfer(ctx, t.Input)
	if err != nil {
		return err
	}

	t.Result = result
	return nil
}
