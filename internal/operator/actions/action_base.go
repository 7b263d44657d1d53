package actions

import (
	"context"

	"github.com/carson-networks/banking-server/internal/ledger"
)

// IAction is a single ledger mutation. Perform runs with exclusive use
// of the store for the duration of the call and records its result on
// the action itself.
type IAction interface {
	Perform(ctx context.Context, store *ledger.Store) error
}
