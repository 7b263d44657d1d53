package operator

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/operator/actions"
)

func newTestStore(t *testing.T) *ledger.Store {
	t.Helper()
	store := ledger.NewEmptyStore()
	store.AddAccount(ledger.Account{
		ID:               "acc-1",
		Name:             "Everyday",
		Balance:          decimal.RequireFromString("1000"),
		AvailableBalance: decimal.RequireFromString("1000"),
		Currency:         "USD",
	})
	store.AddAccount(ledger.Account{
		ID:               "acc-2",
		Name:             "Rainy Day",
		Balance:          decimal.RequireFromString("0"),
		AvailableBalance: decimal.RequireFromString("0"),
		Currency:         "USD",
	})
	return store
}

func TestProcess_TransferAction(t *testing.T) {
	store := newTestStore(t)
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	action := &actions.Transfer{
		Input: ledger.TransferInput{
			FromAccountID: "acc-1",
			ToAccountID:   "acc-2",
			Amount:        decimal.RequireFromString("250"),
			Schedule:      ledger.ScheduleOnce,
		},
	}

	err := delegator.Process(context.Background(), action)
	assert.NoError(t, err)
	assert.NotNil(t, action.Result)
	assert.True(t, action.Result.FromAccount.Balance.Equal(decimal.RequireFromString("750")))
	assert.True(t, action.Result.ToAccount.Balance.Equal(decimal.RequireFromString("250")))
}

func TestProcess_ActionErrorPropagates(t *testing.T) {
	store := newTestStore(t)
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	action := &actions.Transfer{
		Input: ledger.TransferInput{
			FromAccountID: "acc-1",
			ToAccountID:   "acc-404",
			Amount:        decimal.RequireFromString("10"),
			Schedule:      ledger.ScheduleOnce,
		},
	}

	err := delegator.Process(context.Background(), action)
	assert.Error(t, err)
	assert.True(t, ledger.IsNotFound(err))
	assert.Nil(t, action.Result)
}

func TestProcess_ConcurrentTransfersStaySequential(t *testing.T) {
	store := newTestStore(t)
	delegator := NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	const transfers = 50
	var wg sync.WaitGroup
	for i := 0; i < transfers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := delegator.Process(context.Background(), &actions.Transfer{
				Input: ledger.TransferInput{
					FromAccountID: "acc-1",
					ToAccountID:   "acc-2",
					Amount:        decimal.RequireFromString("10"),
					Schedule:      ledger.ScheduleOnce,
				},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	account, err := store.GetAccount(context.Background(), "acc-2")
	assert.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("500")))
	assert.Len(t, store.ListTransfers(context.Background()), transfers)
	assert.Len(t, store.ListTransactions(context.Background(), ""), transfers*2)
}

func TestProcess_CancelledContext(t *testing.T) {
	store := newTestStore(t)
	delegator := NewOperatorDelegator(store, 1)
	// Not started: nothing drains the queue, so Process must unblock
	// through ctx.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, &actions.UpdateAccount{
		Update: ledger.AccountUpdate{ID: "acc-1"},
	})
	assert.ErrorIs(t, err, context.Canceled)
}
