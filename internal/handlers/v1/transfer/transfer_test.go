package transfer

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/operator"
)

func newFixtureStore(t *testing.T) *ledger.Store {
	t.Helper()
	store := ledger.NewEmptyStore()
	store.AddAccount(ledger.Account{
		ID:               "acc-1",
		Name:             "Everyday",
		Type:             ledger.AccountTypeChecking,
		Balance:          decimal.RequireFromString("100"),
		AvailableBalance: decimal.RequireFromString("100"),
		Currency:         "USD",
	})
	store.AddAccount(ledger.Account{
		ID:               "acc-2",
		Name:             "Rainy Day",
		Type:             ledger.AccountTypeSavings,
		Balance:          decimal.RequireFromString("50"),
		AvailableBalance: decimal.RequireFromString("50"),
		Currency:         "USD",
	})
	return store
}

func newTransferTestAPI(t *testing.T, store *ledger.Store) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)

	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	NewCreateTransferHandler(delegator).Register(api)
	return api
}

func TestHTTP_CreateTransfer(t *testing.T) {
	store := newFixtureStore(t)
	api := newTransferTestAPI(t, store)

	resp := api.Post("/v1/transfers", map[string]any{
		"fromAccountId": "acc-1",
		"toAccountId":   "acc-2",
		"amount":        "30",
		"memo":          "  rent share  ",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransferBodyOut
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.TransferID)
	assert.NotEmpty(t, body.CreatedAt)
	assert.Equal(t, "once", body.Schedule)
	assert.Equal(t, "30", body.Amount)
	assert.Equal(t, "70", body.FromAccount.Balance)
	assert.Equal(t, "80", body.ToAccount.Balance)

	transactions := store.ListTransactions(context.Background(), "")
	assert.Len(t, transactions, 2)
	assert.Equal(t, "rent share", transactions[0].Description)
}

func TestHTTP_CreateTransfer_UnknownAccount(t *testing.T) {
	api := newTransferTestAPI(t, newFixtureStore(t))

	resp := api.Post("/v1/transfers", map[string]any{
		"fromAccountId": "acc-1",
		"toAccountId":   "acc-404",
		"amount":        "30",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransfer_NonPositiveAmount(t *testing.T) {
	api := newTransferTestAPI(t, newFixtureStore(t))

	for _, amount := range []string{"0", "-5"} {
		resp := api.Post("/v1/transfers", map[string]any{
			"fromAccountId": "acc-1",
			"toAccountId":   "acc-2",
			"amount":        amount,
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	}
}

func TestHTTP_CreateTransfer_InvalidSchedule(t *testing.T) {
	api := newTransferTestAPI(t, newFixtureStore(t))

	resp := api.Post("/v1/transfers", map[string]any{
		"fromAccountId": "acc-1",
		"toAccountId":   "acc-2",
		"amount":        "30",
		"schedule":      "fortnightly",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
