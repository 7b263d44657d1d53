package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/banking-server/internal/ledger"
)

func newSummaryTestAPI(t *testing.T, store *ledger.Store) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetSummaryHandler(store).Register(api)
	return api
}

func TestHTTP_GetDashboardSummary(t *testing.T) {
	store := ledger.NewStore()
	api := newSummaryTestAPI(t, store)

	resp := api.Get("/v1/dashboard-summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Summary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "117900.54", body.NetWorth)
	assert.NotEmpty(t, body.MonthlySpend)
	assert.Greater(t, body.SavingsRate, 0.0)
	assert.NotEmpty(t, body.UpcomingBills)
	assert.NotEmpty(t, body.Insights)
}

func TestHTTP_GetDashboardSummary_TracksBalanceChanges(t *testing.T) {
	store := ledger.NewEmptyStore()
	store.AddAccount(ledger.Account{
		ID:       "acc-1",
		Name:     "Everyday",
		Balance:  decimal.RequireFromString("100"),
		Currency: "USD",
	})
	store.AddAccount(ledger.Account{
		ID:       "acc-2",
		Name:     "Rainy Day",
		Balance:  decimal.RequireFromString("20"),
		Currency: "USD",
	})
	api := newSummaryTestAPI(t, store)

	_, err := store.ApplyTransfer(context.Background(), ledger.TransferInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.RequireFromString("150"),
		Schedule:      ledger.ScheduleOnce,
	})
	assert.NoError(t, err)

	resp := api.Get("/v1/dashboard-summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Summary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// The debit clamps at zero so the clamped difference is lost from
	// the total rather than conserved.
	assert.Equal(t, "170", body.NetWorth)
}
