package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/operator"
)

func newUserTestAPI(t *testing.T, store *ledger.Store) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)

	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	NewUpdateUserHandler(delegator).Register(api)
	return api
}

func TestHTTP_UpdateUser(t *testing.T) {
	store := ledger.NewStore()
	api := newUserTestAPI(t, store)

	resp := api.Put("/v1/users/user-1", map[string]any{
		"name":  "Avery H.",
		"email": "avery.h@interactive.bank",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Profile
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "user-1", body.ID)
	assert.Equal(t, "Avery H.", body.Name)
	assert.Equal(t, "avery.h@interactive.bank", body.Email)

	users := store.ListUsers(context.Background())
	assert.Len(t, users, 1)
	assert.Equal(t, "avery", users[0].Username, "untouched fields survive the merge")
}

func TestHTTP_UpdateUser_PasswordNotEchoed(t *testing.T) {
	api := newUserTestAPI(t, ledger.NewStore())

	resp := api.Put("/v1/users/user-1", map[string]any{"password": "n3w-Secret!"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotContains(t, resp.Body.String(), "n3w-Secret!")
}

func TestHTTP_UpdateUser_NotFound(t *testing.T) {
	api := newUserTestAPI(t, ledger.NewStore())

	resp := api.Put("/v1/users/user-404", map[string]any{"name": "Ghost"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
