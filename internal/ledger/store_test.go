package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTwoAccountStore(t *testing.T) *Store {
	t.Helper()
	store := NewEmptyStore()
	store.AddAccount(Account{
		ID:               "acc-1",
		Name:             "Everyday",
		Type:             AccountTypeChecking,
		Balance:          decimal.RequireFromString("100"),
		AvailableBalance: decimal.RequireFromString("100"),
		Currency:         "USD",
	})
	store.AddAccount(Account{
		ID:               "acc-2",
		Name:             "Rainy Day",
		Type:             AccountTypeSavings,
		Balance:          decimal.RequireFromString("50"),
		AvailableBalance: decimal.RequireFromString("50"),
		Currency:         "USD",
	})
	return store
}

func sumBalances(t *testing.T, store *Store) decimal.Decimal {
	t.Helper()
	total := decimal.Zero
	for _, account := range store.ListAccounts(context.Background()) {
		total = total.Add(account.Balance)
	}
	return total
}

// -- ApplyTransfer tests --

func TestApplyTransfer_MovesBalancesAndRecomputesNetWorth(t *testing.T) {
	store := newTwoAccountStore(t)

	result, err := store.ApplyTransfer(context.Background(), TransferInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.RequireFromString("30"),
		Schedule:      ScheduleOnce,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.FromAccount.Balance.Equal(decimal.RequireFromString("70")))
	assert.True(t, result.ToAccount.Balance.Equal(decimal.RequireFromString("80")))
	assert.Equal(t, ScheduleOnce, result.Schedule)
	assert.NotEmpty(t, result.TransferID)

	summary := store.DashboardSummary(context.Background())
	assert.True(t, summary.NetWorth.Equal(decimal.RequireFromString("150")))
	assert.True(t, summary.NetWorth.Equal(sumBalances(t, store)))

	transactions := store.ListTransactions(context.Background(), "")
	assert.Len(t, transactions, 2)
	for _, txn := range transactions {
		assert.True(t, txn.Amount.Equal(decimal.RequireFromString("30")))
		assert.Equal(t, "Transfers", txn.Category)
		assert.Equal(t, StatusPosted, txn.Status)
	}
	assert.Equal(t, DirectionDebit, transactions[0].Direction)
	assert.Equal(t, DirectionCredit, transactions[1].Direction)
	assert.Equal(t, transactions[0].Date, transactions[1].Date, "pair shares one timestamp")

	assert.Len(t, store.ListTransfers(context.Background()), 1)
}

func TestApplyTransfer_DebitFlooredAtZero(t *testing.T) {
	store := newTwoAccountStore(t)

	result, err := store.ApplyTransfer(context.Background(), TransferInput{
		FromAccountID: "acc-2",
		ToAccountID:   "acc-1",
		Amount:        decimal.RequireFromString("75"),
		Schedule:      ScheduleOnce,
	})

	assert.NoError(t, err)
	assert.True(t, result.FromAccount.Balance.IsZero(), "debit clamps at zero, never negative")
	assert.True(t, result.ToAccount.Balance.Equal(decimal.RequireFromString("175")))
}

func TestApplyTransfer_CounterPartyDescriptions(t *testing.T) {
	store := newTwoAccountStore(t)

	_, err := store.ApplyTransfer(context.Background(), TransferInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.RequireFromString("10"),
		Schedule:      ScheduleMonthly,
	})
	assert.NoError(t, err)

	debits := store.ListTransactions(context.Background(), "acc-1")
	credits := store.ListTransactions(context.Background(), "acc-2")
	assert.Equal(t, "Transfer to Rainy Day", debits[0].Description)
	assert.Equal(t, "Transfer from Everyday", credits[0].Description)
}

func TestApplyTransfer_MemoOverridesDescriptions(t *testing.T) {
	store := newTwoAccountStore(t)

	_, err := store.ApplyTransfer(context.Background(), TransferInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.RequireFromString("10"),
		Schedule:      ScheduleOnce,
		Memo:          "  rent share  ",
	})
	assert.NoError(t, err)

	transactions := store.ListTransactions(context.Background(), "")
	assert.Equal(t, "rent share", transactions[0].Description)
	assert.Equal(t, "rent share", transactions[1].Description)

	records := store.ListTransfers(context.Background())
	assert.Equal(t, "rent share", records[0].Memo)
}

func TestApplyTransfer_UnknownAccountLeavesStateUntouched(t *testing.T) {
	store := newTwoAccountStore(t)

	_, err := store.ApplyTransfer(context.Background(), TransferInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-404",
		Amount:        decimal.RequireFromString("30"),
		Schedule:      ScheduleOnce,
	})

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))

	accounts := store.ListAccounts(context.Background())
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("100")))
	assert.True(t, accounts[1].Balance.Equal(decimal.RequireFromString("50")))
	assert.Empty(t, store.ListTransactions(context.Background(), ""))
	assert.Empty(t, store.ListTransfers(context.Background()))
}

func TestApplyTransfer_NonPositiveAmountRejected(t *testing.T) {
	store := newTwoAccountStore(t)

	for _, amount := range []string{"0", "-5"} {
		_, err := store.ApplyTransfer(context.Background(), TransferInput{
			FromAccountID: "acc-1",
			ToAccountID:   "acc-2",
			Amount:        decimal.RequireFromString(amount),
			Schedule:      ScheduleOnce,
		})
		assert.Error(t, err)
		assert.Equal(t, 400, StatusOf(err))
	}

	assert.Empty(t, store.ListTransactions(context.Background(), ""))
	assert.True(t, sumBalances(t, store).Equal(decimal.RequireFromString("150")))
}

func TestApplyTransfer_MissingIDRejected(t *testing.T) {
	store := newTwoAccountStore(t)

	_, err := store.ApplyTransfer(context.Background(), TransferInput{
		ToAccountID: "acc-2",
		Amount:      decimal.RequireFromString("10"),
		Schedule:    ScheduleOnce,
	})
	assert.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestApplyTransfer_NotIdempotent(t *testing.T) {
	store := newTwoAccountStore(t)

	input := TransferInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.RequireFromString("10"),
		Schedule:      ScheduleOnce,
	}
	_, err := store.ApplyTransfer(context.Background(), input)
	assert.NoError(t, err)
	_, err = store.ApplyTransfer(context.Background(), input)
	assert.NoError(t, err)

	// Each call appends exactly two transactions and one record.
	assert.Len(t, store.ListTransactions(context.Background(), ""), 4)
	assert.Len(t, store.ListTransfers(context.Background()), 2)

	accounts := store.ListAccounts(context.Background())
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("80")))
}

// -- CreateTransaction tests --

func TestCreateTransaction_CreditRaisesBalance(t *testing.T) {
	store := newTwoAccountStore(t)

	txn, err := store.CreateTransaction(context.Background(), TransactionCreate{
		AccountID:   "acc-1",
		Description: "Refund",
		Category:    "Shopping",
		Amount:      decimal.RequireFromString("25"),
		Direction:   DirectionCredit,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, StatusPosted, txn.Status)
	assert.Equal(t, "USD", txn.Currency, "currency forced to the account's")
	assert.False(t, txn.Date.IsZero())

	account, err := store.GetAccount(context.Background(), "acc-1")
	assert.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("125")))
	assert.Equal(t, txn.Date, account.LastUpdated)

	summary := store.DashboardSummary(context.Background())
	assert.True(t, summary.NetWorth.Equal(decimal.RequireFromString("175")))
}

func TestCreateTransaction_DebitClampsAtZero(t *testing.T) {
	store := newTwoAccountStore(t)

	_, err := store.CreateTransaction(context.Background(), TransactionCreate{
		AccountID: "acc-2",
		Amount:    decimal.RequireFromString("80"),
		Direction: DirectionDebit,
	})

	assert.NoError(t, err)
	account, err := store.GetAccount(context.Background(), "acc-2")
	assert.NoError(t, err)
	assert.True(t, account.Balance.IsZero())
	assert.True(t, account.AvailableBalance.IsZero())
}

func TestCreateTransaction_ZeroAmountRejected(t *testing.T) {
	store := newTwoAccountStore(t)

	_, err := store.CreateTransaction(context.Background(), TransactionCreate{
		AccountID: "acc-1",
		Amount:    decimal.Zero,
		Direction: DirectionDebit,
	})
	assert.Error(t, err)
	assert.Equal(t, 400, StatusOf(err))
}

func TestCreateTransaction_UnknownAccount(t *testing.T) {
	store := newTwoAccountStore(t)

	_, err := store.CreateTransaction(context.Background(), TransactionCreate{
		AccountID: "acc-404",
		Amount:    decimal.RequireFromString("5"),
		Direction: DirectionDebit,
	})
	assert.True(t, IsNotFound(err))
}

func TestCreateTransaction_ExplicitFieldsPreserved(t *testing.T) {
	store := newTwoAccountStore(t)
	when := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	txn, err := store.CreateTransaction(context.Background(), TransactionCreate{
		ID:        "txn-custom",
		AccountID: "acc-1",
		Amount:    decimal.RequireFromString("5"),
		Direction: DirectionDebit,
		Date:      when,
		Status:    StatusPending,
	})

	assert.NoError(t, err)
	assert.Equal(t, "txn-custom", txn.ID)
	assert.Equal(t, when, txn.Date)
	assert.Equal(t, StatusPending, txn.Status)
}

// -- Update tests --

func TestUpdateAccount_ShallowMerge(t *testing.T) {
	store := newTwoAccountStore(t)

	name := "Renamed"
	updated, err := store.UpdateAccount(context.Background(), AccountUpdate{
		ID:   "acc-1",
		Name: &name,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("100")), "untouched fields survive")
	assert.False(t, updated.LastUpdated.IsZero())
}

func TestUpdateAccount_MissingAndUnknownID(t *testing.T) {
	store := newTwoAccountStore(t)

	_, err := store.UpdateAccount(context.Background(), AccountUpdate{})
	assert.Equal(t, 400, StatusOf(err))

	_, err = store.UpdateAccount(context.Background(), AccountUpdate{ID: "acc-404"})
	assert.True(t, IsNotFound(err))
}

func TestUpdateUser_ReturnsProfileWithoutPassword(t *testing.T) {
	store := NewStore()

	name := "Avery H."
	profile, err := store.UpdateUser(context.Background(), UserUpdate{
		ID:   "user-1",
		Name: &name,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Avery H.", profile.Name)
	assert.Equal(t, "avery@interactive.bank", profile.Email)
}

func TestUpdateUser_UnknownID(t *testing.T) {
	store := NewStore()

	_, err := store.UpdateUser(context.Background(), UserUpdate{ID: "user-404"})
	assert.True(t, IsNotFound(err))
}

// -- User registry tests --

func TestCreateUser_ConflictOnDuplicateEmail(t *testing.T) {
	store := NewStore()

	_, err := store.CreateUser(context.Background(), User{
		Name:     "Other Avery",
		Username: "avery2",
		Email:    "AVERY@interactive.bank",
		Password: "secret",
	})
	assert.Error(t, err)
	assert.Equal(t, 409, StatusOf(err))
}

func TestCreateUser_ConflictOnDuplicateUsername(t *testing.T) {
	store := NewStore()

	_, err := store.CreateUser(context.Background(), User{
		Name:     "Imposter",
		Username: "Avery",
		Email:    "someone@example.com",
		Password: "secret",
	})
	assert.Error(t, err)
	assert.Equal(t, 409, StatusOf(err))
}

func TestCreateUser_AssignsID(t *testing.T) {
	store := NewStore()

	user, err := store.CreateUser(context.Background(), User{
		Name:     "Fresh User",
		Username: "fresh-user",
		Email:    "fresh@example.com",
		Password: "secret",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Len(t, store.ListUsers(context.Background()), 2)
}

func TestUsernameTaken(t *testing.T) {
	store := NewStore()

	assert.True(t, store.UsernameTaken(context.Background(), "avery"))
	assert.True(t, store.UsernameTaken(context.Background(), "AVERY"), "case-insensitive")
	assert.False(t, store.UsernameTaken(context.Background(), "fresh-user"))
}

func TestSeedNetWorthMatchesBalanceSum(t *testing.T) {
	store := NewStore()
	summary := store.DashboardSummary(context.Background())
	assert.True(t, summary.NetWorth.Equal(sumBalances(t, store)))
}
