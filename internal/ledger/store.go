package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Store is the in-memory session ledger. It owns all account,
// transaction, transfer, and user state for the lifetime of the process
// and keeps the dashboard net worth in sync with account balances.
//
// Every operation is a single read-modify-write under the mutex; there
// is no pending/committed distinction. Transfers are not idempotent:
// retries append fresh transactions and transfer records.
type Store struct {
	mu           sync.Mutex
	accounts     []*Account
	transactions []*Transaction
	transfers    []*TransferRecord
	users        []*User
	summary      DashboardSummary

	now   func() time.Time
	newID func() string
}

// NewStore creates a store populated with the seed dataset.
func NewStore() *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return uuid.Must(uuid.NewV4()).String() },
	}
	s.accounts, s.transactions, s.users, s.summary = seedData(s.now())
	s.recomputeNetWorth()
	return s
}

// NewEmptyStore creates a store with no seed data. Used by tests that
// build their own fixtures.
func NewEmptyStore() *Store {
	s := &Store{
		now:   time.Now,
		newID: func() string { return uuid.Must(uuid.NewV4()).String() },
	}
	return s
}

// SetClock overrides the store's time source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddAccount inserts an account record. Intended for fixtures.
func (s *Store) AddAccount(account Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := account
	s.accounts = append(s.accounts, &clone)
	s.recomputeNetWorth()
}

// ListAccounts returns snapshots of every account.
func (s *Store) ListAccounts(ctx context.Context) []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]Account, len(s.accounts))
	for i, account := range s.accounts {
		result[i] = *account
	}
	return result
}

// GetAccount returns a snapshot of one account.
func (s *Store) GetAccount(ctx context.Context, id string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account := s.findAccount(id)
	if account == nil {
		return nil, NotFound("Account not found.")
	}
	snapshot := *account
	return &snapshot, nil
}

// ListTransactions returns transaction snapshots newest-first. An empty
// accountID returns every transaction.
func (s *Store) ListTransactions(ctx context.Context, accountID string) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]Transaction, 0, len(s.transactions))
	for _, txn := range s.transactions {
		if accountID != "" && txn.AccountID != accountID {
			continue
		}
		result = append(result, *txn)
	}
	return result
}

// ListTransfers returns transfer record snapshots newest-first.
func (s *Store) ListTransfers(ctx context.Context) []TransferRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]TransferRecord, len(s.transfers))
	for i, record := range s.transfers {
		result[i] = *record
	}
	return result
}

// DashboardSummary returns a snapshot of the dashboard aggregate.
func (s *Store) DashboardSummary(ctx context.Context) DashboardSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary := s.summary
	summary.UpcomingBills = append([]Bill(nil), s.summary.UpcomingBills...)
	summary.Insights = append([]Insight(nil), s.summary.Insights...)
	return summary
}

// ListUsers returns snapshots of every user record.
func (s *Store) ListUsers(ctx context.Context) []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]User, len(s.users))
	for i, user := range s.users {
		result[i] = *user
	}
	return result
}

// ApplyTransfer moves amount between two accounts: the source is debited
// floored at zero, the destination credited, both stamped with one shared
// timestamp. It appends a debit and a credit transaction describing the
// counter-party, logs a TransferRecord, and recomputes net worth.
func (s *Store) ApplyTransfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.FromAccountID == "" || input.ToAccountID == "" || !input.Amount.IsPositive() {
		return nil, InvalidPayload("Invalid transfer payload.")
	}
	if !ValidSchedule(input.Schedule) {
		return nil, InvalidPayload("Invalid transfer payload.")
	}

	fromAccount := s.findAccount(input.FromAccountID)
	toAccount := s.findAccount(input.ToAccountID)
	if fromAccount == nil || toAccount == nil {
		return nil, NotFound("Account not found.")
	}

	timestamp := s.now()
	memo := strings.TrimSpace(input.Memo)

	fromAccount.Balance = floorZero(fromAccount.Balance.Sub(input.Amount))
	fromAccount.AvailableBalance = floorZero(fromAccount.AvailableBalance.Sub(input.Amount))
	fromAccount.LastUpdated = timestamp

	toAccount.Balance = toAccount.Balance.Add(input.Amount)
	toAccount.AvailableBalance = toAccount.AvailableBalance.Add(input.Amount)
	toAccount.LastUpdated = timestamp

	debitDescription := memo
	if debitDescription == "" {
		debitDescription = "Transfer to " + toAccount.Name
	}
	creditDescription := memo
	if creditDescription == "" {
		creditDescription = "Transfer from " + fromAccount.Name
	}

	debit := &Transaction{
		ID:          "txn-" + s.newID(),
		AccountID:   fromAccount.ID,
		Description: debitDescription,
		Category:    "Transfers",
		Amount:      input.Amount,
		Currency:    fromAccount.Currency,
		Direction:   DirectionDebit,
		Date:        timestamp,
		Status:      StatusPosted,
	}
	credit := &Transaction{
		ID:          "txn-" + s.newID(),
		AccountID:   toAccount.ID,
		Description: creditDescription,
		Category:    "Transfers",
		Amount:      input.Amount,
		Currency:    toAccount.Currency,
		Direction:   DirectionCredit,
		Date:        timestamp,
		Status:      StatusPosted,
	}

	// Debit first. The pair shares a timestamp, so readers sorting by
	// date see the relative order as a tie.
	s.transactions = append([]*Transaction{debit, credit}, s.transactions...)

	record := &TransferRecord{
		ID:            "trf-" + s.newID(),
		CreatedAt:     timestamp,
		FromAccountID: fromAccount.ID,
		ToAccountID:   toAccount.ID,
		Amount:        input.Amount,
		Schedule:      input.Schedule,
		Memo:          memo,
	}
	s.transfers = append([]*TransferRecord{record}, s.transfers...)

	s.recomputeNetWorth()

	return &TransferResult{
		TransferID:  record.ID,
		CreatedAt:   timestamp,
		Schedule:    input.Schedule,
		Amount:      input.Amount,
		FromAccount: *fromAccount,
		ToAccount:   *toAccount,
	}, nil
}

// CreateTransaction appends a transaction and adjusts the owning
// account's balances: credits raise them, debits lower them floored at
// zero. Net worth is recomputed afterwards.
func (s *Store) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if create.AccountID == "" || create.Amount.IsZero() {
		return nil, InvalidPayload("Invalid transaction payload.")
	}

	account := s.findAccount(create.AccountID)
	if account == nil {
		return nil, NotFound("Account not found.")
	}

	txn := &Transaction{
		ID:           create.ID,
		AccountID:    account.ID,
		Description:  create.Description,
		Category:     create.Category,
		Amount:       create.Amount,
		Currency:     account.Currency,
		Direction:    create.Direction,
		Date:         create.Date,
		Status:       create.Status,
		MerchantLogo: create.MerchantLogo,
	}
	if txn.ID == "" {
		txn.ID = "txn-" + s.newID()
	}
	if txn.Date.IsZero() {
		txn.Date = s.now()
	}
	if txn.Status == "" {
		txn.Status = StatusPosted
	}

	s.transactions = append([]*Transaction{txn}, s.transactions...)

	if txn.Direction == DirectionCredit {
		account.Balance = account.Balance.Add(txn.Amount)
		account.AvailableBalance = account.AvailableBalance.Add(txn.Amount)
	} else {
		account.Balance = floorZero(account.Balance.Sub(txn.Amount))
		account.AvailableBalance = floorZero(account.AvailableBalance.Sub(txn.Amount))
	}
	account.LastUpdated = txn.Date

	s.recomputeNetWorth()

	snapshot := *txn
	return &snapshot, nil
}

// UpdateAccount shallow-merges the supplied fields onto the account.
// Merged field values are not validated.
func (s *Store) UpdateAccount(ctx context.Context, update AccountUpdate) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.ID == "" {
		return nil, InvalidPayload("Account id missing.")
	}
	account := s.findAccount(update.ID)
	if account == nil {
		return nil, NotFound("Account not found.")
	}

	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Type != nil {
		account.Type = *update.Type
	}
	if update.Balance != nil {
		account.Balance = *update.Balance
	}
	if update.AvailableBalance != nil {
		account.AvailableBalance = *update.AvailableBalance
	}
	if update.Currency != nil {
		account.Currency = *update.Currency
	}
	if update.Icon != nil {
		account.Icon = *update.Icon
	}
	if update.AccountNumber != nil {
		account.AccountNumber = *update.AccountNumber
	}
	if update.LastUpdated != nil {
		account.LastUpdated = *update.LastUpdated
	} else {
		account.LastUpdated = s.now()
	}

	s.recomputeNetWorth()

	snapshot := *account
	return &snapshot, nil
}

// UpdateUser shallow-merges the supplied fields onto the user record and
// returns the password-free profile.
func (s *Store) UpdateUser(ctx context.Context, update UserUpdate) (*UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.ID == "" {
		return nil, InvalidPayload("User id missing.")
	}
	user := s.findUser(update.ID)
	if user == nil {
		return nil, NotFound("User not found.")
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		user.Password = *update.Password
	}

	profile := user.Profile()
	return &profile, nil
}

// CreateUser inserts a user record, rejecting duplicate emails or
// usernames case-insensitively.
func (s *Store) CreateUser(ctx context.Context, user User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.Email == "" || user.Password == "" {
		return nil, InvalidPayload("Invalid registration payload.")
	}

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return nil, Conflict("Email already registered.")
		}
		if user.Username != "" && strings.EqualFold(existing.Username, user.Username) {
			return nil, Conflict("Username already taken.")
		}
	}

	clone := user
	if clone.ID == "" {
		clone.ID = "user-" + s.newID()
	}
	s.users = append(s.users, &clone)

	snapshot := clone
	return &snapshot, nil
}

// UsernameTaken reports whether the candidate collides with an existing
// username or the local part of an existing email, case-insensitively.
func (s *Store) UsernameTaken(ctx context.Context, candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Username, candidate) {
			return true
		}
		if local, _, found := strings.Cut(user.Email, "@"); found && strings.EqualFold(local, candidate) {
			return true
		}
	}
	return false
}

func (s *Store) findAccount(id string) *Account {
	for _, account := range s.accounts {
		if account.ID == id {
			return account
		}
	}
	return nil
}

func (s *Store) findUser(id string) *User {
	for _, user := range s.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

func (s *Store) recomputeNetWorth() {
	total := decimal.Zero
	for _, account := range s.accounts {
		total = total.Add(account.Balance)
	}
	s.summary.NetWorth = total
}

func floorZero(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}
