package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account for display and reporting.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCredit     AccountType = "credit"
)

// Account represents an account record.
type Account struct {
	ID               string
	Name             string
	Type             AccountType
	Balance          decimal.Decimal
	AvailableBalance decimal.Decimal
	Currency         string
	Icon             string
	AccountNumber    string
	LastUpdated      time.Time
}

// Direction distinguishes credits from debits. Transaction amounts are
// always positive; the direction carries the sign.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// TransactionStatus tracks whether a transaction has cleared.
type TransactionStatus string

const (
	StatusPosted  TransactionStatus = "posted"
	StatusPending TransactionStatus = "pending"
)

// Transaction represents a single ledger entry on one account.
type Transaction struct {
	ID           string
	AccountID    string
	Description  string
	Category     string
	Amount       decimal.Decimal
	Currency     string
	Direction    Direction
	Date         time.Time
	Status       TransactionStatus
	MerchantLogo string
}

// TransferSchedule is recorded on a transfer but never re-executed;
// weekly and monthly transfers are log entries only.
type TransferSchedule string

const (
	ScheduleOnce    TransferSchedule = "once"
	ScheduleWeekly  TransferSchedule = "weekly"
	ScheduleMonthly TransferSchedule = "monthly"
)

// ValidSchedule reports whether s is a known transfer schedule.
func ValidSchedule(s TransferSchedule) bool {
	switch s {
	case ScheduleOnce, ScheduleWeekly, ScheduleMonthly:
		return true
	}
	return false
}

// TransferRecord is the immutable log entry for a transfer. The paired
// debit and credit transactions reference the same amount and timestamp
// but live in the transaction list.
type TransferRecord struct {
	ID            string
	CreatedAt     time.Time
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Schedule      TransferSchedule
	Memo          string
}

// Bill is an upcoming payment shown on the dashboard.
type Bill struct {
	ID      string
	Name    string
	DueDate time.Time
	Amount  decimal.Decimal
}

// Insight is a short dashboard callout.
type Insight struct {
	ID          string
	Title       string
	Description string
}

// DashboardSummary aggregates the dashboard view. NetWorth is derived
// from account balances and recomputed after every balance mutation;
// the remaining fields are seed data.
type DashboardSummary struct {
	NetWorth      decimal.Decimal
	MonthlySpend  decimal.Decimal
	SavingsRate   float64
	UpcomingBills []Bill
	Insights      []Insight
}

// User is the stored auth record, password included.
type User struct {
	ID       string
	Name     string
	Username string
	Email    string
	Password string
}

// UserProfile is the password-free view of a user returned to callers.
type UserProfile struct {
	ID    string
	Name  string
	Email string
}

// Profile strips the password from a user record.
func (u *User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Name: u.Name, Email: u.Email}
}

// TransferInput is the payload for applying a transfer.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Schedule      TransferSchedule
	Memo          string
}

// TransferResult describes a completed transfer, including snapshots of
// both mutated accounts.
type TransferResult struct {
	TransferID  string
	CreatedAt   time.Time
	Schedule    TransferSchedule
	Amount      decimal.Decimal
	FromAccount Account
	ToAccount   Account
}

// TransactionCreate is the input for creating a transaction directly.
// Zero-value fields fall back to defaults: generated ID, current time,
// posted status, and the owning account's currency.
type TransactionCreate struct {
	ID           string
	AccountID    string
	Description  string
	Category     string
	Amount       decimal.Decimal
	Direction    Direction
	Date         time.Time
	Status       TransactionStatus
	MerchantLogo string
}

// AccountUpdate is a partial account update. Nil fields are left alone.
type AccountUpdate struct {
	ID               string
	Name             *string
	Type             *AccountType
	Balance          *decimal.Decimal
	AvailableBalance *decimal.Decimal
	Currency         *string
	Icon             *string
	AccountNumber    *string
	LastUpdated      *time.Time
}

// UserUpdate is a partial user update. Nil fields are left alone.
type UserUpdate struct {
	ID       string
	Name     *string
	Username *string
	Email    *string
	Password *string
}
