package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// seedData builds the fixed session dataset: three accounts, five
// transactions, one user, and a dashboard summary. Relative offsets keep
// the transaction history looking recent regardless of when the session
// starts.
func seedData(now time.Time) ([]*Account, []*Transaction, []*User, DashboardSummary) {
	accounts := []*Account{
		{
			ID:               "acc-1001",
			Name:             "Primary Checking",
			Type:             AccountTypeChecking,
			Balance:          decimal.RequireFromString("8650.42"),
			AvailableBalance: decimal.RequireFromString("8450.42"),
			Currency:         "USD",
			Icon:             "💳",
			AccountNumber:    "•••• 1123",
			LastUpdated:      now,
		},
		{
			ID:               "acc-1002",
			Name:             "High-Yield Savings",
			Type:             AccountTypeSavings,
			Balance:          decimal.RequireFromString("18250.00"),
			AvailableBalance: decimal.RequireFromString("18250.00"),
			Currency:         "USD",
			Icon:             "💰",
			AccountNumber:    "•••• 7644",
			LastUpdated:      now,
		},
		{
			ID:               "acc-1003",
			Name:             "Long-term Investments",
			Type:             AccountTypeInvestment,
			Balance:          decimal.RequireFromString("91000.12"),
			AvailableBalance: decimal.RequireFromString("91000.12"),
			Currency:         "USD",
			Icon:             "📈",
			AccountNumber:    "•••• 8890",
			LastUpdated:      now,
		},
	}

	transactions := []*Transaction{
		{
			ID:           "txn-5001",
			AccountID:    "acc-1001",
			Description:  "Apple Subscription",
			Category:     "Digital services",
			Amount:       decimal.RequireFromString("42.90"),
			Currency:     "USD",
			Direction:    DirectionDebit,
			Date:         now,
			Status:       StatusPosted,
			MerchantLogo: "https://logo.clearbit.com/apple.com",
		},
		{
			ID:          "txn-5002",
			AccountID:   "acc-1001",
			Description: "Employer Deposit",
			Category:    "Income",
			Amount:      decimal.RequireFromString("3250.00"),
			Currency:    "USD",
			Direction:   DirectionCredit,
			Date:        now.Add(-12 * time.Hour),
			Status:      StatusPosted,
		},
		{
			ID:          "txn-5003",
			AccountID:   "acc-1002",
			Description: "Automatic Transfer",
			Category:    "Savings",
			Amount:      decimal.RequireFromString("500.00"),
			Currency:    "USD",
			Direction:   DirectionCredit,
			Date:        now.Add(-30 * time.Hour),
			Status:      StatusPosted,
		},
		{
			ID:          "txn-5004",
			AccountID:   "acc-1001",
			Description: "Coffee Collective",
			Category:    "Dining",
			Amount:      decimal.RequireFromString("8.54"),
			Currency:    "USD",
			Direction:   DirectionDebit,
			Date:        now.Add(-36 * time.Hour),
			Status:      StatusPosted,
		},
		{
			ID:          "txn-5005",
			AccountID:   "acc-1003",
			Description: "Index Fund Purchase",
			Category:    "Investing",
			Amount:      decimal.RequireFromString("1200.00"),
			Currency:    "USD",
			Direction:   DirectionDebit,
			Date:        now.Add(-50 * time.Hour),
			Status:      StatusPending,
		},
	}

	users := []*User{
		{
			ID:       "user-1",
			Name:     "Avery Hughes",
			Username: "avery",
			Email:    "avery@interactive.bank",
			Password: "banking123",
		},
	}

	summary := DashboardSummary{
		NetWorth:     decimal.RequireFromString("117900.54"),
		MonthlySpend: decimal.RequireFromString("4210.00"),
		SavingsRate:  0.32,
		UpcomingBills: []Bill{
			{
				ID:      "bill-1",
				Name:    "Studio Rent",
				DueDate: now.Add(3 * 24 * time.Hour),
				Amount:  decimal.RequireFromString("2150.00"),
			},
			{
				ID:      "bill-2",
				Name:    "Tesla Finance",
				DueDate: now.Add(8 * 24 * time.Hour),
				Amount:  decimal.RequireFromString("685.50"),
			},
		},
		Insights: []Insight{
			{
				ID:          "insight-1",
				Title:       "Savings boost",
				Description: "You saved 5% more than last month. Keep the automatic transfers going!",
			},
			{
				ID:          "insight-2",
				Title:       "Subscription watch",
				Description: "3 recurring subscriptions renewed in the last 7 days.",
			},
		},
	}

	return accounts, transactions, users, summary
}
