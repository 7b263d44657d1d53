package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
)

// Bill is the API model for an upcoming payment.
type Bill struct {
	ID      string `json:"id" doc:"Bill ID"`
	Name    string `json:"name" doc:"Payee name"`
	DueDate string `json:"dueDate" doc:"RFC3339 due date"`
	Amount  string `json:"amount" doc:"Decimal amount due"`
}

// Insight is the API model for a dashboard callout.
type Insight struct {
	ID          string `json:"id" doc:"Insight ID"`
	Title       string `json:"title" doc:"Short headline"`
	Description string `json:"description" doc:"Callout body"`
}

// Summary is the API response model for the dashboard.
type Summary struct {
	NetWorth      string    `json:"netWorth" doc:"Sum of all account balances"`
	MonthlySpend  string    `json:"monthlySpend" doc:"Decimal spend for the current month"`
	SavingsRate   float64   `json:"savingsRate" doc:"Savings rate as a fraction"`
	UpcomingBills []Bill    `json:"upcomingBills" doc:"Upcoming payments"`
	Insights      []Insight `json:"insights" doc:"Dashboard callouts"`
}

// GetSummaryOutput is the Huma output for the dashboard summary.
type GetSummaryOutput struct {
	Body Summary
}

// summaryReader is the interface for reading the dashboard summary.
type summaryReader interface {
	DashboardSummary(ctx context.Context) ledger.DashboardSummary
}

// GetSummaryHandler handles GET /v1/dashboard-summary.
type GetSummaryHandler struct {
	Summaries summaryReader
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(summaries summaryReader) *GetSummaryHandler {
	return &GetSummaryHandler{Summaries: summaries}
}

// Register registers the dashboard summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-summary",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard-summary",
		Summary:     "Get dashboard summary",
		Description: "Returns net worth, monthly spend, savings rate, upcoming bills and insights.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, _ *struct{}) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	summary := h.Summaries.DashboardSummary(ctx)

	if logData != nil {
		logData.AddData("netWorth", summary.NetWorth.String())
	}

	bills := make([]Bill, len(summary.UpcomingBills))
	for i, bill := range summary.UpcomingBills {
		bills[i] = Bill{
			ID:      bill.ID,
			Name:    bill.Name,
			DueDate: bill.DueDate.Format(time.RFC3339),
			Amount:  bill.Amount.String(),
		}
	}

	insights := make([]Insight, len(summary.Insights))
	for i, insight := range summary.Insights {
		insights[i] = Insight{
			ID:          insight.ID,
			Title:       insight.Title,
			Description: insight.Description,
		}
	}

	return &GetSummaryOutput{
		Body: Summary{
			NetWorth:      summary.NetWorth.String(),
			MonthlySpend:  summary.MonthlySpend.String(),
			SavingsRate:   summary.SavingsRate,
			UpcomingBills: bills,
			Insights:      insights,
		},
	}, nil
}
