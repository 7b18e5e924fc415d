package dto

import (
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
// The account binding is fixed at creation time.
type CreateBudgetRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"required,min=2,max=128"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
// The account binding is immutable. Pointers distinguish "not provided"
// from zero values.
type UpdateBudgetRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" binding:"omitempty,min=2,max=128"`
}

// MonthlySpendResponse is one YYYY-MM spending bucket of a budgeted account.
type MonthlySpendResponse struct {
	Month string          `json:"month"`
	Spent decimal.Decimal `json:"spentAmount"`
}

// BudgetResponse defines the data returned for a budget, including the
// account's spend history so clients can render progress without a second
// round trip.
type BudgetResponse struct {
	BudgetID        string                 `json:"budgetID"`
	AccountID       string                 `json:"accountID"`
	AccountNumber   string                 `json:"accountNumber"`
	AccountName     string                 `json:"accountName"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	SpentTotal      decimal.Decimal        `json:"spentTotal"`
	SpendingByMonth []MonthlySpendResponse `json:"spendingByMonth"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// BudgetSummaryResponse is the list-view shape of a budget: the target
// amount next to the current month's spend.
type BudgetSummaryResponse struct {
	BudgetID          string          `json:"budgetID"`
	AccountID         string          `json:"accountID"`
	AccountNumber     string          `json:"accountNumber"`
	AccountName       string          `json:"accountName"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	CurrentMonthSpend decimal.Decimal `json:"currentMonthSpend"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListBudgetsResponse wraps the list of budget summaries.
type ListBudgetsResponse struct {
	Budgets []BudgetSummaryResponse `json:"budgets"`
}

// ToMonthlySpendResponses converts domain spend buckets.
func ToMonthlySpendResponses(spend []domain.BudgetMonthlySpend) []MonthlySpendResponse {
	rows := make([]MonthlySpendResponse, len(spend))
	for i, s := range spend {
		rows[i] = MonthlySpendResponse{Month: s.Month, Spent: s.Spent}
	}
	return rows
}
