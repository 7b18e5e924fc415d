package domain

import "github.com/shopspring/decimal"

// Budget sets a spending target for exactly one account. The account
// binding is immutable; amount and description may change.
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary key (UUID)
	UserID      string          `json:"userID"`   // Owning user
	AccountID   string          `json:"accountID"`
	Amount      decimal.Decimal `json:"amount"` // Positive, 2 decimal places
	Description string          `json:"description"`
	AuditFields
}

// BudgetMonthlySpend is one month-year spending bucket for a budgeted
// account. Month uses the YYYY-MM label format.
type BudgetMonthlySpend struct {
	Month string          `json:"month"`
	Spent decimal.Decimal `json:"spentAmount"`
}
