package models

import "github.com/shopspring/decimal"

// Budget is a spending target bound to exactly one account. account_id
// carries a unique constraint, so the one-budget-per-account rule is
// enforced by the database as well as the service.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	UserID      string          `db:"user_id"`
	AccountID   string          `db:"account_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	AuditFields
}
