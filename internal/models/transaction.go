package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the header row of a balanced journal entry. The business
// date lives in transaction_date; created_at is the audit timestamp.
type Transaction struct {
	TransactionID   string    `db:"transaction_id"`
	UserID          string    `db:"user_id"`
	TransactionDate time.Time `db:"transaction_date"`
	Description     string    `db:"description"`
	AuditFields
}

// TransactionLine is one account movement belonging to a transaction.
// Lines are immutable and cascade-deleted with their header.
type TransactionLine struct {
	LineID        string          `db:"line_id"`
	TransactionID string          `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	DebitAmount   decimal.Decimal `db:"debit_amount"`
	CreditAmount  decimal.Decimal `db:"credit_amount"`
}
