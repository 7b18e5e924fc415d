package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single, balanced journal entry composed of at
// least two lines. The lines are owned exclusively by their transaction:
// deleting the transaction deletes its lines, and a line never moves to a
// different transaction.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary key (UUID)
	UserID        string            `json:"userID"`        // Owning user
	CreatedAt     time.Time         `json:"createdAt"`     // Not in the future
	Description   string            `json:"description"`   // 2-128 chars
	Lines         []TransactionLine `json:"lines"`
	AuditFields
}

// TransactionLine is one account-level movement within a transaction.
// Exactly one of DebitAmount/CreditAmount is strictly positive, the other
// is exactly zero. Amounts are fixed to 2 decimal places and immutable
// once the transaction is persisted.
type TransactionLine struct {
	LineID        string          `json:"lineID"` // Primary key (UUID)
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"` // FK -> Account
	DebitAmount   decimal.Decimal `json:"debitAmount"`
	CreditAmount  decimal.Decimal `json:"creditAmount"`
}
