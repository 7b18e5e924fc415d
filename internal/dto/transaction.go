package dto

import (
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionLineRequest is one line of a new transaction. Exactly one
// of the two amounts must be strictly positive; the accounting validator
// reports every violated rule at once, so no balance checks live here.
type CreateTransactionLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	Description string                         `json:"description" binding:"required,min=2,max=128"`
	CreatedAt   time.Time                      `json:"createdAt" binding:"required"`
	Lines       []CreateTransactionLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. Amounts and lines are immutable once recorded, so only the
// description may change.
type UpdateTransactionRequest struct {
	Description *string `json:"description" binding:"omitempty,min=2,max=128"`
}

// TransactionLineResponse defines the data returned for one line.
type TransactionLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                    `json:"transactionID"`
	Description   string                    `json:"description"`
	CreatedAt     time.Time                 `json:"createdAt"`
	Lines         []TransactionLineResponse `json:"lines"`
	CreatedBy     string                    `json:"createdBy"`
	LastUpdatedAt time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy string                    `json:"lastUpdatedBy"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions with the token for
// the next page, nil when this is the last page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	lines := make([]TransactionLineResponse, len(txn.Lines))
	for i, line := range txn.Lines {
		lines[i] = TransactionLineResponse{
			LineID:       line.LineID,
			AccountID:    line.AccountID,
			DebitAmount:  line.DebitAmount,
			CreditAmount: line.CreditAmount,
		}
	}
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
		Lines:         lines,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: responses, NextToken: nextToken}
}
