package services

import (
	"context"
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/harborbytes/booklion/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction and its lines.
	GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of the user's transactions
	// using token-based pagination, newest first.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// Ledger retrieves the joined ledger view of the user's transactions,
	// optionally restricted to one account number and a date window.
	Ledger(ctx context.Context, userID string, accountNumber *string, from, to *time.Time) ([]domain.LedgerLine, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a balanced transaction
	// with all of its lines atomically.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction updates a transaction's mutable details. Amounts
	// and lines are immutable.
	UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and its lines.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
// This is a facade for clients that need access to all operations
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
