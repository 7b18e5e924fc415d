package repositories

import (
	"context"
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction together with its lines.
	FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a paginated list of a user's transactions, newest
	// first, using token-based pagination. It returns the transactions, a token for the
	// next page, and an error.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// CountLinesByAccountID returns how many transaction lines reference the account.
	CountLinesByAccountID(ctx context.Context, userID string, accountID string) (int, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a transaction header and all of its lines atomically.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// UpdateTransactionDescription updates the description of an existing transaction.
	UpdateTransactionDescription(ctx context.Context, userID string, transactionID string, description string, updatedBy string, updatedAt time.Time) error

	// DeleteTransaction removes a transaction and its lines atomically.
	DeleteTransaction(ctx context.Context, userID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
