package repositories

import (
	"context"

	"github.com/harborbytes/booklion/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier, scoped to its owner.
	FindAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its chart number within a user's chart of accounts.
	FindAccountByNumber(ctx context.Context, userID string, number string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of a user's accounts, optionally filtered
	// by a case-insensitive name fragment.
	ListAccounts(ctx context.Context, userID string, nameFilter string, limit int, offset int) ([]domain.Account, error)

	// FindHighestAccountNumber returns the largest account number a user holds under the
	// given leading digit, or nil when the user has no account of that category yet.
	FindHighestAccountNumber(ctx context.Context, userID string, leadingDigit string) (*string, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account that has no transaction lines.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
