package services

import (
	"context"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/harborbytes/booklion/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of the user's accounts, optionally
	// filtered by a name fragment.
	ListAccounts(ctx context.Context, userID string, nameFilter string, limit int, offset int) ([]domain.Account, error)

	// NextAccountNumber proposes the first free chart number for the given
	// account type, e.g. the number after the user's highest 5xx account.
	NextAccountNumber(ctx context.Context, userID string, accountType domain.AccountType) (string, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account, deriving its type from the number.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's mutable details.
	UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account that has no transaction lines.
	DeleteAccount(ctx context.Context, userID string, accountID string) error
}

// AccountOverviewSvc defines dashboard summaries over the user's accounts
type AccountOverviewSvc interface {
	// AccountsOverview folds the whole ledger into per-type and per-account
	// summaries, including zero rows for accounts with no activity.
	AccountsOverview(ctx context.Context, userID string) ([]domain.AccountOverviewByType, []domain.IndividualAccountOverview, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountOverviewSvc
}
