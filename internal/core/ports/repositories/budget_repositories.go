package repositories

import (
	"context"

	"github.com/harborbytes/booklion/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget by its unique identifier, scoped to its owner.
	FindBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)

	// FindBudgetByAccountID retrieves the budget attached to an account, if any.
	FindBudgetByAccountID(ctx context.Context, userID string, accountID string) (*domain.Budget, error)

	// ListBudgets retrieves a paginated list of a user's budgets.
	ListBudgets(ctx context.Context, userID string, limit int, offset int) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget persists a new budget. At most one budget may exist per account.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates an existing budget's details.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
// This is a facade for clients that need access to all operations
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
