package services

import (
	"context"

	"github.com/harborbytes/booklion/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a budget with its account's full spend history.
	GetBudgetByID(ctx context.Context, userID string, budgetID string) (*dto.BudgetResponse, error)

	// ListBudgets retrieves the user's budgets with each account's
	// current-month spend.
	ListBudgets(ctx context.Context, userID string, limit int, offset int) ([]dto.BudgetSummaryResponse, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// CreateBudget persists a budget for an account that has none yet.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*dto.BudgetResponse, error)

	// UpdateBudget updates a budget's amount or description.
	UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*dto.BudgetResponse, error)

	// DeleteBudget removes a budget, leaving the account untouched.
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces
// This is a facade for clients that need access to all operations
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
