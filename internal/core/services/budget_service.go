package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/harborbytes/booklion/internal/core/domain"
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/dto"
	"github.com/harborbytes/booklion/internal/utils/accounting"
)

// budgetService provides spending target operations. Budgets attach to
// expense accounts only, one budget per account.
type budgetService struct {
	BaseService
	budgetRepo  portsrepo.BudgetRepositoryFacade
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerReader
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:  budgetRepo,
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func validBudgetAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: budget amount must have at most two decimal places", apperrors.ErrValidation)
	}
	return nil
}

// CreateBudget persists a budget for an expense account that has none yet.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*dto.BudgetResponse, error) {
	if err := validBudgetAmount(req.Amount); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
		}
		return nil, err
	}
	if account.AccountType != domain.Expenses {
		return nil, fmt.Errorf("%w: budgets can only track expense accounts", apperrors.ErrValidation)
	}

	if _, err := s.budgetRepo.FindBudgetByAccountID(ctx, userID, req.AccountID); err == nil {
		return nil, fmt.Errorf("%w: account %s already has a budget", apperrors.ErrDuplicate, req.AccountID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		UserID:      userID,
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "failed to save budget", slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "budget created", slog.String("budget_id", budget.BudgetID), slog.String("account_id", req.AccountID))
	return s.buildBudgetResponse(ctx, &budget, account)
}

// GetBudgetByID retrieves a budget with its account's spend history.
func (s *budgetService) GetBudgetByID(ctx context.Context, userID string, budgetID string) (*dto.BudgetResponse, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, userID, budget.AccountID)
	if err != nil {
		return nil, err
	}
	return s.buildBudgetResponse(ctx, budget, account)
}

// ListBudgets retrieves the user's budgets with current-month spend.
func (s *budgetService) ListBudgets(ctx context.Context, userID string, limit int, offset int) ([]dto.BudgetSummaryResponse, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	monthStart := currentMonthStart()
	summaries := make([]dto.BudgetSummaryResponse, 0, len(budgets))
	for _, budget := range budgets {
		account, err := s.accountRepo.FindAccountByID(ctx, userID, budget.AccountID)
		if err != nil {
			return nil, err
		}
		lines, err := s.ledgerRepo.FindLedgerLines(ctx, userID, portsrepo.LedgerFilter{
			AccountID: &budget.AccountID,
			From:      &monthStart,
		})
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, dto.BudgetSummaryResponse{
			BudgetID:          budget.BudgetID,
			AccountID:         budget.AccountID,
			AccountNumber:     account.Number,
			AccountName:       account.Name,
			Amount:            budget.Amount,
			Description:       budget.Description,
			CurrentMonthSpend: accounting.SpendingTotal(lines),
		})
	}
	return summaries, nil
}

// UpdateBudget applies the provided patch. The account binding never changes.
func (s *budgetService) UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*dto.BudgetResponse, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Amount != nil {
		if err := validBudgetAmount(*req.Amount); err != nil {
			return nil, err
		}
		budget.Amount = *req.Amount
		changed = true
	}
	if req.Description != nil {
		budget.Description = *req.Description
		changed = true
	}

	if changed {
		budget.LastUpdatedAt = time.Now().UTC()
		budget.LastUpdatedBy = userID
		if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
			s.LogError(ctx, err, "failed to update budget", slog.String("budget_id", budgetID))
			return nil, err
		}
	}

	account, err := s.accountRepo.FindAccountByID(ctx, userID, budget.AccountID)
	if err != nil {
		return nil, err
	}
	return s.buildBudgetResponse(ctx, budget, account)
}

// DeleteBudget removes a budget, leaving the account and its history intact.
func (s *budgetService) DeleteBudget(ctx context.Context, userID string, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		return err
	}
	s.LogInfo(ctx, "budget deleted", slog.String("budget_id", budgetID))
	return nil
}

// buildBudgetResponse folds the budgeted account's ledger lines into the
// month-by-month spend history, sorted chronologically.
func (s *budgetService) buildBudgetResponse(ctx context.Context, budget *domain.Budget, account *domain.Account) (*dto.BudgetResponse, error) {
	lines, err := s.ledgerRepo.FindLedgerLines(ctx, budget.UserID, portsrepo.LedgerFilter{AccountID: &budget.AccountID})
	if err != nil {
		return nil, err
	}

	buckets := accounting.SpendingByMonth(lines)
	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	spend := make([]domain.BudgetMonthlySpend, len(months))
	for i, month := range months {
		spend[i] = domain.BudgetMonthlySpend{Month: month, Spent: buckets[month]}
	}

	return &dto.BudgetResponse{
		BudgetID:        budget.BudgetID,
		AccountID:       budget.AccountID,
		AccountNumber:   account.Number,
		AccountName:     account.Name,
		Amount:          budget.Amount,
		Description:     budget.Description,
		SpentTotal:      accounting.SpendingTotal(lines),
		SpendingByMonth: dto.ToMonthlySpendResponses(spend),
		CreatedAt:       budget.CreatedAt,
		LastUpdatedAt:   budget.LastUpdatedAt,
	}, nil
}
