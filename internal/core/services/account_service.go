package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/harborbytes/booklion/internal/core/domain"
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/dto"
	"github.com/harborbytes/booklion/internal/utils/accounting"
)

// accountService provides chart of accounts operations.
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	ledgerRepo      portsrepo.LedgerReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionReader, ledgerRepo portsrepo.LedgerReader) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates the number shape, derives the account type from
// its leading digit and persists the account.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !domain.ValidAccountNumber(req.Number) {
		return nil, fmt.Errorf("%w: account number must be three digits starting with 1-5", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	account := domain.NewAccount(uuid.NewString(), req.Number, req.Name)
	account.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to create account", slog.String("number", req.Number))
		return nil, err
	}

	s.LogInfo(ctx, "account created", slog.String("account_id", account.AccountID), slog.String("number", account.Number))
	return &account, nil
}

// GetAccountByID retrieves an account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, userID string, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, userID, accountID)
}

// ListAccounts retrieves a paginated list of the user's accounts.
func (s *accountService) ListAccounts(ctx context.Context, userID string, nameFilter string, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, userID, nameFilter, limit, offset)
}

// NextAccountNumber proposes the number after the user's highest account of
// the given category, or the category's first number when none exist yet.
func (s *accountService) NextAccountNumber(ctx context.Context, userID string, accountType domain.AccountType) (string, error) {
	digit, err := domain.LeadingDigitForType(accountType)
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	highest, err := s.accountRepo.FindHighestAccountNumber(ctx, userID, digit)
	if err != nil {
		return "", err
	}
	if highest == nil {
		return digit + "00", nil
	}

	n, err := strconv.Atoi(*highest)
	if err != nil || !domain.ValidAccountNumber(*highest) {
		return "", fmt.Errorf("stored account number %q is malformed", *highest)
	}
	next := strconv.Itoa(n + 1)
	if !domain.ValidAccountNumber(next) || domain.AccountTypeForNumber(next) != accountType {
		// The category is exhausted at x99.
		return "", fmt.Errorf("%w: no free account number left for type %s", apperrors.ErrConflict, accountType)
	}
	return next, nil
}

// UpdateAccount applies the provided patch. Number and type never change.
func (s *accountService) UpdateAccount(ctx context.Context, userID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name == nil {
		// Nothing to change.
		return account, nil
	}

	account.Name = *req.Name
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes an account only while no transaction line refers to
// it. Its budget, if any, goes with it.
func (s *accountService) DeleteAccount(ctx context.Context, userID string, accountID string) error {
	count, err := s.transactionRepo.CountLinesByAccountID(ctx, userID, accountID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: account has %d transaction lines", apperrors.ErrConflict, count)
	}

	if err := s.accountRepo.DeleteAccount(ctx, userID, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "failed to delete account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "account deleted", slog.String("account_id", accountID))
	return nil
}

// AccountsOverview folds the full ledger into per-type and per-account
// summaries. Accounts without any lines still appear with zero balance,
// and every one of the five types has a row. Variation is the signed
// movement within the current calendar month (UTC).
func (s *accountService) AccountsOverview(ctx context.Context, userID string) ([]domain.AccountOverviewByType, []domain.IndividualAccountOverview, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID, "", 1000, 0)
	if err != nil {
		return nil, nil, err
	}

	lines, err := s.ledgerRepo.FindLedgerLines(ctx, userID, portsrepo.LedgerFilter{})
	if err != nil {
		return nil, nil, err
	}

	byAccount := accounting.AggregateByAccount(lines)
	byType := accounting.AggregateByType(lines)

	monthStart := currentMonthStart()
	var monthLines []domain.LedgerLine
	for _, line := range lines {
		if !line.Date.Before(monthStart) {
			monthLines = append(monthLines, line)
		}
	}
	monthByAccount := accounting.AggregateByAccount(monthLines)
	monthByType := accounting.AggregateByType(monthLines)

	typeRows := make([]domain.AccountOverviewByType, 0, 5)
	for _, accountType := range []domain.AccountType{domain.Assets, domain.Liabilities, domain.Equity, domain.Revenue, domain.Expenses} {
		activity := byType[accountType]
		typeRows = append(typeRows, domain.AccountOverviewByType{
			Type:                accountType,
			TransactionCount:    activity.TransactionCount,
			DateLastTransaction: activity.DateLastTransaction,
			Balance:             activity.Balance,
			Variation:           monthByType[accountType].Balance,
		})
	}

	accountRows := make([]domain.IndividualAccountOverview, 0, len(accounts))
	for _, account := range accounts {
		activity := byAccount[account.Number]
		accountRows = append(accountRows, domain.IndividualAccountOverview{
			Type:                account.AccountType,
			Number:              account.Number,
			Name:                account.Name,
			TransactionCount:    activity.TransactionCount,
			DateLastTransaction: activity.DateLastTransaction,
			Balance:             activity.Balance,
			Variation:           monthByAccount[account.Number].Balance,
		})
	}
	sort.Slice(accountRows, func(i, j int) bool { return accountRows[i].Number < accountRows[j].Number })

	return typeRows, accountRows, nil
}

func currentMonthStart() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
