package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/harborbytes/booklion/internal/core/domain"
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/dto"
	"github.com/harborbytes/booklion/internal/utils/accounting"
)

// transactionService provides balanced journal entry operations.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	ledgerRepo      portsrepo.LedgerReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		ledgerRepo:      ledgerRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the entry against every accounting rule at
// once, checks that all referenced accounts exist, and persists the header
// and lines atomically.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := time.Now().UTC()
	if req.CreatedAt.After(now) {
		return nil, fmt.Errorf("%w: transaction date must not be in the future", apperrors.ErrValidation)
	}

	lineInputs := make([]accounting.LineInput, len(req.Lines))
	for i, line := range req.Lines {
		lineInputs[i] = accounting.LineInput{
			AccountID:    line.AccountID,
			DebitAmount:  line.DebitAmount,
			CreditAmount: line.CreditAmount,
		}
	}
	if err := accounting.ValidateLines(lineInputs); err != nil {
		return nil, err
	}

	accountIDs := make([]string, len(req.Lines))
	for i, line := range req.Lines {
		accountIDs[i] = line.AccountID
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, userID, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, id)
		}
	}

	transactionID := uuid.NewString()
	lines := make([]domain.TransactionLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = domain.TransactionLine{
			LineID:        uuid.NewString(),
			TransactionID: transactionID,
			AccountID:     line.AccountID,
			DebitAmount:   line.DebitAmount,
			CreditAmount:  line.CreditAmount,
		}
	}

	transaction := domain.Transaction{
		TransactionID: transactionID,
		UserID:        userID,
		CreatedAt:     req.CreatedAt,
		Description:   req.Description,
		Lines:         lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "failed to save transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "transaction recorded",
		slog.String("transaction_id", transactionID),
		slog.Int("lines", len(lines)))
	return &transaction, nil
}

// GetTransactionByID retrieves a transaction and its lines.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
}

// ListTransactions retrieves a page of the user's transactions.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	return s.transactionRepo.ListTransactionsByUser(ctx, userID, limit, nextToken)
}

// Ledger retrieves the joined ledger view, resolving an optional account
// number to its account first.
func (s *transactionService) Ledger(ctx context.Context, userID string, accountNumber *string, from, to *time.Time) ([]domain.LedgerLine, error) {
	filter := portsrepo.LedgerFilter{From: from, To: to}
	if accountNumber != nil && *accountNumber != "" {
		account, err := s.accountRepo.FindAccountByNumber(ctx, userID, *accountNumber)
		if err != nil {
			return nil, err
		}
		filter.AccountID = &account.AccountID
	}
	return s.ledgerRepo.FindLedgerLines(ctx, userID, filter)
}

// UpdateTransaction applies the provided patch. Lines and amounts are
// immutable, so only the description can change.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.Description == nil {
		return s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	}

	now := time.Now().UTC()
	if err := s.transactionRepo.UpdateTransactionDescription(ctx, userID, transactionID, *req.Description, userID, now); err != nil {
		return nil, err
	}
	return s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
}

// DeleteTransaction removes a transaction and its lines.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return err
	}
	s.LogInfo(ctx, "transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
