package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harborbytes/booklion/internal/core/domain"
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	portssvc "github.com/harborbytes/booklion/internal/core/ports/services"
	"github.com/harborbytes/booklion/internal/utils/accounting"
)

// reportingService builds balance sheet and income statement reports by
// folding ledger lines account by account.
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerReader) portssvc.ReportingService {
	return &reportingService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// BalanceSheet reports asset, liability and equity balances for the window.
func (s *reportingService) BalanceSheet(ctx context.Context, userID string, from, to *time.Time) (*domain.BalanceSheetReport, error) {
	statuses, err := s.balancesByType(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return &domain.BalanceSheetReport{
		Assets:      statuses[domain.Assets],
		Liabilities: statuses[domain.Liabilities],
		Equity:      statuses[domain.Equity],
	}, nil
}

// IncomeStatement reports revenue and expense balances for the window.
func (s *reportingService) IncomeStatement(ctx context.Context, userID string, from, to *time.Time) (*domain.IncomeStatementReport, error) {
	statuses, err := s.balancesByType(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return &domain.IncomeStatementReport{
		Revenue:  statuses[domain.Revenue],
		Expenses: statuses[domain.Expenses],
	}, nil
}

// balancesByType fetches the window's ledger lines, folds them per account
// and partitions the results by account type. Every account of the chart
// appears, zero-balanced when it saw no activity in the window.
func (s *reportingService) balancesByType(ctx context.Context, userID string, from, to *time.Time) (map[domain.AccountType][]domain.AccountStatus, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID, "", 1000, 0)
	if err != nil {
		return nil, err
	}

	lines, err := s.ledgerRepo.FindLedgerLines(ctx, userID, portsrepo.LedgerFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	activity := accounting.AggregateByAccount(lines)

	statuses := map[domain.AccountType][]domain.AccountStatus{
		domain.Assets:      {},
		domain.Liabilities: {},
		domain.Equity:      {},
		domain.Revenue:     {},
		domain.Expenses:    {},
	}
	for _, account := range accounts {
		balance := decimal.Zero
		if a, ok := activity[account.Number]; ok {
			balance = a.Balance
		}
		statuses[account.AccountType] = append(statuses[account.AccountType], domain.AccountStatus{
			Number:  account.Number,
			Name:    account.Name,
			Balance: balance,
		})
	}
	for accountType := range statuses {
		rows := statuses[accountType]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Number < rows[j].Number })
	}
	return statuses, nil
}
