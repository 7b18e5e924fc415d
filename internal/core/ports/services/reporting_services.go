package services

import (
	"context"
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
)

// ReportingService defines operations for generating financial reports.
// A nil window bound leaves that side open; accounts without activity in
// the window still appear with a zero balance.
type ReportingService interface {
	// BalanceSheet reports asset, liability and equity balances.
	BalanceSheet(ctx context.Context, userID string, from, to *time.Time) (*domain.BalanceSheetReport, error)

	// IncomeStatement reports revenue and expense balances.
	IncomeStatement(ctx context.Context, userID string, from, to *time.Time) (*domain.IncomeStatementReport, error)
}
