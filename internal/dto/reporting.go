package dto

import (
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportParams defines the optional reporting window. A missing bound
// leaves that side of the window open.
type ReportParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// AccountStatusResponse is one account's balance line within a report.
type AccountStatusResponse struct {
	Number  string          `json:"number"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceSheetResponse partitions balances into the balance sheet sides.
type BalanceSheetResponse struct {
	Assets      []AccountStatusResponse `json:"assets"`
	Liabilities []AccountStatusResponse `json:"liabilities"`
	Equity      []AccountStatusResponse `json:"equity"`
}

// IncomeStatementResponse holds revenue and expense balances.
type IncomeStatementResponse struct {
	Revenue  []AccountStatusResponse `json:"revenue"`
	Expenses []AccountStatusResponse `json:"expenses"`
}

func toAccountStatusResponses(statuses []domain.AccountStatus) []AccountStatusResponse {
	rows := make([]AccountStatusResponse, len(statuses))
	for i, s := range statuses {
		rows[i] = AccountStatusResponse{Number: s.Number, Name: s.Name, Balance: s.Balance}
	}
	return rows
}

// ToBalanceSheetResponse converts a domain balance sheet report.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		Assets:      toAccountStatusResponses(report.Assets),
		Liabilities: toAccountStatusResponses(report.Liabilities),
		Equity:      toAccountStatusResponses(report.Equity),
	}
}

// ToIncomeStatementResponse converts a domain income statement report.
func ToIncomeStatementResponse(report *domain.IncomeStatementReport) IncomeStatementResponse {
	return IncomeStatementResponse{
		Revenue:  toAccountStatusResponses(report.Revenue),
		Expenses: toAccountStatusResponses(report.Expenses),
	}
}
