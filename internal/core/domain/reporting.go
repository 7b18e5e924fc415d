package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is one account's name and balance within a report.
type AccountStatus struct {
	Number  string          `json:"number"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// AccountOverviewByType summarises activity for one account type.
type AccountOverviewByType struct {
	Type                AccountType     `json:"type"`
	TransactionCount    int             `json:"transactionCount"`
	DateLastTransaction *time.Time      `json:"dateLastTransaction"`
	Balance             decimal.Decimal `json:"balance"`
	Variation           decimal.Decimal `json:"variation"`
}

// IndividualAccountOverview summarises activity for one account.
type IndividualAccountOverview struct {
	Type                AccountType     `json:"type"`
	TransactionCount    int             `json:"transactionCount"`
	Name                string          `json:"name"`
	Number              string          `json:"number"`
	DateLastTransaction *time.Time      `json:"dateLastTransaction"`
	Balance             decimal.Decimal `json:"balance"`
	Variation           decimal.Decimal `json:"variation"`
}

// BalanceSheetReport partitions account balances into the balance sheet
// sides: assets (1xx), liabilities (2xx) and equity (3xx).
type BalanceSheetReport struct {
	Assets      []AccountStatus `json:"assets"`
	Liabilities []AccountStatus `json:"liabilities"`
	Equity      []AccountStatus `json:"equity"`
}

// IncomeStatementReport holds revenue (4xx) and expense (5xx) balances.
type IncomeStatementReport struct {
	Revenue  []AccountStatus `json:"revenue"`
	Expenses []AccountStatus `json:"expenses"`
}
