// Package accounting holds the pure double-entry computations: line
// validation, signed-amount convention, report aggregation and budget
// spending buckets. Nothing in this package performs I/O or logging;
// every function builds and returns fresh result structures so calls are
// safe to run concurrently on independent inputs.
package accounting

import (
	"fmt"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the accounting sign convention to one debit/credit
// pair for an account of the given type:
//
//	ASSETS, EXPENSES:             balance moves by debit - credit
//	LIABILITIES, EQUITY, REVENUE: balance moves by credit - debit
func SignedAmount(accountType domain.AccountType, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.Assets, domain.Expenses:
		return debit.Sub(credit), nil
	case domain.Liabilities, domain.Equity, domain.Revenue:
		return credit.Sub(debit), nil
	}
	return decimal.Zero, fmt.Errorf("unknown account type %q", accountType)
}
