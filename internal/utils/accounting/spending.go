package accounting

import (
	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// monthLabel is the YYYY-MM bucket key format for budget spending.
const monthLabel = "2006-01"

// SpendingByMonth buckets the ledger lines of a single budgeted account by
// calendar month-year (UTC) and accumulates debit - credit per bucket.
// Budgets track expense accounts, where that difference nets to positive
// spend. The map is unordered; callers sort for display.
func SpendingByMonth(lines []domain.LedgerLine) map[string]decimal.Decimal {
	buckets := make(map[string]decimal.Decimal)

	for _, line := range lines {
		month := line.Date.UTC().Format(monthLabel)
		spent, ok := buckets[month]
		if !ok {
			spent = decimal.Zero
		}
		buckets[month] = spent.Add(line.Debit.Sub(line.Credit))
	}

	return buckets
}

// SpendingTotal accumulates debit - credit over all lines into a single
// running total, the "spend to date" of a budgeted account.
func SpendingTotal(lines []domain.LedgerLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Debit.Sub(line.Credit))
	}
	return total
}
