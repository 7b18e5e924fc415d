package accounting_test

import (
	"testing"
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/harborbytes/booklion/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendingByMonth(t *testing.T) {
	lines := []domain.LedgerLine{
		ledgerLine("513", "Groceries", domain.Expenses, "120.00", "0.00", time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)),
		ledgerLine("513", "Groceries", domain.Expenses, "80.00", "0.00", time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)),
		ledgerLine("513", "Groceries", domain.Expenses, "300.00", "0.00", time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)),
	}

	buckets := accounting.SpendingByMonth(lines)
	require.Len(t, buckets, 2)
	assert.True(t, dec("200.00").Equal(buckets["2024-01"]))
	assert.True(t, dec("300.00").Equal(buckets["2024-02"]))
}

func TestSpendingByMonth_BucketKeyFromLineDate(t *testing.T) {
	// The bucket comes from each line's transaction date, including lines
	// far in the past, not from the evaluation time.
	lines := []domain.LedgerLine{
		ledgerLine("513", "Groceries", domain.Expenses, "10.00", "0.00", time.Date(2019, 12, 31, 23, 0, 0, 0, time.UTC)),
	}

	buckets := accounting.SpendingByMonth(lines)
	require.Len(t, buckets, 1)
	assert.True(t, dec("10.00").Equal(buckets["2019-12"]))
}

func TestSpendingByMonth_CreditsReduceSpend(t *testing.T) {
	// A refund (credit to the expense account) nets against the month.
	lines := []domain.LedgerLine{
		ledgerLine("513", "Groceries", domain.Expenses, "100.00", "0.00", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)),
		ledgerLine("513", "Groceries", domain.Expenses, "0.00", "25.00", time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)),
	}

	buckets := accounting.SpendingByMonth(lines)
	assert.True(t, dec("75.00").Equal(buckets["2024-03"]))
}

func TestSpendingTotal(t *testing.T) {
	lines := []domain.LedgerLine{
		ledgerLine("513", "Groceries", domain.Expenses, "200.00", "0.00", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		ledgerLine("513", "Groceries", domain.Expenses, "300.00", "0.00", time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)),
		ledgerLine("513", "Groceries", domain.Expenses, "0.00", "50.00", time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC)),
	}

	assert.True(t, dec("450.00").Equal(accounting.SpendingTotal(lines)))
	assert.True(t, accounting.SpendingTotal(nil).IsZero())
}
