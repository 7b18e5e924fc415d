package accounting_test

import (
	"testing"
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/harborbytes/booklion/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerLine(number, name string, accountType domain.AccountType, debit, credit string, date time.Time) domain.LedgerLine {
	return domain.LedgerLine{
		Date:          date,
		Description:   "test entry",
		AccountType:   accountType,
		AccountNumber: number,
		AccountName:   name,
		Debit:         dec(debit),
		Credit:        dec(credit),
		TransactionID: "txn-1",
	}
}

func TestSignedAmount_Convention(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		debit       string
		credit      string
		want        string
	}{
		{"debit to asset increases", domain.Assets, "100.00", "0.00", "100.00"},
		{"credit to asset decreases", domain.Assets, "0.00", "40.00", "-40.00"},
		{"debit to expense increases", domain.Expenses, "25.00", "0.00", "25.00"},
		{"credit to liability increases", domain.Liabilities, "0.00", "75.00", "75.00"},
		{"debit to liability decreases", domain.Liabilities, "75.00", "0.00", "-75.00"},
		{"credit to equity increases", domain.Equity, "0.00", "10.00", "10.00"},
		{"credit to revenue increases", domain.Revenue, "0.00", "10.00", "10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.SignedAmount(tt.accountType, dec(tt.debit), dec(tt.credit))
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSignedAmount_UnknownType(t *testing.T) {
	_, err := accounting.SignedAmount(domain.AccountType("BOGUS"), dec("1.00"), dec("0.00"))
	assert.Error(t, err)
}

func TestAggregateByAccount(t *testing.T) {
	jan := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 9, 0, 0, 0, time.UTC)

	lines := []domain.LedgerLine{
		ledgerLine("101", "Checking", domain.Assets, "100.00", "0.00", jan),
		ledgerLine("401", "Salary", domain.Revenue, "0.00", "100.00", jan),
		ledgerLine("101", "Checking", domain.Assets, "0.00", "30.00", feb),
		ledgerLine("513", "Groceries", domain.Expenses, "30.00", "0.00", feb),
	}

	result := accounting.AggregateByAccount(lines)
	require.Len(t, result, 3)

	checking := result["101"]
	assert.Equal(t, "Checking", checking.Name)
	assert.Equal(t, domain.Assets, checking.Type)
	assert.Equal(t, 2, checking.TransactionCount)
	assert.True(t, dec("70.00").Equal(checking.Balance))
	require.NotNil(t, checking.DateLastTransaction)
	assert.Equal(t, feb, *checking.DateLastTransaction)

	salary := result["401"]
	assert.True(t, dec("100.00").Equal(salary.Balance))
	assert.Equal(t, 1, salary.TransactionCount)

	groceries := result["513"]
	assert.True(t, dec("30.00").Equal(groceries.Balance))
}

func TestAggregateByType(t *testing.T) {
	jan := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	lines := []domain.LedgerLine{
		ledgerLine("101", "Checking", domain.Assets, "100.00", "0.00", jan),
		ledgerLine("110", "Savings", domain.Assets, "50.00", "0.00", jan),
		ledgerLine("401", "Salary", domain.Revenue, "0.00", "150.00", jan),
	}

	result := accounting.AggregateByType(lines)
	require.Len(t, result, 2)

	assets := result[domain.Assets]
	assert.True(t, dec("150.00").Equal(assets.Balance))
	assert.Equal(t, 2, assets.TransactionCount)

	revenue := result[domain.Revenue]
	assert.True(t, dec("150.00").Equal(revenue.Balance))
}

func TestAggregateByAccount_Idempotent(t *testing.T) {
	jan := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	lines := []domain.LedgerLine{
		ledgerLine("101", "Checking", domain.Assets, "100.00", "0.00", jan),
		ledgerLine("401", "Salary", domain.Revenue, "0.00", "100.00", jan),
	}

	first := accounting.AggregateByAccount(lines)
	second := accounting.AggregateByAccount(lines)

	require.Len(t, second, len(first))
	for number, activity := range first {
		other, ok := second[number]
		require.True(t, ok)
		assert.True(t, activity.Balance.Equal(other.Balance))
		assert.Equal(t, activity.TransactionCount, other.TransactionCount)
	}
}

func TestAggregateByAccount_EmptyInput(t *testing.T) {
	result := accounting.AggregateByAccount(nil)
	assert.Empty(t, result)
}
