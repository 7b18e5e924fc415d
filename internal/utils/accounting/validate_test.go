package accounting_test

import (
	"errors"
	"testing"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/harborbytes/booklion/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(accountID, debit, credit string) accounting.LineInput {
	return accounting.LineInput{
		AccountID:    accountID,
		DebitAmount:  dec(debit),
		CreditAmount: dec(credit),
	}
}

func TestValidateLines_BalancedTwoLineTransaction(t *testing.T) {
	err := accounting.ValidateLines([]accounting.LineInput{
		line("acc-101", "100.00", "0.00"),
		line("acc-401", "0.00", "100.00"),
	})
	assert.NoError(t, err)
}

func TestValidateLines_RejectsFewerThanTwoLines(t *testing.T) {
	err := accounting.ValidateLines([]accounting.LineInput{
		line("acc-101", "0.00", "0.00"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var verr *accounting.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "at least two lines")
}

func TestValidateLines_RejectsDuplicateAccounts(t *testing.T) {
	// Same account twice within one transaction, even though it balances.
	err := accounting.ValidateLines([]accounting.LineInput{
		line("acc-101", "50.00", "0.00"),
		line("acc-101", "0.00", "50.00"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "unique")
}

func TestValidateLines_RejectsUnbalancedTransaction(t *testing.T) {
	err := accounting.ValidateLines([]accounting.LineInput{
		line("acc-101", "100.00", "0.00"),
		line("acc-401", "0.00", "99.00"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "unbalanced")
	assert.Contains(t, err.Error(), "1.00")
}

func TestValidateLines_RejectsBothAmountsZero(t *testing.T) {
	err := accounting.ValidateLines([]accounting.LineInput{
		line("acc-101", "100.00", "0.00"),
		line("acc-401", "0.00", "100.00"),
		line("acc-201", "0.00", "0.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both be zero")
}

func TestValidateLines_RejectsBothAmountsSet(t *testing.T) {
	err := accounting.ValidateLines([]accounting.LineInput{
		line("acc-101", "100.00", "50.00"),
		line("acc-401", "0.00", "50.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both be set")
}

func TestValidateLines_RejectsNegativeAndOverscaledAmounts(t *testing.T) {
	err := accounting.ValidateLines([]accounting.LineInput{
		line("acc-101", "-5.00", "0.00"),
		line("acc-401", "0.00", "-5.001"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero or positive")
	assert.Contains(t, err.Error(), "two decimal places")
}

func TestValidateLines_ReportsAllViolationsTogether(t *testing.T) {
	// One line, duplicate-free but with a zero/zero pair and unbalanced:
	// every violated constraint must be present in one error.
	err := accounting.ValidateLines([]accounting.LineInput{
		line("acc-101", "10.00", "0.00"),
		line("acc-101", "0.00", "0.00"),
	})
	require.Error(t, err)

	var verr *accounting.ValidationErrors
	require.True(t, errors.As(err, &verr))
	reasons := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		reasons = append(reasons, v.Reason)
	}
	assert.Len(t, verr.Violations, 3)
	assert.Contains(t, err.Error(), "unique")
	assert.Contains(t, err.Error(), "not both be zero")
	assert.Contains(t, err.Error(), "unbalanced")
	assert.NotEmpty(t, reasons)
}

func TestValidateLines_ExactDecimalArithmetic(t *testing.T) {
	// 0.10 added ten times equals 1.00 exactly; binary floats would drift.
	lines := []accounting.LineInput{line("acc-401", "0.00", "1.00")}
	for i := 0; i < 10; i++ {
		lines = append(lines, accounting.LineInput{
			AccountID:    string(rune('a' + i)),
			DebitAmount:  dec("0.10"),
			CreditAmount: dec("0.00"),
		})
	}
	assert.NoError(t, accounting.ValidateLines(lines))
}
