package domain_test

import (
	"testing"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidAccountNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"100", true},
		{"199", true},
		{"201", true},
		{"345", true},
		{"400", true},
		{"599", true},
		{"099", false}, // leading digit below range
		{"600", false}, // leading digit above range
		{"999", false},
		{"10", false},   // too short
		{"1000", false}, // too long
		{"1a0", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidAccountNumber(tt.number))
		})
	}
}

func TestAccountTypeForNumber(t *testing.T) {
	tests := []struct {
		number string
		want   domain.AccountType
	}{
		{"100", domain.Assets},
		{"101", domain.Assets},
		{"200", domain.Liabilities},
		{"300", domain.Equity},
		{"401", domain.Revenue},
		{"513", domain.Expenses},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.AccountTypeForNumber(tt.number))
		})
	}
}

func TestAccountTypeForNumber_PanicsOnForeignLeadingDigit(t *testing.T) {
	// Numbers like these must be rejected by the format check upstream;
	// reaching the classifier with one is a programming error.
	assert.Panics(t, func() { domain.AccountTypeForNumber("999") })
	assert.Panics(t, func() { domain.AccountTypeForNumber("042") })
	assert.Panics(t, func() { domain.AccountTypeForNumber("") })
}

func TestNewAccount_DerivesType(t *testing.T) {
	account := domain.NewAccount("acc-1", "513", "Groceries")
	assert.Equal(t, domain.Expenses, account.AccountType)
	assert.Equal(t, "513", account.Number)
	assert.Equal(t, "Groceries", account.Name)
}
