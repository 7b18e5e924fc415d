package domain

import (
	"fmt"
	"regexp"
)

// AccountType defines the fundamental accounting type of an account.
// It is never set independently: it is always derived from the leading
// digit of the account number.
type AccountType string

const (
	Assets      AccountType = "ASSETS"
	Liabilities AccountType = "LIABILITIES"
	Equity      AccountType = "EQUITY"
	Revenue     AccountType = "REVENUE"
	Expenses    AccountType = "EXPENSES"
)

// accountNumberPattern is the required shape of an account number: three
// digits, the first one in 1..5.
var accountNumberPattern = regexp.MustCompile(`^[1-5]\d{2}$`)

// ValidAccountNumber reports whether s is a well-formed account number.
// This is the boundary check; anything that fails here must be rejected
// before AccountTypeForNumber is ever called.
func ValidAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}

// AccountTypeForNumber derives the account type from the leading digit of
// an account number: 1xx assets, 2xx liabilities, 3xx equity, 4xx revenue,
// 5xx expenses.
//
// The number must already have passed ValidAccountNumber. A leading digit
// outside 1..5 reaching this function is a programming invariant breach,
// not a user input error, and panics.
func AccountTypeForNumber(number string) AccountType {
	if len(number) == 0 {
		panic("account number is empty")
	}
	switch number[0] {
	case '1':
		return Assets
	case '2':
		return Liabilities
	case '3':
		return Equity
	case '4':
		return Revenue
	case '5':
		return Expenses
	}
	panic(fmt.Sprintf("account type cannot be derived from account number %q: leading digit must be 1-5", number))
}

// LeadingDigitForType is the inverse of AccountTypeForNumber: it returns
// the chart digit ("1".."5") that numbers of the given type start with.
func LeadingDigitForType(accountType AccountType) (string, error) {
	switch accountType {
	case Assets:
		return "1", nil
	case Liabilities:
		return "2", nil
	case Equity:
		return "3", nil
	case Revenue:
		return "4", nil
	case Expenses:
		return "5", nil
	}
	return "", fmt.Errorf("unknown account type %q", accountType)
}

// Account represents one account of the chart of accounts. The number and
// the derived type are immutable once the account is created; only the name
// may change afterwards.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary key (UUID)
	Number      string      `json:"number"`    // 3 digits, leading digit 1..5, unique
	Name        string      `json:"name"`      // Unique, 2-128 chars
	AccountType AccountType `json:"accountType"`
	AuditFields
}

// NewAccount builds an account with its type derived from the number.
// The caller is responsible for having validated number and name shape.
func NewAccount(accountID, number, name string) Account {
	return Account{
		AccountID:   accountID,
		Number:      number,
		Name:        name,
		AccountType: AccountTypeForNumber(number),
	}
}
