package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Assets      AccountType = "ASSETS"
	Liabilities AccountType = "LIABILITIES"
	Equity      AccountType = "EQUITY"
	Revenue     AccountType = "REVENUE"
	Expenses    AccountType = "EXPENSES"
)

// Account represents one row of a user's chart of accounts. The number is
// unique per user, as is the name; account_type is stored denormalized even
// though it is derivable from the number's leading digit.
type Account struct {
	AccountID   string      `db:"account_id"`
	UserID      string      `db:"user_id"`
	Number      string      `db:"number"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	AuditFields
}
