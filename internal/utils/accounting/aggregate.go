package accounting

import (
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountActivity is the running aggregation state for one account:
// its balance under the sign convention, how many ledger lines touched it
// and when the most recent one happened.
type AccountActivity struct {
	Number              string
	Name                string
	Type                domain.AccountType
	TransactionCount    int
	DateLastTransaction *time.Time
	Balance             decimal.Decimal
}

// TypeActivity is the same aggregation keyed by account type.
type TypeActivity struct {
	Type                domain.AccountType
	TransactionCount    int
	DateLastTransaction *time.Time
	Balance             decimal.Decimal
}

// AggregateByAccount folds ledger lines into per-account-number balances.
// The caller pre-filters the lines (user scoping, date window); the fold
// itself is window-agnostic. Each call returns a fresh map.
func AggregateByAccount(lines []domain.LedgerLine) map[string]AccountActivity {
	result := make(map[string]AccountActivity)

	for _, line := range lines {
		activity, ok := result[line.AccountNumber]
		if !ok {
			activity = AccountActivity{
				Number:  line.AccountNumber,
				Name:    line.AccountName,
				Type:    line.AccountType,
				Balance: decimal.Zero,
			}
		}

		signed, err := SignedAmount(line.AccountType, line.Debit, line.Credit)
		if err != nil {
			// The account type comes from the classifier, so this cannot
			// happen for well-formed accounts.
			panic(err)
		}

		activity.Balance = activity.Balance.Add(signed)
		activity.TransactionCount++
		if activity.DateLastTransaction == nil || line.Date.After(*activity.DateLastTransaction) {
			d := line.Date
			activity.DateLastTransaction = &d
		}
		result[line.AccountNumber] = activity
	}

	return result
}

// AggregateByType folds ledger lines into per-account-type balances using
// the same sign convention as AggregateByAccount.
func AggregateByType(lines []domain.LedgerLine) map[domain.AccountType]TypeActivity {
	result := make(map[domain.AccountType]TypeActivity)

	for _, line := range lines {
		activity, ok := result[line.AccountType]
		if !ok {
			activity = TypeActivity{Type: line.AccountType, Balance: decimal.Zero}
		}

		signed, err := SignedAmount(line.AccountType, line.Debit, line.Credit)
		if err != nil {
			panic(err)
		}

		activity.Balance = activity.Balance.Add(signed)
		activity.TransactionCount++
		if activity.DateLastTransaction == nil || line.Date.After(*activity.DateLastTransaction) {
			d := line.Date
			activity.DateLastTransaction = &d
		}
		result[line.AccountType] = activity
	}

	return result
}
