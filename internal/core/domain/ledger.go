package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLine is one account-level debit/credit movement flattened together
// with the data of its parent transaction and account. It is the row shape
// the repository layer produces for the report aggregation engine; it is
// never persisted as such.
type LedgerLine struct {
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	AccountType   AccountType     `json:"accountType"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Debit         decimal.Decimal `json:"debits"`
	Credit        decimal.Decimal `json:"credits"`
	TransactionID string          `json:"transactionId"`
}
