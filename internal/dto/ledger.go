package dto

import (
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerParams defines query parameters for the ledger view.
// All filters are optional.
type LedgerParams struct {
	AccountNumber *string    `form:"accountNumber" binding:"omitempty,acctnumber"`
	From          *time.Time `form:"from" time_format:"2006-01-02"`
	To            *time.Time `form:"to" time_format:"2006-01-02"`
}

// LedgerLineResponse is one row of the joined ledger view.
type LedgerLineResponse struct {
	Date          time.Time          `json:"date"`
	Description   string             `json:"description"`
	AccountType   domain.AccountType `json:"accountType"`
	AccountNumber string             `json:"accountNumber"`
	AccountName   string             `json:"accountName"`
	Debit         decimal.Decimal    `json:"debit"`
	Credit        decimal.Decimal    `json:"credit"`
	TransactionID string             `json:"transactionID"`
}

// LedgerResponse wraps the ledger rows.
type LedgerResponse struct {
	Lines []LedgerLineResponse `json:"lines"`
}

// ToLedgerResponse converts domain ledger lines.
func ToLedgerResponse(lines []domain.LedgerLine) LedgerResponse {
	rows := make([]LedgerLineResponse, len(lines))
	for i, line := range lines {
		rows[i] = LedgerLineResponse{
			Date:          line.Date,
			Description:   line.Description,
			AccountType:   line.AccountType,
			AccountNumber: line.AccountNumber,
			AccountName:   line.AccountName,
			Debit:         line.Debit,
			Credit:        line.Credit,
			TransactionID: line.TransactionID,
		}
	}
	return LedgerResponse{Lines: rows}
}
