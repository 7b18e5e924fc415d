package dto

import (
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// The acctnumber rule enforces the three digit chart format with a leading
// digit of 1-5; the account's type is derived from that digit, never sent.
type CreateAccountRequest struct {
	Number string `json:"number" binding:"required,acctnumber"`
	Name   string `json:"name" binding:"required,min=2,max=128"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Number        string             `json:"number"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Only the name may change; number and type are immutable after creation.
// Pointer distinguishes "not provided" from a zero value.
type UpdateAccountRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=128"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Number:        acc.Number,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Name   string `form:"name"` // Optional case-insensitive name fragment
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// NextAccountNumberParams selects the category to propose a number for.
type NextAccountNumberParams struct {
	AccountType domain.AccountType `form:"accountType" binding:"required,oneof=ASSETS LIABILITIES EQUITY REVENUE EXPENSES"`
}

// NextAccountNumberResponse carries the first free chart number of a category.
type NextAccountNumberResponse struct {
	Number string `json:"number"`
}

// AccountTypeOverviewResponse summarises one account type's activity.
type AccountTypeOverviewResponse struct {
	Type                domain.AccountType `json:"type"`
	TransactionCount    int                `json:"transactionCount"`
	DateLastTransaction *time.Time         `json:"dateLastTransaction"`
	Balance             decimal.Decimal    `json:"balance"`
	Variation           decimal.Decimal    `json:"variation"`
}

// AccountOverviewResponse summarises one account's activity.
type AccountOverviewResponse struct {
	Type                domain.AccountType `json:"type"`
	Number              string             `json:"number"`
	Name                string             `json:"name"`
	TransactionCount    int                `json:"transactionCount"`
	DateLastTransaction *time.Time         `json:"dateLastTransaction"`
	Balance             decimal.Decimal    `json:"balance"`
	Variation           decimal.Decimal    `json:"variation"`
}

// AccountsOverviewResponse is the dashboard payload: per-type summaries
// followed by per-account summaries.
type AccountsOverviewResponse struct {
	ByType    []AccountTypeOverviewResponse `json:"byType"`
	ByAccount []AccountOverviewResponse     `json:"byAccount"`
}

// ToAccountTypeOverviewResponse converts a domain overview row.
func ToAccountTypeOverviewResponse(o domain.AccountOverviewByType) AccountTypeOverviewResponse {
	return AccountTypeOverviewResponse{
		Type:                o.Type,
		TransactionCount:    o.TransactionCount,
		DateLastTransaction: o.DateLastTransaction,
		Balance:             o.Balance,
		Variation:           o.Variation,
	}
}

// ToAccountOverviewResponse converts a domain overview row.
func ToAccountOverviewResponse(o domain.IndividualAccountOverview) AccountOverviewResponse {
	return AccountOverviewResponse{
		Type:                o.Type,
		Number:              o.Number,
		Name:                o.Name,
		TransactionCount:    o.TransactionCount,
		DateLastTransaction: o.DateLastTransaction,
		Balance:             o.Balance,
		Variation:           o.Variation,
	}
}
