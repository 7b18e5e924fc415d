package mapping

import (
	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/harborbytes/booklion/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account, userID string) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      userID,
		Number:      d.Number,
		Name:        d.Name,
		AccountType: models.AccountType(d.AccountType),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		Number:      m.Number,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
