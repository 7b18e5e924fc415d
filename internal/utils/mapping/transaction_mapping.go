package mapping

import (
	"github.com/harborbytes/booklion/internal/core/domain"
	"github.com/harborbytes/booklion/internal/models"
)

// ToModelTransaction converts a domain Transaction header to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		TransactionDate: d.CreatedAt,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToModelTransactionLines converts a domain Transaction's lines to model lines
func ToModelTransactionLines(d domain.Transaction) []models.TransactionLine {
	lines := make([]models.TransactionLine, len(d.Lines))
	for i, line := range d.Lines {
		lines[i] = models.TransactionLine{
			LineID:        line.LineID,
			TransactionID: line.TransactionID,
			AccountID:     line.AccountID,
			DebitAmount:   line.DebitAmount,
			CreditAmount:  line.CreditAmount,
		}
	}
	return lines
}

// ToDomainTransaction converts a model Transaction and its lines to a domain Transaction
func ToDomainTransaction(m models.Transaction, lines []models.TransactionLine) domain.Transaction {
	domainLines := make([]domain.TransactionLine, len(lines))
	for i, line := range lines {
		domainLines[i] = domain.TransactionLine{
			LineID:        line.LineID,
			TransactionID: line.TransactionID,
			AccountID:     line.AccountID,
			DebitAmount:   line.DebitAmount,
			CreditAmount:  line.CreditAmount,
		}
	}
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		CreatedAt:     m.TransactionDate,
		Description:   m.Description,
		Lines:         domainLines,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
