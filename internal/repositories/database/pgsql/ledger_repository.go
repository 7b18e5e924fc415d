package pgsql

import (
	"context"
	"fmt"

	"github.com/harborbytes/booklion/internal/core/domain"
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a repository for the joined ledger view.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerReader {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// FindLedgerLines joins lines, headers and accounts into the flat view the
// aggregation helpers consume. Filters are optional; lines come back ordered
// by transaction date ascending.
func (r *PgxLedgerRepository) FindLedgerLines(ctx context.Context, userID string, filter portsrepo.LedgerFilter) ([]domain.LedgerLine, error) {
	query := `
		SELECT t.transaction_date, t.description, a.account_type, a.number, a.name, l.debit_amount, l.credit_amount, t.transaction_id
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		JOIN accounts a ON a.account_id = l.account_id
		WHERE t.user_id = $1
	`
	args := []any{userID}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		query += fmt.Sprintf(" AND l.account_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND t.transaction_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND t.transaction_date < $%d", len(args))
	}
	query += " ORDER BY t.transaction_date, t.transaction_id;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines for user %s: %w", userID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		err := rows.Scan(
			&line.Date,
			&line.Description,
			&line.AccountType,
			&line.AccountNumber,
			&line.AccountName,
			&line.Debit,
			&line.Credit,
			&line.TransactionID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger line for user %s: %w", userID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger lines for user %s: %w", userID, err)
	}
	return lines, nil
}
