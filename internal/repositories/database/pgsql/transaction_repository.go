package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harborbytes/booklion/internal/apperrors"
	"github.com/harborbytes/booklion/internal/core/domain"
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	"github.com/harborbytes/booklion/internal/models"
	"github.com/harborbytes/booklion/internal/utils/mapping"
	"github.com/harborbytes/booklion/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, transaction_date, description, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, transaction_id, account_id, debit_amount, credit_amount`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts the header and all lines inside one database
// transaction, so a partially written entry can never be observed.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op after a successful commit

	header := mapping.ToModelTransaction(transaction)
	headerQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, headerQuery,
		header.TransactionID,
		header.UserID,
		header.TransactionDate,
		header.Description,
		header.CreatedAt,
		header.CreatedBy,
		header.LastUpdatedAt,
		header.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, header.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", header.TransactionID, err)
	}

	lineQuery := `
		INSERT INTO transaction_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, line := range mapping.ToModelTransactionLines(transaction) {
		batch.Queue(lineQuery, line.LineID, line.TransactionID, line.AccountID, line.DebitAmount, line.CreditAmount)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert line %d of transaction %s: %w", i, header.TransactionID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close line insert batch for transaction %s: %w", header.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction header together with its lines.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID string, transactionID string) (*domain.Transaction, error) {
	headerQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	var header models.Transaction
	err := r.Pool.QueryRow(ctx, headerQuery, transactionID, userID).Scan(
		&header.TransactionID,
		&header.UserID,
		&header.TransactionDate,
		&header.Description,
		&header.CreatedAt,
		&header.CreatedBy,
		&header.LastUpdatedAt,
		&header.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	lines, err := r.findLines(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	txn := mapping.ToDomainTransaction(header, lines)
	return &txn, nil
}

func (r *PgxTransactionRepository) findLines(ctx context.Context, transactionID string) ([]models.TransactionLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM transaction_lines
		WHERE transaction_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	lines := []models.TransactionLine{}
	for rows.Next() {
		var line models.TransactionLine
		if err := rows.Scan(&line.LineID, &line.TransactionID, &line.AccountID, &line.DebitAmount, &line.CreditAmount); err != nil {
			return nil, fmt.Errorf("failed to scan line for transaction %s: %w", transactionID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lines for transaction %s: %w", transactionID, err)
	}
	return lines, nil
}

// ListTransactionsByUser retrieves a page of transactions, newest first,
// with keyset pagination over (transaction_date, transaction_id).
func (r *PgxTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []any{userID, limit + 1}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
	`
	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		cursorDate, err := time.Parse(time.RFC3339Nano, fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (transaction_date, transaction_id) < ($3, $4)`
		args = append(args, cursorDate, fields[1])
	}
	query += `
		ORDER BY transaction_date DESC, transaction_id DESC
		LIMIT $2;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	headers := []models.Transaction{}
	for rows.Next() {
		var header models.Transaction
		err := rows.Scan(
			&header.TransactionID,
			&header.UserID,
			&header.TransactionDate,
			&header.Description,
			&header.CreatedAt,
			&header.CreatedBy,
			&header.LastUpdatedAt,
			&header.LastUpdatedBy,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, err)
		}
		headers = append(headers, header)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, err)
	}

	var newToken *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[len(headers)-1]
		token := pagination.EncodeMultiFieldToken(last.TransactionDate.Format(time.RFC3339Nano), last.TransactionID)
		newToken = &token
	}

	if len(headers) == 0 {
		return []domain.Transaction{}, nil, nil
	}

	ids := make([]string, len(headers))
	for i, header := range headers {
		ids[i] = header.TransactionID
	}
	linesByTxn, err := r.findLinesByTransactionIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	txns := make([]domain.Transaction, len(headers))
	for i, header := range headers {
		txns[i] = mapping.ToDomainTransaction(header, linesByTxn[header.TransactionID])
	}
	return txns, newToken, nil
}

func (r *PgxTransactionRepository) findLinesByTransactionIDs(ctx context.Context, transactionIDs []string) (map[string][]models.TransactionLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM transaction_lines
		WHERE transaction_id = ANY($1)
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for transaction batch: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]models.TransactionLine)
	for rows.Next() {
		var line models.TransactionLine
		if err := rows.Scan(&line.LineID, &line.TransactionID, &line.AccountID, &line.DebitAmount, &line.CreditAmount); err != nil {
			return nil, fmt.Errorf("failed to scan line during batch fetch: %w", err)
		}
		result[line.TransactionID] = append(result[line.TransactionID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lines during batch fetch: %w", err)
	}
	return result, nil
}

// CountLinesByAccountID returns how many lines reference the account.
func (r *PgxTransactionRepository) CountLinesByAccountID(ctx context.Context, userID string, accountID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM transaction_lines l
		JOIN transactions t ON t.transaction_id = l.transaction_id
		WHERE t.user_id = $1 AND l.account_id = $2;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, userID, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lines for account %s: %w", accountID, err)
	}
	return count, nil
}

// UpdateTransactionDescription updates the description of a transaction.
func (r *PgxTransactionRepository) UpdateTransactionDescription(ctx context.Context, userID string, transactionID string, description string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE transactions
		SET description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, userID, description, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction; its lines go with it through
// the ON DELETE CASCADE on transaction_lines.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID string, transactionID string) error {
	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
