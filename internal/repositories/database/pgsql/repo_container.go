package pgsql

import (
	portsrepo "github.com/harborbytes/booklion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		LedgerRepo:      newPgxLedgerRepository(dbPool),
	}
}
