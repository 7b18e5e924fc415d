package repositories

import (
	"context"
	"time"

	"github.com/harborbytes/booklion/internal/core/domain"
)

// LedgerFilter narrows a ledger query. Nil fields are ignored.
type LedgerFilter struct {
	// AccountID restricts lines to a single account.
	AccountID *string

	// From includes only lines whose transaction date is at or after this instant.
	From *time.Time

	// To includes only lines whose transaction date is strictly before this instant.
	To *time.Time
}

// LedgerReader defines read operations over the joined ledger view of a user's
// transactions. Each returned line carries the account's number, name and type
// so callers can aggregate without further lookups.
type LedgerReader interface {
	// FindLedgerLines retrieves all matching lines ordered by transaction date ascending.
	FindLedgerLines(ctx context.Context, userID string, filter LedgerFilter) ([]domain.LedgerLine, error)
}
