package repositories

import (
	"context"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// VigencyReader defines read operations over priced windows
type VigencyReader interface {
	// ListWindows returns every window of subject ordered by valid_from.
	ListWindows(ctx context.Context, subject domain.Subject) ([]domain.PricedWindow, error)

	// FindWindowsCoveringDate returns the windows of subject whose interval contains d.
	FindWindowsCoveringDate(ctx context.Context, subject domain.Subject, d time.Time) ([]domain.PricedWindow, error)
}

// VigencyTxWriter defines the transactional steps of opening a window.
type VigencyTxWriter interface {
	// LockSubject serializes concurrent window changes of subject until tx ends.
	LockSubject(ctx context.Context, tx pgx.Tx, subject domain.Subject) error

	// FindWindowsForUpdate returns every window of subject, row-locked.
	FindWindowsForUpdate(ctx context.Context, tx pgx.Tx, subject domain.Subject) ([]domain.PricedWindow, error)

	// CloseWindowsInTx sets valid_until on the given windows.
	CloseWindowsInTx(ctx context.Context, tx pgx.Tx, windowIDs []string, validUntil time.Time, userID string, now time.Time) error

	// InsertWindowInTx persists a new window.
	InsertWindowInTx(ctx context.Context, tx pgx.Tx, w domain.PricedWindow) error
}

// VigencyRepositoryWithTx combines the vigency interfaces with transaction control
type VigencyRepositoryWithTx interface {
	VigencyReader
	VigencyTxWriter
	TransactionManager
}
