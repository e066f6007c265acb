package repositories

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PayPeriodReader defines read operations for quincenas
type PayPeriodReader interface {
	FindPayPeriodByID(ctx context.Context, payPeriodID string) (*domain.PayPeriod, error)
	FindPayPeriodByKey(ctx context.Context, year, month, number int) (*domain.PayPeriod, error)
	// ListPayPeriods returns quincenas newest first, optionally restricted to a year.
	ListPayPeriods(ctx context.Context, year *int) ([]domain.PayPeriod, error)
}

// PayPeriodWriter defines write operations for quincenas
type PayPeriodWriter interface {
	// SavePayPeriod persists a new quincena. A taken (year, month, number) yields ErrDuplicate.
	SavePayPeriod(ctx context.Context, period domain.PayPeriod) error

	// SavePayPeriodIfAbsent inserts period unless its key exists and reports whether it inserted.
	SavePayPeriodIfAbsent(ctx context.Context, period domain.PayPeriod) (bool, error)
}

// PayPeriodTxWriter defines quincena operations inside a caller-owned transaction.
type PayPeriodTxWriter interface {
	FindPayPeriodForUpdate(ctx context.Context, tx pgx.Tx, payPeriodID string) (*domain.PayPeriod, error)
	UpdatePayPeriodStatusInTx(ctx context.Context, tx pgx.Tx, payPeriodID string, status domain.PayPeriodStatus) error
}

// PayPeriodRepositoryWithTx combines the quincena interfaces with transaction control
type PayPeriodRepositoryWithTx interface {
	PayPeriodReader
	PayPeriodWriter
	PayPeriodTxWriter
	TransactionManager
}
