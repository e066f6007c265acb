package pgsql

import (
	"context"
	"fmt"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	"github.com/finca-nomina/nomina_backend/internal/models"
	"github.com/finca-nomina/nomina_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const payPeriodColumns = `pay_period_id, year, month, number, start_date, end_date, registration_deadline, status, created_at`

type PgxPayPeriodRepository struct {
	BaseRepository
}

func newPgxPayPeriodRepository(pool *pgxpool.Pool) *PgxPayPeriodRepository {
	return &PgxPayPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayPeriodRepositoryWithTx = (*PgxPayPeriodRepository)(nil)

func payPeriodArgs(p domain.PayPeriod) []any {
	return []any{p.PayPeriodID, p.Year, p.Month, p.Number, p.StartDate, p.EndDate, p.RegistrationDeadline, string(p.Status), p.CreatedAt}
}

func (r *PgxPayPeriodRepository) SavePayPeriod(ctx context.Context, period domain.PayPeriod) error {
	query := `INSERT INTO pay_periods (` + payPeriodColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	if _, err := r.Pool.Exec(ctx, query, payPeriodArgs(period)...); err != nil {
		return translateWriteError(err, "quincena "+period.Label())
	}
	return nil
}

func (r *PgxPayPeriodRepository) SavePayPeriodIfAbsent(ctx context.Context, period domain.PayPeriod) (bool, error) {
	query := `INSERT INTO pay_periods (` + payPeriodColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (year, month, number) DO NOTHING;`
	cmdTag, err := r.Pool.Exec(ctx, query, payPeriodArgs(period)...)
	if err != nil {
		return false, translateWriteError(err, "quincena "+period.Label())
	}
	return cmdTag.RowsAffected() == 1, nil
}

func (r *PgxPayPeriodRepository) findOne(ctx context.Context, q querier, what, query string, args ...any) (*domain.PayPeriod, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[models.PayPeriod])
	if err != nil {
		return nil, notFoundOr(err, what)
	}
	period := mapping.ToDomainPayPeriod(m)
	return &period, nil
}

func (r *PgxPayPeriodRepository) FindPayPeriodByID(ctx context.Context, payPeriodID string) (*domain.PayPeriod, error) {
	return r.findOne(ctx, r.Pool, "quincena "+payPeriodID,
		`SELECT `+payPeriodColumns+` FROM pay_periods WHERE pay_period_id = $1;`, payPeriodID)
}

func (r *PgxPayPeriodRepository) FindPayPeriodByKey(ctx context.Context, year, month, number int) (*domain.PayPeriod, error) {
	return r.findOne(ctx, r.Pool, fmt.Sprintf("quincena %04d-%02d-Q%d", year, month, number),
		`SELECT `+payPeriodColumns+` FROM pay_periods WHERE year = $1 AND month = $2 AND number = $3;`, year, month, number)
}

func (r *PgxPayPeriodRepository) ListPayPeriods(ctx context.Context, year *int) ([]domain.PayPeriod, error) {
	var where whereBuilder
	if year != nil {
		where.add("year = ?", *year)
	}
	query := `SELECT ` + payPeriodColumns + ` FROM pay_periods` + where.sql() + ` ORDER BY start_date DESC;`
	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quincenas: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.PayPeriod])
	if err != nil {
		return nil, fmt.Errorf("failed to scan quincenas: %w", err)
	}
	periods := make([]domain.PayPeriod, len(ms))
	for i, m := range ms {
		periods[i] = mapping.ToDomainPayPeriod(m)
	}
	return periods, nil
}

func (r *PgxPayPeriodRepository) FindPayPeriodForUpdate(ctx context.Context, tx pgx.Tx, payPeriodID string) (*domain.PayPeriod, error) {
	return r.findOne(ctx, tx, "quincena "+payPeriodID,
		`SELECT `+payPeriodColumns+` FROM pay_periods WHERE pay_period_id = $1 FOR UPDATE;`, payPeriodID)
}

func (r *PgxPayPeriodRepository) UpdatePayPeriodStatusInTx(ctx context.Context, tx pgx.Tx, payPeriodID string, status domain.PayPeriodStatus) error {
	cmdTag, err := tx.Exec(ctx, `UPDATE pay_periods SET status = $2 WHERE pay_period_id = $1;`, payPeriodID, string(status))
	if err != nil {
		return translateWriteError(err, "quincena "+payPeriodID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: quincena %s", apperrors.ErrNotFound, payPeriodID)
	}
	return nil
}
