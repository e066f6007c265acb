package pgsql

import (
	"context"
	"fmt"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	"github.com/finca-nomina/nomina_backend/internal/models"
	"github.com/finca-nomina/nomina_backend/internal/utils/mapping"
	"github.com/finca-nomina/nomina_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const laborRecordColumns = `record_id, worker_id, labor_id, pay_period_id, record_date, quantity, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxLaborRecordRepository struct {
	BaseRepository
}

func newPgxLaborRecordRepository(pool *pgxpool.Pool) *PgxLaborRecordRepository {
	return &PgxLaborRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LaborRecordRepositoryFacade = (*PgxLaborRecordRepository)(nil)

func collectLaborRecords(rows pgx.Rows) ([]domain.LaborRecord, error) {
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.LaborRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan labor records: %w", err)
	}
	records := make([]domain.LaborRecord, len(ms))
	for i, m := range ms {
		records[i] = mapping.ToDomainLaborRecord(m)
	}
	return records, nil
}

func (r *PgxLaborRecordRepository) SaveLaborRecord(ctx context.Context, record domain.LaborRecord) error {
	m := mapping.ToModelLaborRecord(record)
	query := `INSERT INTO labor_records (` + laborRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.WorkerID, m.LaborID, m.PayPeriodID, m.Date, m.Quantity, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "labor record "+record.RecordID)
	}
	return nil
}

func (r *PgxLaborRecordRepository) FindLaborRecordByID(ctx context.Context, recordID string) (*domain.LaborRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+laborRecordColumns+` FROM labor_records WHERE record_id = $1;`, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labor record %s: %w", recordID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[models.LaborRecord])
	if err != nil {
		return nil, notFoundOr(err, "labor record "+recordID)
	}
	record := mapping.ToDomainLaborRecord(m)
	return &record, nil
}

// ListLaborRecords pages with a keyset on (record_date, created_at, record_id), fetching
// one extra row to know whether another page exists.
func (r *PgxLaborRecordRepository) ListLaborRecords(ctx context.Context, filter domain.LaborRecordFilter) ([]domain.LaborRecord, *string, error) {
	var where whereBuilder
	if filter.WorkerID != nil {
		where.add("worker_id = ?", *filter.WorkerID)
	}
	if filter.PayPeriodID != nil {
		where.add("pay_period_id = ?", *filter.PayPeriodID)
	}
	if filter.LaborID != nil {
		where.add("labor_id = ?", *filter.LaborID)
	}
	if filter.DateFrom != nil {
		where.add("record_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		where.add("record_date <= ?", *filter.DateTo)
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		where.add("(record_date, created_at, record_id) < (?, ?, ?)", cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + laborRecordColumns + ` FROM labor_records` + where.sql() +
		` ORDER BY record_date DESC, created_at DESC, record_id DESC LIMIT ` + where.arg(limit+1) + `;`
	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query labor records: %w", err)
	}
	records, err := collectLaborRecords(rows)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(records) > limit {
		records = records[:limit]
		last := records[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.RecordID})
		next = &token
	}
	return records, next, nil
}

func (r *PgxLaborRecordRepository) ListLaborRecordsForPayrollInTx(ctx context.Context, tx pgx.Tx, workerID, payPeriodID string) ([]domain.LaborRecord, error) {
	query := `SELECT ` + laborRecordColumns + `
		FROM labor_records WHERE worker_id = $1 AND pay_period_id = $2
		ORDER BY record_date, created_at, record_id;`
	rows, err := tx.Query(ctx, query, workerID, payPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query labor records for payroll: %w", err)
	}
	return collectLaborRecords(rows)
}

func (r *PgxLaborRecordRepository) UpdateLaborRecord(ctx context.Context, record domain.LaborRecord) error {
	m := mapping.ToModelLaborRecord(record)
	query := `
		UPDATE labor_records
		SET labor_id = $2, pay_period_id = $3, record_date = $4, quantity = $5, notes = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE record_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.RecordID, m.LaborID, m.PayPeriodID, m.Date, m.Quantity, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "labor record "+record.RecordID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: labor record %s", apperrors.ErrNotFound, record.RecordID)
	}
	return nil
}

func (r *PgxLaborRecordRepository) DeleteLaborRecord(ctx context.Context, recordID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM labor_records WHERE record_id = $1;`, recordID)
	if err != nil {
		return translateWriteError(err, "labor record "+recordID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: labor record %s", apperrors.ErrNotFound, recordID)
	}
	return nil
}
