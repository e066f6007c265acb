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

const workerSelect = `
	SELECT w.worker_id, w.first_names, w.last_names, w.document_type, w.document_number, w.document_place,
		w.birth_date, w.phone, w.address, w.email, w.eps, w.contract_type_id, ct.name, w.hire_date,
		w.retire_date, w.status, w.bank_account_number, w.bank,
		w.created_at, w.created_by, w.last_updated_at, w.last_updated_by`

type PgxWorkerRepository struct {
	BaseRepository
}

func newPgxWorkerRepository(pool *pgxpool.Pool) *PgxWorkerRepository {
	return &PgxWorkerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

func scanWorker(row pgx.Row, total *int) (models.Worker, error) {
	var m models.Worker
	dest := []any{
		&m.WorkerID, &m.FirstNames, &m.LastNames, &m.DocumentType, &m.DocumentNumber, &m.DocumentPlace,
		&m.BirthDate, &m.Phone, &m.Address, &m.Email, &m.EPS, &m.ContractTypeID, &m.ContractTypeName, &m.HireDate,
		&m.RetireDate, &m.Status, &m.BankAccountNumber, &m.Bank,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
	if total != nil {
		dest = append(dest, total)
	}
	err := row.Scan(dest...)
	return m, err
}

func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		INSERT INTO workers (
			worker_id, first_names, last_names, document_type, document_number, document_place,
			birth_date, phone, address, email, eps, contract_type_id, hire_date,
			retire_date, status, bank_account_number, bank,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WorkerID, m.FirstNames, m.LastNames, m.DocumentType, m.DocumentNumber, m.DocumentPlace,
		m.BirthDate, m.Phone, m.Address, m.Email, m.EPS, m.ContractTypeID, m.HireDate,
		m.RetireDate, m.Status, m.BankAccountNumber, m.Bank,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "worker with document "+worker.DocumentNumber)
	}
	return nil
}

func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	query := workerSelect + `
		FROM workers w
		JOIN contract_types ct ON ct.contract_type_id = w.contract_type_id
		WHERE w.worker_id = $1;`
	m, err := scanWorker(r.Pool.QueryRow(ctx, query, workerID), nil)
	if err != nil {
		return nil, notFoundOr(err, "worker "+workerID)
	}
	worker := mapping.ToDomainWorker(m)
	return &worker, nil
}

func (r *PgxWorkerRepository) ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, int, error) {
	var where whereBuilder
	if filter.Status != nil {
		where.add("w.status = ?", string(*filter.Status))
	}
	if filter.ContractTypeID != nil {
		where.add("w.contract_type_id = ?", *filter.ContractTypeID)
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		where.add("(w.first_names ILIKE ? OR w.last_names ILIKE ? OR w.document_number ILIKE ?)", p, p, p)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := workerSelect + `, count(*) OVER ()
		FROM workers w
		JOIN contract_types ct ON ct.contract_type_id = w.contract_type_id` +
		where.sql() +
		` ORDER BY w.last_names, w.first_names, w.worker_id LIMIT ` + where.arg(limit) + ` OFFSET ` + where.arg(max(filter.Offset, 0)) + `;`

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	total := 0
	workers := []domain.Worker{}
	for rows.Next() {
		m, err := scanWorker(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, mapping.ToDomainWorker(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating worker rows: %w", err)
	}
	return workers, total, nil
}

func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		UPDATE workers
		SET first_names = $2, last_names = $3, document_place = $4, phone = $5, address = $6,
			email = $7, eps = $8, contract_type_id = $9, retire_date = $10, status = $11,
			bank_account_number = $12, bank = $13, last_updated_at = $14, last_updated_by = $15
		WHERE worker_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.WorkerID, m.FirstNames, m.LastNames, m.DocumentPlace, m.Phone, m.Address,
		m.Email, m.EPS, m.ContractTypeID, m.RetireDate, m.Status,
		m.BankAccountNumber, m.Bank, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "worker "+worker.WorkerID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: worker %s", apperrors.ErrNotFound, worker.WorkerID)
	}
	return nil
}
