package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	"github.com/finca-nomina/nomina_backend/internal/models"
	"github.com/finca-nomina/nomina_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const windowColumns = `window_id, subject_kind, subject_id, value, valid_from, valid_until, description,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxVigencyRepository stores the priced windows of labor prices and payroll variables.
type PgxVigencyRepository struct {
	BaseRepository
}

func newPgxVigencyRepository(pool *pgxpool.Pool) *PgxVigencyRepository {
	return &PgxVigencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VigencyRepositoryWithTx = (*PgxVigencyRepository)(nil)

func collectWindows(rows pgx.Rows) ([]domain.PricedWindow, error) {
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.PricedWindow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan priced windows: %w", err)
	}
	windows := make([]domain.PricedWindow, len(ms))
	for i, m := range ms {
		windows[i] = mapping.ToDomainPricedWindow(m)
	}
	return windows, nil
}

func (r *PgxVigencyRepository) listWindows(ctx context.Context, q querier, subject domain.Subject, suffix string) ([]domain.PricedWindow, error) {
	query := `SELECT ` + windowColumns + `
		FROM priced_windows
		WHERE subject_kind = $1 AND subject_id = $2
		ORDER BY valid_from` + suffix + `;`
	rows, err := q.Query(ctx, query, string(subject.Kind), subject.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query windows of %s: %w", subject, err)
	}
	return collectWindows(rows)
}

func (r *PgxVigencyRepository) ListWindows(ctx context.Context, subject domain.Subject) ([]domain.PricedWindow, error) {
	return r.listWindows(ctx, r.Pool, subject, "")
}

func (r *PgxVigencyRepository) FindWindowsCoveringDate(ctx context.Context, subject domain.Subject, d time.Time) ([]domain.PricedWindow, error) {
	query := `SELECT ` + windowColumns + `
		FROM priced_windows
		WHERE subject_kind = $1 AND subject_id = $2
			AND valid_from <= $3 AND (valid_until IS NULL OR valid_until >= $3)
		ORDER BY valid_from;`
	rows, err := r.Pool.Query(ctx, query, string(subject.Kind), subject.ID, d)
	if err != nil {
		return nil, fmt.Errorf("failed to query windows of %s covering %s: %w", subject, d.Format(time.DateOnly), err)
	}
	return collectWindows(rows)
}

func (r *PgxVigencyRepository) LockSubject(ctx context.Context, tx pgx.Tx, subject domain.Subject) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, subject.String()); err != nil {
		return fmt.Errorf("failed to lock %s: %w", subject, err)
	}
	return nil
}

func (r *PgxVigencyRepository) FindWindowsForUpdate(ctx context.Context, tx pgx.Tx, subject domain.Subject) ([]domain.PricedWindow, error) {
	return r.listWindows(ctx, tx, subject, " FOR UPDATE")
}

func (r *PgxVigencyRepository) CloseWindowsInTx(ctx context.Context, tx pgx.Tx, windowIDs []string, validUntil time.Time, userID string, now time.Time) error {
	if len(windowIDs) == 0 {
		return nil
	}
	query := `
		UPDATE priced_windows
		SET valid_until = $2, last_updated_at = $3, last_updated_by = $4
		WHERE window_id = ANY($1);
	`
	if _, err := tx.Exec(ctx, query, windowIDs, validUntil, now, userID); err != nil {
		return translateWriteError(err, "priced window")
	}
	return nil
}

func (r *PgxVigencyRepository) InsertWindowInTx(ctx context.Context, tx pgx.Tx, w domain.PricedWindow) error {
	m := mapping.ToModelPricedWindow(w)
	query := `INSERT INTO priced_windows (` + windowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := tx.Exec(ctx, query,
		m.WindowID, m.SubjectKind, m.SubjectID, m.Value, m.ValidFrom, m.ValidUntil, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, fmt.Sprintf("window of %s from %s", w.Subject, w.ValidFrom.Format(time.DateOnly)))
	}
	return nil
}
