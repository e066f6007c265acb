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

const laborSelect = `
	SELECT l.labor_id, l.code, l.name, l.description, l.unit_id, u.name, l.is_special, l.contract_only, l.active,
		l.created_at, l.created_by, l.last_updated_at, l.last_updated_by`

type PgxLaborRepository struct {
	BaseRepository
}

func newPgxLaborRepository(pool *pgxpool.Pool) *PgxLaborRepository {
	return &PgxLaborRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LaborRepositoryFacade = (*PgxLaborRepository)(nil)

func scanLabor(row pgx.Row, total *int) (models.Labor, error) {
	var m models.Labor
	dest := []any{
		&m.LaborID, &m.Code, &m.Name, &m.Description, &m.UnitID, &m.UnitName, &m.IsSpecial, &m.ContractOnly, &m.Active,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	}
	if total != nil {
		dest = append(dest, total)
	}
	err := row.Scan(dest...)
	return m, err
}

func (r *PgxLaborRepository) SaveLabor(ctx context.Context, labor domain.Labor) error {
	m := mapping.ToModelLabor(labor)
	query := `
		INSERT INTO labors (labor_id, code, name, description, unit_id, is_special, contract_only, active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LaborID, m.Code, m.Name, m.Description, m.UnitID, m.IsSpecial, m.ContractOnly, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "labor with code "+labor.Code)
	}
	return nil
}

func (r *PgxLaborRepository) FindLaborByID(ctx context.Context, laborID string) (*domain.Labor, error) {
	query := laborSelect + `
		FROM labors l
		JOIN units_of_measure u ON u.unit_id = l.unit_id
		WHERE l.labor_id = $1;`
	m, err := scanLabor(r.Pool.QueryRow(ctx, query, laborID), nil)
	if err != nil {
		return nil, notFoundOr(err, "labor "+laborID)
	}
	labor := mapping.ToDomainLabor(m)
	return &labor, nil
}

func (r *PgxLaborRepository) ListLabors(ctx context.Context, filter domain.LaborFilter) ([]domain.Labor, int, error) {
	var where whereBuilder
	if filter.Active != nil {
		where.add("l.active = ?", *filter.Active)
	}
	if filter.UnitID != nil {
		where.add("l.unit_id = ?", *filter.UnitID)
	}
	if filter.IsSpecial != nil {
		where.add("l.is_special = ?", *filter.IsSpecial)
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		where.add("(l.code ILIKE ? OR l.name ILIKE ?)", p, p)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := laborSelect + `, count(*) OVER ()
		FROM labors l
		JOIN units_of_measure u ON u.unit_id = l.unit_id` +
		where.sql() +
		` ORDER BY l.code LIMIT ` + where.arg(limit) + ` OFFSET ` + where.arg(max(filter.Offset, 0)) + `;`

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query labors: %w", err)
	}
	defer rows.Close()

	total := 0
	labors := []domain.Labor{}
	for rows.Next() {
		m, err := scanLabor(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan labor: %w", err)
		}
		labors = append(labors, mapping.ToDomainLabor(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating labor rows: %w", err)
	}
	return labors, total, nil
}

func (r *PgxLaborRepository) UpdateLabor(ctx context.Context, labor domain.Labor) error {
	m := mapping.ToModelLabor(labor)
	query := `
		UPDATE labors
		SET name = $2, description = $3, unit_id = $4, is_special = $5, contract_only = $6, active = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE labor_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.LaborID, m.Name, m.Description, m.UnitID, m.IsSpecial, m.ContractOnly, m.Active,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "labor "+labor.LaborID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: labor %s", apperrors.ErrNotFound, labor.LaborID)
	}
	return nil
}
