package pgsql

import (
	"context"
	"fmt"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	"github.com/finca-nomina/nomina_backend/internal/models"
	"github.com/finca-nomina/nomina_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCatalogRepository reads the seeded contract type and unit catalogs.
type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) *PgxCatalogRepository {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogReader = (*PgxCatalogRepository)(nil)

func (r *PgxCatalogRepository) ListContractTypes(ctx context.Context) ([]domain.ContractType, error) {
	query := `
		SELECT contract_type_id, name, description, applies_deductions, applies_sundays, applies_transport
		FROM contract_types ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contract types: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.ContractType])
	if err != nil {
		return nil, fmt.Errorf("failed to scan contract types: %w", err)
	}
	out := make([]domain.ContractType, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainContractType(m)
	}
	return out, nil
}

func (r *PgxCatalogRepository) FindContractTypeByID(ctx context.Context, contractTypeID string) (*domain.ContractType, error) {
	var m models.ContractType
	err := r.Pool.QueryRow(ctx, `
		SELECT contract_type_id, name, description, applies_deductions, applies_sundays, applies_transport
		FROM contract_types WHERE contract_type_id = $1;`, contractTypeID).
		Scan(&m.ContractTypeID, &m.Name, &m.Description, &m.AppliesDeductions, &m.AppliesSundays, &m.AppliesTransport)
	if err != nil {
		return nil, notFoundOr(err, "contract type "+contractTypeID)
	}
	ct := mapping.ToDomainContractType(m)
	return &ct, nil
}

func (r *PgxCatalogRepository) ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error) {
	rows, err := r.Pool.Query(ctx, `SELECT unit_id, name, description FROM units_of_measure ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.UnitOfMeasure])
	if err != nil {
		return nil, fmt.Errorf("failed to scan units: %w", err)
	}
	out := make([]domain.UnitOfMeasure, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainUnit(m)
	}
	return out, nil
}

func (r *PgxCatalogRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.UnitOfMeasure, error) {
	var m models.UnitOfMeasure
	err := r.Pool.QueryRow(ctx, `SELECT unit_id, name, description FROM units_of_measure WHERE unit_id = $1;`, unitID).
		Scan(&m.UnitID, &m.Name, &m.Description)
	if err != nil {
		return nil, notFoundOr(err, "unit "+unitID)
	}
	unit := mapping.ToDomainUnit(m)
	return &unit, nil
}
