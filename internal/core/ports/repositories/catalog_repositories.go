package repositories

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// CatalogReader reads the seeded contract type and unit catalogs.
type CatalogReader interface {
	ListContractTypes(ctx context.Context) ([]domain.ContractType, error)
	FindContractTypeByID(ctx context.Context, contractTypeID string) (*domain.ContractType, error)
	ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error)
	FindUnitByID(ctx context.Context, unitID string) (*domain.UnitOfMeasure, error)
}

// LaborReader defines read operations for the labor catalog
type LaborReader interface {
	FindLaborByID(ctx context.Context, laborID string) (*domain.Labor, error)
	ListLabors(ctx context.Context, filter domain.LaborFilter) ([]domain.Labor, int, error)
}

// LaborWriter defines write operations for the labor catalog
type LaborWriter interface {
	// SaveLabor persists a new labor. A taken code yields ErrDuplicate.
	SaveLabor(ctx context.Context, labor domain.Labor) error
	UpdateLabor(ctx context.Context, labor domain.Labor) error
}

// LaborRepositoryFacade combines all labor-related repository interfaces
type LaborRepositoryFacade interface {
	LaborReader
	LaborWriter
}
