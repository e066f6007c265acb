package services

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// CatalogSvcFacade exposes the seeded read-only catalogs.
type CatalogSvcFacade interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	ListContractTypes(ctx context.Context) ([]domain.ContractType, error)
	ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error)
}

// LaborSvcFacade manages the labor catalog.
type LaborSvcFacade interface {
	CreateLabor(ctx context.Context, actor domain.Actor, req dto.CreateLaborRequest) (*domain.Labor, error)

	// GetLabor returns the labor and the price in force today, nil when none is.
	GetLabor(ctx context.Context, laborID string) (*domain.Labor, *decimal.Decimal, error)

	ListLabors(ctx context.Context, filter domain.LaborFilter) ([]domain.Labor, int, error)
	UpdateLabor(ctx context.Context, actor domain.Actor, laborID string, req dto.UpdateLaborRequest) (*domain.Labor, error)
}
