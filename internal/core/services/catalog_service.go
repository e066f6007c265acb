package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/utils"
	"github.com/shopspring/decimal"
)

const tableLabors = "labors"

type catalogService struct {
	BaseService
	roleRepo    portsrepo.RoleReader
	catalogRepo portsrepo.CatalogReader
}

// NewCatalogService creates the read-only catalog service.
func NewCatalogService(roleRepo portsrepo.RoleReader, catalogRepo portsrepo.CatalogReader, options ...ServiceOption) portssvc.CatalogSvcFacade {
	return &catalogService{
		BaseService: newBaseService(options...),
		roleRepo:    roleRepo,
		catalogRepo: catalogRepo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roles")
		return nil, err
	}
	return roles, nil
}

func (s *catalogService) ListContractTypes(ctx context.Context) ([]domain.ContractType, error) {
	types, err := s.catalogRepo.ListContractTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contract types")
		return nil, err
	}
	return types, nil
}

func (s *catalogService) ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error) {
	units, err := s.catalogRepo.ListUnits(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list units")
		return nil, err
	}
	return units, nil
}

type laborService struct {
	BaseService
	laborRepo   portsrepo.LaborRepositoryFacade
	catalogRepo portsrepo.CatalogReader
	vigency     portssvc.VigencySvcFacade
}

// NewLaborService creates the labor catalog service. Prices are read through vigency.
func NewLaborService(laborRepo portsrepo.LaborRepositoryFacade, catalogRepo portsrepo.CatalogReader, vigency portssvc.VigencySvcFacade, options ...ServiceOption) portssvc.LaborSvcFacade {
	return &laborService{
		BaseService: newBaseService(options...),
		laborRepo:   laborRepo,
		catalogRepo: catalogRepo,
		vigency:     vigency,
	}
}

var _ portssvc.LaborSvcFacade = (*laborService)(nil)

func (s *laborService) unit(ctx context.Context, unitID string) (*domain.UnitOfMeasure, error) {
	unit, err := s.catalogRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: unknown unit %s", apperrors.ErrValidation, unitID)
		}
		return nil, err
	}
	return unit, nil
}

func (s *laborService) CreateLabor(ctx context.Context, actor domain.Actor, req dto.CreateLaborRequest) (*domain.Labor, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}
	unit, err := s.unit(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}

	labor := domain.Labor{
		LaborID:      s.NewID(),
		Code:         utils.NormalizeCode(req.Code),
		Name:         utils.NormalizeText(req.Name),
		Description:  req.Description,
		UnitID:       unit.UnitID,
		UnitName:     unit.Name,
		IsSpecial:    req.IsSpecial,
		ContractOnly: req.ContractOnly,
		Active:       true,
		AuditFields:  domain.NewAuditFields(actor.UserID, s.Now()),
	}

	if err := s.laborRepo.SaveLabor(ctx, labor); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: labor code %s is taken", apperrors.ErrDuplicate, req.Code)
		}
		s.LogError(ctx, err, "Failed to save labor", slog.String("code", req.Code))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditCreate, tableLabors, labor.LaborID, nil, labor)
	return &labor, nil
}

func (s *laborService) GetLabor(ctx context.Context, laborID string) (*domain.Labor, *decimal.Decimal, error) {
	labor, err := s.laborRepo.FindLaborByID(ctx, laborID)
	if err != nil {
		return nil, nil, err
	}

	w, err := s.vigency.CurrentValue(ctx, domain.LaborPriceSubject(laborID), s.Now())
	if err != nil {
		if isNotFound(err) {
			return labor, nil, nil
		}
		s.LogError(ctx, err, "Failed to resolve labor price", slog.String("labor_id", laborID))
		return nil, nil, err
	}
	price := w.Value
	return labor, &price, nil
}

func (s *laborService) ListLabors(ctx context.Context, filter domain.LaborFilter) ([]domain.Labor, int, error) {
	filter.Search = utils.NormalizeText(filter.Search)
	labors, total, err := s.laborRepo.ListLabors(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list labors")
		return nil, 0, err
	}
	if labors == nil {
		labors = []domain.Labor{}
	}
	return labors, total, nil
}

func (s *laborService) UpdateLabor(ctx context.Context, actor domain.Actor, laborID string, req dto.UpdateLaborRequest) (*domain.Labor, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	labor, err := s.laborRepo.FindLaborByID(ctx, laborID)
	if err != nil {
		return nil, err
	}
	before := *labor

	if req.Name != nil {
		labor.Name = utils.NormalizeText(*req.Name)
	}
	if req.Description != nil {
		labor.Description = *req.Description
	}
	if req.UnitID != nil && *req.UnitID != labor.UnitID {
		unit, err := s.unit(ctx, *req.UnitID)
		if err != nil {
			return nil, err
		}
		labor.UnitID = unit.UnitID
		labor.UnitName = unit.Name
	}
	if req.IsSpecial != nil {
		labor.IsSpecial = *req.IsSpecial
	}
	if req.ContractOnly != nil {
		labor.ContractOnly = *req.ContractOnly
	}
	if req.Active != nil {
		labor.Active = *req.Active
	}
	labor.Touch(actor.UserID, s.Now())

	if err := s.laborRepo.UpdateLabor(ctx, *labor); err != nil {
		s.LogError(ctx, err, "Failed to update labor", slog.String("labor_id", laborID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tableLabors, laborID, before, labor)
	return labor, nil
}
