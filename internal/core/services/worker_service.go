package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/utils"
)

const tableWorkers = "workers"

type workerService struct {
	BaseService
	workerRepo  portsrepo.WorkerRepositoryFacade
	catalogRepo portsrepo.CatalogReader
}

// NewWorkerService creates the worker management service.
func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade, catalogRepo portsrepo.CatalogReader, options ...ServiceOption) portssvc.WorkerSvcFacade {
	return &workerService{
		BaseService: newBaseService(options...),
		workerRepo:  workerRepo,
		catalogRepo: catalogRepo,
	}
}

var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

func (s *workerService) contractType(ctx context.Context, contractTypeID string) (*domain.ContractType, error) {
	ct, err := s.catalogRepo.FindContractTypeByID(ctx, contractTypeID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: unknown contract type %s", apperrors.ErrValidation, contractTypeID)
		}
		return nil, err
	}
	return ct, nil
}

func (s *workerService) CreateWorker(ctx context.Context, actor domain.Actor, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}
	if !req.DocumentType.IsValid() {
		return nil, fmt.Errorf("%w: invalid document type %q", apperrors.ErrValidation, req.DocumentType)
	}
	if req.HireDate.Before(req.BirthDate.Time) {
		return nil, fmt.Errorf("%w: hire date precedes birth date", apperrors.ErrValidation)
	}
	ct, err := s.contractType(ctx, req.ContractTypeID)
	if err != nil {
		return nil, err
	}

	worker := domain.Worker{
		WorkerID:          s.NewID(),
		FirstNames:        utils.NormalizeText(req.FirstNames),
		LastNames:         utils.NormalizeText(req.LastNames),
		DocumentType:      req.DocumentType,
		DocumentNumber:    strings.TrimSpace(req.DocumentNumber),
		DocumentPlace:     req.DocumentPlace,
		BirthDate:         domain.DateOnly(req.BirthDate.Time),
		Phone:             req.Phone,
		Address:           req.Address,
		Email:             req.Email,
		EPS:               req.EPS,
		ContractTypeID:    ct.ContractTypeID,
		ContractTypeName:  ct.Name,
		HireDate:          domain.DateOnly(req.HireDate.Time),
		Status:            domain.WorkerActive,
		BankAccountNumber: req.BankAccountNumber,
		Bank:              req.Bank,
		AuditFields:       domain.NewAuditFields(actor.UserID, s.Now()),
	}

	if err := s.workerRepo.SaveWorker(ctx, worker); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: document %s is already registered", apperrors.ErrDuplicate, req.DocumentNumber)
		}
		s.LogError(ctx, err, "Failed to save worker")
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditCreate, tableWorkers, worker.WorkerID, nil, worker)
	s.LogInfo(ctx, "Worker created", slog.String("worker_id", worker.WorkerID))
	return &worker, nil
}

func (s *workerService) GetWorker(ctx context.Context, actor domain.Actor, workerID string) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		if !isNotFound(err) {
			s.LogError(ctx, err, "Failed to get worker", slog.String("worker_id", workerID))
		}
		return nil, err
	}
	if actor.Role.CanViewSensitive() {
		s.RecordAudit(ctx, actor, domain.AuditViewSensitive, tableWorkers, workerID, nil, nil)
	}
	return worker, nil
}

func (s *workerService) ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, int, error) {
	filter.Search = utils.NormalizeText(filter.Search)
	workers, total, err := s.workerRepo.ListWorkers(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workers")
		return nil, 0, err
	}
	if workers == nil {
		workers = []domain.Worker{}
	}
	return workers, total, nil
}

func (s *workerService) UpdateWorker(ctx context.Context, actor domain.Actor, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	before := *worker

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	if req.FirstNames != nil {
		worker.FirstNames = utils.NormalizeText(*req.FirstNames)
	}
	if req.LastNames != nil {
		worker.LastNames = utils.NormalizeText(*req.LastNames)
	}
	assign(&worker.DocumentPlace, req.DocumentPlace)
	assign(&worker.Phone, req.Phone)
	assign(&worker.Address, req.Address)
	assign(&worker.Email, req.Email)
	assign(&worker.EPS, req.EPS)
	assign(&worker.BankAccountNumber, req.BankAccountNumber)
	assign(&worker.Bank, req.Bank)
	if req.ContractTypeID != nil && *req.ContractTypeID != worker.ContractTypeID {
		ct, err := s.contractType(ctx, *req.ContractTypeID)
		if err != nil {
			return nil, err
		}
		worker.ContractTypeID = ct.ContractTypeID
		worker.ContractTypeName = ct.Name
	}
	worker.Touch(actor.UserID, s.Now())

	if err := s.workerRepo.UpdateWorker(ctx, *worker); err != nil {
		s.LogError(ctx, err, "Failed to update worker", slog.String("worker_id", workerID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tableWorkers, workerID, before, worker)
	return worker, nil
}

func (s *workerService) ChangeWorkerStatus(ctx context.Context, actor domain.Actor, workerID string, req dto.ChangeWorkerStatusRequest) (*domain.Worker, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, req.Status)
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker.Status == req.Status {
		return worker, nil
	}
	before := *worker

	now := s.Now()
	switch req.Status {
	case domain.WorkerRetired:
		retireDate := domain.DateOnly(now)
		if req.RetireDate != nil && !req.RetireDate.IsZero() {
			retireDate = domain.DateOnly(req.RetireDate.Time)
		}
		if retireDate.Before(worker.HireDate) {
			return nil, fmt.Errorf("%w: retire date %s precedes hire date", apperrors.ErrValidation, retireDate.Format(time.DateOnly))
		}
		worker.RetireDate = &retireDate
	case domain.WorkerActive:
		worker.RetireDate = nil
	}
	worker.Status = req.Status
	worker.Touch(actor.UserID, now)

	if err := s.workerRepo.UpdateWorker(ctx, *worker); err != nil {
		s.LogError(ctx, err, "Failed to change worker status", slog.String("worker_id", workerID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tableWorkers, workerID, before, worker)
	s.LogInfo(ctx, "Worker status changed",
		slog.String("worker_id", workerID),
		slog.String("from", string(before.Status)),
		slog.String("to", string(worker.Status)))
	return worker, nil
}
