package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
)

const (
	tableLaborRecords       = "labor_records"
	defaultLaborRecordLimit = 50
	maxLaborRecordLimit     = 200
)

type laborRecordService struct {
	BaseService
	recordRepo    portsrepo.LaborRecordRepositoryFacade
	workerRepo    portsrepo.WorkerReader
	laborRepo     portsrepo.LaborReader
	payPeriodRepo portsrepo.PayPeriodReader
}

// NewLaborRecordService creates the labor record service.
func NewLaborRecordService(
	recordRepo portsrepo.LaborRecordRepositoryFacade,
	workerRepo portsrepo.WorkerReader,
	laborRepo portsrepo.LaborReader,
	payPeriodRepo portsrepo.PayPeriodReader,
	options ...ServiceOption,
) portssvc.LaborRecordSvcFacade {
	return &laborRecordService{
		BaseService:   newBaseService(options...),
		recordRepo:    recordRepo,
		workerRepo:    workerRepo,
		laborRepo:     laborRepo,
		payPeriodRepo: payPeriodRepo,
	}
}

var _ portssvc.LaborRecordSvcFacade = (*laborRecordService)(nil)

func (s *laborRecordService) registrablePeriod(ctx context.Context, payPeriodID string) (*domain.PayPeriod, error) {
	period, err := s.payPeriodRepo.FindPayPeriodByID(ctx, payPeriodID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: quincena %s", apperrors.ErrNotFound, payPeriodID)
		}
		return nil, err
	}
	if !period.CanRegister(domain.DateOnly(s.Now())) {
		return nil, fmt.Errorf("%w: quincena %s no longer accepts labor records (status %s, deadline %s)",
			apperrors.ErrInvalidState, period.Label(), period.Status, period.RegistrationDeadline.Format(time.DateOnly))
	}
	return period, nil
}

// checkRecord applies the registration rules to a record about to be written.
func (s *laborRecordService) checkRecord(ctx context.Context, r domain.LaborRecord) error {
	if r.Quantity.LessThan(domain.MinLaborQuantity) {
		return fmt.Errorf("%w: quantity must be at least %s", apperrors.ErrValidation, domain.MinLaborQuantity)
	}
	if err := domain.CheckCents("quantity", r.Quantity); err != nil {
		return err
	}

	period, err := s.registrablePeriod(ctx, r.PayPeriodID)
	if err != nil {
		return err
	}
	if !period.Contains(r.Date) {
		return fmt.Errorf("%w: date %s is outside quincena %s", apperrors.ErrValidation, r.Date.Format(time.DateOnly), period.Label())
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, r.WorkerID)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: worker %s", apperrors.ErrNotFound, r.WorkerID)
		}
		return err
	}
	if worker.Status != domain.WorkerActive {
		return fmt.Errorf("%w: worker %s is %s", apperrors.ErrValidation, worker.FullName(), worker.Status)
	}

	labor, err := s.laborRepo.FindLaborByID(ctx, r.LaborID)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: labor %s", apperrors.ErrNotFound, r.LaborID)
		}
		return err
	}
	if !labor.Active {
		return fmt.Errorf("%w: labor %s is inactive", apperrors.ErrValidation, labor.Code)
	}
	if labor.ContractOnly && !worker.HasContract() {
		return fmt.Errorf("%w: labor %s is only for workers with contract", apperrors.ErrValidation, labor.Code)
	}
	return nil
}

func (s *laborRecordService) CreateLaborRecord(ctx context.Context, actor domain.Actor, req dto.CreateLaborRecordRequest) (*domain.LaborRecord, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	record := domain.LaborRecord{
		RecordID:    s.NewID(),
		WorkerID:    req.WorkerID,
		LaborID:     req.LaborID,
		PayPeriodID: req.PayPeriodID,
		Date:        domain.DateOnly(req.Date.Time),
		Quantity:    req.Quantity,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(actor.UserID, s.Now()),
	}
	if err := s.checkRecord(ctx, record); err != nil {
		return nil, err
	}

	if err := s.recordRepo.SaveLaborRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save labor record", slog.String("worker_id", record.WorkerID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditCreate, tableLaborRecords, record.RecordID, nil, record)
	return &record, nil
}

func (s *laborRecordService) GetLaborRecord(ctx context.Context, recordID string) (*domain.LaborRecord, error) {
	record, err := s.recordRepo.FindLaborRecordByID(ctx, recordID)
	if err != nil {
		if !isNotFound(err) {
			s.LogError(ctx, err, "Failed to get labor record", slog.String("record_id", recordID))
		}
		return nil, err
	}
	return record, nil
}

func (s *laborRecordService) ListLaborRecords(ctx context.Context, filter domain.LaborRecordFilter) ([]domain.LaborRecord, *string, error) {
	if filter.Limit < 1 {
		filter.Limit = defaultLaborRecordLimit
	}
	if filter.Limit > maxLaborRecordLimit {
		filter.Limit = maxLaborRecordLimit
	}

	records, next, err := s.recordRepo.ListLaborRecords(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list labor records")
		return nil, nil, err
	}
	if records == nil {
		records = []domain.LaborRecord{}
	}
	return records, next, nil
}

func (s *laborRecordService) UpdateLaborRecord(ctx context.Context, actor domain.Actor, recordID string, req dto.UpdateLaborRecordRequest) (*domain.LaborRecord, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	record, err := s.recordRepo.FindLaborRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	before := *record

	// the current quincena must still accept changes before the record may leave it
	if _, err := s.registrablePeriod(ctx, record.PayPeriodID); err != nil {
		return nil, err
	}

	if req.LaborID != nil {
		record.LaborID = *req.LaborID
	}
	if req.Date != nil {
		record.Date = domain.DateOnly(req.Date.Time)
	}
	if req.Quantity != nil {
		record.Quantity = *req.Quantity
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if err := s.checkRecord(ctx, *record); err != nil {
		return nil, err
	}
	record.Touch(actor.UserID, s.Now())

	if err := s.recordRepo.UpdateLaborRecord(ctx, *record); err != nil {
		s.LogError(ctx, err, "Failed to update labor record", slog.String("record_id", recordID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tableLaborRecords, recordID, before, record)
	return record, nil
}

func (s *laborRecordService) DeleteLaborRecord(ctx context.Context, actor domain.Actor, recordID string) error {
	if err := s.RequireWriter(actor); err != nil {
		return err
	}

	record, err := s.recordRepo.FindLaborRecordByID(ctx, recordID)
	if err != nil {
		return err
	}
	if _, err := s.registrablePeriod(ctx, record.PayPeriodID); err != nil {
		return err
	}

	if err := s.recordRepo.DeleteLaborRecord(ctx, recordID); err != nil {
		s.LogError(ctx, err, "Failed to delete labor record", slog.String("record_id", recordID))
		return err
	}

	s.RecordAudit(ctx, actor, domain.AuditDelete, tableLaborRecords, recordID, record, nil)
	return nil
}
