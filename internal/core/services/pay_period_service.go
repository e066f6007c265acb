package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/jackc/pgx/v5"
)

const tablePayPeriods = "pay_periods"

type payPeriodService struct {
	BaseService
	payPeriodRepo portsrepo.PayPeriodRepositoryWithTx
}

// NewPayPeriodService creates the quincena service.
func NewPayPeriodService(payPeriodRepo portsrepo.PayPeriodRepositoryWithTx, options ...ServiceOption) portssvc.PayPeriodSvcFacade {
	return &payPeriodService{
		BaseService:   newBaseService(options...),
		payPeriodRepo: payPeriodRepo,
	}
}

var _ portssvc.PayPeriodSvcFacade = (*payPeriodService)(nil)

func (s *payPeriodService) CreatePayPeriod(ctx context.Context, actor domain.Actor, req dto.CreatePayPeriodRequest) (*domain.PayPeriod, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	period, err := domain.NewPayPeriod(s.NewID(), req.Year, req.Month, req.Number, s.Now())
	if err != nil {
		return nil, err
	}

	if err := s.payPeriodRepo.SavePayPeriod(ctx, *period); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: quincena %s already exists", apperrors.ErrDuplicate, period.Label())
		}
		s.LogError(ctx, err, "Failed to save quincena", slog.String("label", period.Label()))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditCreate, tablePayPeriods, period.PayPeriodID, nil, period)
	s.LogInfo(ctx, "Quincena created", slog.String("pay_period_id", period.PayPeriodID), slog.String("label", period.Label()))
	return period, nil
}

func (s *payPeriodService) GetPayPeriod(ctx context.Context, payPeriodID string) (*domain.PayPeriod, error) {
	period, err := s.payPeriodRepo.FindPayPeriodByID(ctx, payPeriodID)
	if err != nil {
		if !isNotFound(err) {
			s.LogError(ctx, err, "Failed to get quincena", slog.String("pay_period_id", payPeriodID))
		}
		return nil, err
	}
	return period, nil
}

func (s *payPeriodService) ListPayPeriods(ctx context.Context, year *int) ([]domain.PayPeriod, error) {
	periods, err := s.payPeriodRepo.ListPayPeriods(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list quincenas")
		return nil, err
	}
	if periods == nil {
		return []domain.PayPeriod{}, nil
	}
	return periods, nil
}

func (s *payPeriodService) AdvancePayPeriod(ctx context.Context, actor domain.Actor, payPeriodID string) (*domain.PayPeriod, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	var before domain.PayPeriod
	var period *domain.PayPeriod
	err := s.inTx(ctx, s.payPeriodRepo, func(tx pgx.Tx) error {
		var err error
		period, err = s.payPeriodRepo.FindPayPeriodForUpdate(ctx, tx, payPeriodID)
		if err != nil {
			return err
		}
		before = *period
		if err := period.Advance(); err != nil {
			return err
		}
		return s.payPeriodRepo.UpdatePayPeriodStatusInTx(ctx, tx, payPeriodID, period.Status)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to advance quincena", slog.String("pay_period_id", payPeriodID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tablePayPeriods, payPeriodID, before, period)
	s.LogInfo(ctx, "Quincena advanced",
		slog.String("pay_period_id", payPeriodID),
		slog.String("from", string(before.Status)),
		slog.String("to", string(period.Status)))
	return period, nil
}

func (s *payPeriodService) EnsurePayPeriodFor(ctx context.Context, d time.Time) (*domain.PayPeriod, bool, error) {
	year, month, number := domain.PayPeriodKeyFor(d)
	period, err := domain.NewPayPeriod(s.NewID(), year, month, number, s.Now())
	if err != nil {
		return nil, false, err
	}

	created, err := s.payPeriodRepo.SavePayPeriodIfAbsent(ctx, *period)
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure quincena", slog.String("label", period.Label()))
		return nil, false, err
	}
	if created {
		s.LogInfo(ctx, "Quincena created by schedule", slog.String("label", period.Label()))
		return period, true, nil
	}

	existing, err := s.payPeriodRepo.FindPayPeriodByKey(ctx, year, month, number)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}
