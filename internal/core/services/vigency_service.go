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
	"github.com/jackc/pgx/v5"
)

const tablePricedWindows = "priced_windows"

type vigencyService struct {
	BaseService
	vigencyRepo portsrepo.VigencyRepositoryWithTx
	laborRepo   portsrepo.LaborReader
	cache       *VigencyCache
}

// NewVigencyService creates the vigency registry service. cache may be nil.
func NewVigencyService(vigencyRepo portsrepo.VigencyRepositoryWithTx, laborRepo portsrepo.LaborReader, cache *VigencyCache, options ...ServiceOption) portssvc.VigencySvcFacade {
	return &vigencyService{
		BaseService: newBaseService(options...),
		vigencyRepo: vigencyRepo,
		laborRepo:   laborRepo,
		cache:       cache,
	}
}

var _ portssvc.VigencySvcFacade = (*vigencyService)(nil)

func (s *vigencyService) validateSubject(ctx context.Context, subject domain.Subject) error {
	switch subject.Kind {
	case domain.SubjectLaborPrice:
		if _, err := s.laborRepo.FindLaborByID(ctx, subject.ID); err != nil {
			if isNotFound(err) {
				return fmt.Errorf("%w: labor %s", apperrors.ErrNotFound, subject.ID)
			}
			return err
		}
		return nil
	case domain.SubjectPayrollVariable:
		if !domain.VariableName(subject.ID).IsValid() {
			return fmt.Errorf("%w: unknown payroll variable %q", apperrors.ErrValidation, subject.ID)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown subject kind %q", apperrors.ErrValidation, subject.Kind)
}

func (s *vigencyService) OpenWindow(ctx context.Context, actor domain.Actor, subject domain.Subject, req dto.OpenWindowRequest) (*domain.PricedWindow, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}
	if req.Value == nil || req.Value.IsNegative() {
		return nil, fmt.Errorf("%w: value must be zero or greater", apperrors.ErrValidation)
	}
	if err := domain.CheckCents("value", *req.Value); err != nil {
		return nil, err
	}
	if req.ValidFrom.IsZero() {
		return nil, fmt.Errorf("%w: validFrom is required", apperrors.ErrValidation)
	}
	if err := s.validateSubject(ctx, subject); err != nil {
		return nil, err
	}

	now := s.Now()
	validFrom := domain.DateOnly(req.ValidFrom.Time)
	window := domain.PricedWindow{
		WindowID:    s.NewID(),
		Subject:     subject,
		Value:       *req.Value,
		ValidFrom:   validFrom,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	var closed []domain.PricedWindow
	err := s.inTx(ctx, s.vigencyRepo, func(tx pgx.Tx) error {
		if err := s.vigencyRepo.LockSubject(ctx, tx, subject); err != nil {
			return err
		}
		existing, err := s.vigencyRepo.FindWindowsForUpdate(ctx, tx, subject)
		if err != nil {
			return err
		}
		toClose, err := domain.PlanOpenWindow(existing, validFrom, req.Supersede)
		if err != nil {
			return err
		}
		if len(toClose) > 0 {
			ids := make([]string, len(toClose))
			for i, w := range toClose {
				ids[i] = w.WindowID
			}
			if err := s.vigencyRepo.CloseWindowsInTx(ctx, tx, ids, validFrom, actor.UserID, now); err != nil {
				return err
			}
		}
		closed = toClose
		return s.vigencyRepo.InsertWindowInTx(ctx, tx, window)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to open window",
			slog.String("subject", subject.String()),
			slog.String("valid_from", validFrom.Format(time.DateOnly)))
		return nil, err
	}

	if err := s.cache.Bump(ctx, subject); err != nil {
		s.LogError(ctx, err, "Failed to bump vigency cache", slog.String("subject", subject.String()))
	}

	for _, w := range closed {
		after := w
		after.ValidUntil = &validFrom
		after.Touch(actor.UserID, now)
		s.RecordAudit(ctx, actor, domain.AuditUpdate, tablePricedWindows, w.WindowID, w, after)
	}
	s.RecordAudit(ctx, actor, domain.AuditCreate, tablePricedWindows, window.WindowID, nil, window)

	s.LogInfo(ctx, "Window opened",
		slog.String("subject", subject.String()),
		slog.String("window_id", window.WindowID),
		slog.Int("superseded", len(closed)))
	return &window, nil
}

func (s *vigencyService) resolve(ctx context.Context, subject domain.Subject, d time.Time) (*domain.PricedWindow, error) {
	candidates, err := s.vigencyRepo.FindWindowsCoveringDate(ctx, subject, d)
	if err != nil {
		return nil, err
	}
	w, err := domain.ResolveCurrent(candidates, d)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: no value in force for %s on %s", apperrors.ErrNotFound, subject, d.Format(time.DateOnly))
		}
		return nil, err
	}
	return w, nil
}

func (s *vigencyService) CurrentValue(ctx context.Context, subject domain.Subject, d time.Time) (*domain.PricedWindow, error) {
	day := domain.DateOnly(d)

	key, err := s.cache.BuildKey(ctx, subject, day)
	if err != nil {
		s.LogError(ctx, err, "Vigency cache unavailable, reading through", slog.String("subject", subject.String()))
		return s.resolve(ctx, subject, day)
	}

	var loadErr error
	w, err := s.cache.FetchWindow(ctx, key, func(ctx context.Context) (*domain.PricedWindow, error) {
		w, err := s.resolve(ctx, subject, day)
		loadErr = err
		return w, err
	})
	if loadErr != nil {
		return nil, loadErr
	}
	if err != nil {
		s.LogError(ctx, err, "Vigency cache unavailable, reading through", slog.String("subject", subject.String()))
		return s.resolve(ctx, subject, day)
	}
	return w, nil
}

func (s *vigencyService) History(ctx context.Context, subject domain.Subject) ([]domain.PricedWindow, error) {
	if err := s.validateSubject(ctx, subject); err != nil {
		return nil, err
	}
	windows, err := s.vigencyRepo.ListWindows(ctx, subject)
	if err != nil {
		s.LogError(ctx, err, "Failed to list windows", slog.String("subject", subject.String()))
		return nil, err
	}
	if windows == nil {
		return []domain.PricedWindow{}, nil
	}
	return windows, nil
}
