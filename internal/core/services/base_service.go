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
	"github.com/finca-nomina/nomina_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Audit portssvc.AuditRecorder
	now   func() time.Time
	newID func() string
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithIDGenerator replaces the uuid generator, mostly for tests.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *BaseService) {
		s.newID = newID
	}
}

// WithAuditRecorder makes the service record CREATE/UPDATE/DELETE events.
func WithAuditRecorder(recorder portssvc.AuditRecorder) ServiceOption {
	return func(s *BaseService) {
		s.Audit = recorder
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current instant.
func (s *BaseService) Now() time.Time {
	return s.now()
}

// NewID returns a fresh identifier.
func (s *BaseService) NewID() string {
	return s.newID()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// RecordAudit forwards to the audit recorder when one is configured.
func (s *BaseService) RecordAudit(ctx context.Context, actor domain.Actor, action domain.AuditAction, table, recordID string, before, after any) {
	if s.Audit == nil {
		return
	}
	s.Audit.Record(ctx, actor, action, table, recordID, before, after)
}

// RequireWriter rejects actors whose role may not modify operational data.
func (s *BaseService) RequireWriter(actor domain.Actor) error {
	if !actor.Role.CanWrite() {
		return fmt.Errorf("%w: role %s is read-only", apperrors.ErrForbidden, actor.Role)
	}
	return nil
}

// RequireSuperAdmin rejects every actor but a SUPER_ADMIN.
func (s *BaseService) RequireSuperAdmin(actor domain.Actor) error {
	if actor.Role != domain.RoleSuperAdmin {
		return fmt.Errorf("%w: only a super admin may perform this action", apperrors.ErrForbidden)
	}
	return nil
}

// inTx runs fn inside a transaction begun on tm, committing when fn succeeds.
func (s *BaseService) inTx(ctx context.Context, tm portsrepo.TransactionManager, fn func(tx pgx.Tx) error) error {
	tx, err := tm.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return err
	}
	defer func() {
		if rbErr := tm.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tm.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction")
		return err
	}
	return nil
}

// isNotFound reports whether err means a missing record.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
