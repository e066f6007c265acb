package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
)

const (
	defaultAuditPageSize = 20
	maxAuditPageSize     = 100
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates the audit log service.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade, options ...ServiceOption) portssvc.AuditSvcFacade {
	return &auditService{
		BaseService: newBaseService(options...),
		auditRepo:   auditRepo,
	}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

func snapshot(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// Record saves an audit entry, logging instead of returning any failure.
func (s *auditService) Record(ctx context.Context, actor domain.Actor, action domain.AuditAction, table, recordID string, before, after any) {
	logArgs := []any{
		slog.String("action", string(action)),
		slog.String("table", table),
		slog.String("record_id", recordID),
	}

	beforeJSON, err := snapshot(before)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode audit snapshot", logArgs...)
		return
	}
	afterJSON, err := snapshot(after)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode audit snapshot", logArgs...)
		return
	}

	entry := domain.AuditEntry{
		AuditID:   s.NewID(),
		Action:    action,
		TableName: table,
		RecordID:  recordID,
		Before:    beforeJSON,
		After:     afterJSON,
		IPAddress: actor.IPAddress,
		CreatedAt: s.Now(),
	}
	if actor.UserID != "" {
		userID := actor.UserID
		entry.UserID = &userID
	}

	if err := s.auditRepo.SaveAuditEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save audit entry", logArgs...)
	}
}

func (s *auditService) ListAuditEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultAuditPageSize
	}
	if filter.PageSize > maxAuditPageSize {
		filter.PageSize = maxAuditPageSize
	}

	entries, total, err := s.auditRepo.ListAuditEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit entries")
		return nil, 0, err
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return entries, total, nil
}
