package services

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// AuditRecorder writes audit entries. Recording never fails the caller's operation.
type AuditRecorder interface {
	Record(ctx context.Context, actor domain.Actor, action domain.AuditAction, table, recordID string, before, after any)
}

// AuditSvcFacade records and lists audit entries.
type AuditSvcFacade interface {
	AuditRecorder
	ListAuditEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int, error)
}
