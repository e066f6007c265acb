package repositories

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// AuditRepositoryFacade persists and lists audit entries.
type AuditRepositoryFacade interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error

	// ListAuditEntries returns one page of entries, newest first, and the total match count.
	ListAuditEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int, error)
}
