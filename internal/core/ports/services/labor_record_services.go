package services

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
)

// LaborRecordSvcFacade manages daily labor records.
type LaborRecordSvcFacade interface {
	CreateLaborRecord(ctx context.Context, actor domain.Actor, req dto.CreateLaborRecordRequest) (*domain.LaborRecord, error)
	GetLaborRecord(ctx context.Context, recordID string) (*domain.LaborRecord, error)

	// ListLaborRecords returns one page of records and the token of the next page.
	ListLaborRecords(ctx context.Context, filter domain.LaborRecordFilter) ([]domain.LaborRecord, *string, error)

	UpdateLaborRecord(ctx context.Context, actor domain.Actor, recordID string, req dto.UpdateLaborRecordRequest) (*domain.LaborRecord, error)
	DeleteLaborRecord(ctx context.Context, actor domain.Actor, recordID string) error
}
