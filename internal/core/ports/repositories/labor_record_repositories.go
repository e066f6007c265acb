package repositories

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LaborRecordReader defines read operations for labor records
type LaborRecordReader interface {
	FindLaborRecordByID(ctx context.Context, recordID string) (*domain.LaborRecord, error)

	// ListLaborRecords retrieves a page of records ordered by date then creation, newest first.
	// It returns the records and a token for the next page.
	ListLaborRecords(ctx context.Context, filter domain.LaborRecordFilter) ([]domain.LaborRecord, *string, error)

	// ListLaborRecordsForPayrollInTx returns every record of worker in a quincena, oldest first.
	ListLaborRecordsForPayrollInTx(ctx context.Context, tx pgx.Tx, workerID, payPeriodID string) ([]domain.LaborRecord, error)
}

// LaborRecordWriter defines write operations for labor records
type LaborRecordWriter interface {
	SaveLaborRecord(ctx context.Context, record domain.LaborRecord) error
	UpdateLaborRecord(ctx context.Context, record domain.LaborRecord) error
	DeleteLaborRecord(ctx context.Context, recordID string) error
}

// LaborRecordRepositoryFacade combines all labor-record repository interfaces
type LaborRecordRepositoryFacade interface {
	LaborRecordReader
	LaborRecordWriter
}
