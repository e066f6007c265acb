package repositories

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// WorkerReader defines read operations for worker data
type WorkerReader interface {
	// FindWorkerByID retrieves a worker joined with its contract type name.
	FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error)

	// ListWorkers returns one page of workers matching filter and the total match count.
	ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, int, error)
}

// WorkerWriter defines write operations for worker data
type WorkerWriter interface {
	// SaveWorker persists a new worker. A taken document number yields ErrDuplicate.
	SaveWorker(ctx context.Context, worker domain.Worker) error

	// UpdateWorker overwrites the mutable fields of a worker.
	UpdateWorker(ctx context.Context, worker domain.Worker) error
}

// WorkerRepositoryFacade combines all worker-related repository interfaces
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
}
