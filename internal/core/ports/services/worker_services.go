package services

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
)

// WorkerReaderSvc defines read operations for workers
type WorkerReaderSvc interface {
	// GetWorker retrieves a worker. Reads by actors allowed to see bank data are audited.
	GetWorker(ctx context.Context, actor domain.Actor, workerID string) (*domain.Worker, error)

	ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, int, error)
}

// WorkerWriterSvc defines write operations for workers
type WorkerWriterSvc interface {
	CreateWorker(ctx context.Context, actor domain.Actor, req dto.CreateWorkerRequest) (*domain.Worker, error)
	UpdateWorker(ctx context.Context, actor domain.Actor, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error)

	// ChangeWorkerStatus activates, inactivates or retires a worker.
	ChangeWorkerStatus(ctx context.Context, actor domain.Actor, workerID string, req dto.ChangeWorkerStatusRequest) (*domain.Worker, error)
}

// WorkerSvcFacade combines all worker-related service interfaces
type WorkerSvcFacade interface {
	WorkerReaderSvc
	WorkerWriterSvc
}
