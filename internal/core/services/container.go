package services

import (
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/platform/config"
)

// NewContainer creates the service container with properly initialized dependencies.
// cache may be nil, in which case current values are read straight from the database.
func NewContainer(repos portsrepo.RepositoryProvider, cfg *config.Config, cache *VigencyCache, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit comes first: every other service records through it.
	container.Audit = NewAuditService(repos.AuditRepo, options...)
	withAudit := append(append([]ServiceOption{}, options...), WithAuditRecorder(container.Audit))

	container.User = NewUserService(repos.UserRepo, withAudit...)
	container.Token = NewTokenService(cfg, options...)
	container.Catalog = NewCatalogService(repos.RoleRepo, repos.CatalogRepo, options...)
	container.Worker = NewWorkerService(repos.WorkerRepo, repos.CatalogRepo, withAudit...)

	// Vigency before labors and payrolls, which price through it.
	container.Vigency = NewVigencyService(repos.VigencyRepo, repos.LaborRepo, cache, withAudit...)
	container.Labor = NewLaborService(repos.LaborRepo, repos.CatalogRepo, container.Vigency, withAudit...)

	container.Loan = NewLoanService(repos.LoanRepo, repos.WorkerRepo, repos.PayPeriodRepo, withAudit...)
	container.PayPeriod = NewPayPeriodService(repos.PayPeriodRepo, withAudit...)
	container.LaborRecord = NewLaborRecordService(repos.LaborRecordRepo, repos.WorkerRepo, repos.LaborRepo, repos.PayPeriodRepo, withAudit...)
	container.Payroll = NewPayrollService(PayrollDeps{
		PayrollRepo:   repos.PayrollRepo,
		WorkerRepo:    repos.WorkerRepo,
		PayPeriodRepo: repos.PayPeriodRepo,
		RecordRepo:    repos.LaborRecordRepo,
		LaborRepo:     repos.LaborRepo,
		LoanRepo:      repos.LoanRepo,
		Vigency:       container.Vigency,
	}, withAudit...)

	return container
}
