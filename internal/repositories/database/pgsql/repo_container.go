package pgsql

import (
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		RoleRepo:        userRepo,
		WorkerRepo:      newPgxWorkerRepository(dbPool),
		CatalogRepo:     newPgxCatalogRepository(dbPool),
		LaborRepo:       newPgxLaborRepository(dbPool),
		VigencyRepo:     newPgxVigencyRepository(dbPool),
		LoanRepo:        newPgxLoanRepository(dbPool),
		PayPeriodRepo:   newPgxPayPeriodRepository(dbPool),
		LaborRecordRepo: newPgxLaborRecordRepository(dbPool),
		PayrollRepo:     newPgxPayrollRepository(dbPool),
		AuditRepo:       newPgxAuditRepository(dbPool),
	}
}
