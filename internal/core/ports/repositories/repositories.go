package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	RoleRepo        RoleReader
	WorkerRepo      WorkerRepositoryFacade
	CatalogRepo     CatalogReader
	LaborRepo       LaborRepositoryFacade
	VigencyRepo     VigencyRepositoryWithTx
	LoanRepo        LoanRepositoryWithTx
	PayPeriodRepo   PayPeriodRepositoryWithTx
	LaborRecordRepo LaborRecordRepositoryFacade
	PayrollRepo     PayrollRepositoryWithTx
	AuditRepo       AuditRepositoryFacade
}
