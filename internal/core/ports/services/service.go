package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	Catalog     CatalogSvcFacade
	Worker      WorkerSvcFacade
	Labor       LaborSvcFacade
	Vigency     VigencySvcFacade
	Loan        LoanSvcFacade
	PayPeriod   PayPeriodSvcFacade
	LaborRecord LaborRecordSvcFacade
	Payroll     PayrollSvcFacade
	Audit       AuditSvcFacade
}
