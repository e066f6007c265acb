package services_test

import (
	"context"
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

var (
	adminActor  = domain.Actor{UserID: "admin-1", Role: domain.RoleSuperAdmin, IPAddress: "10.0.0.1"}
	writerActor = domain.Actor{UserID: "digitador-1", Role: domain.RoleDigitador, IPAddress: "10.0.0.2"}
	readerActor = domain.Actor{UserID: "lector-1", Role: domain.RoleReadOnly, IPAddress: "10.0.0.3"}
)

// fixedNow is the clock of every service under test.
var fixedNow = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

// --- Transaction manager, shared by the repository mocks ---

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx sets up a transaction that begins and rolls back, committing when commit is set.
func (m *mockTxManager) expectTx(commit bool) {
	m.On("Begin", mock.Anything).Return(nil, nil).Once()
	if commit {
		m.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	}
	m.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

// --- MockUserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

// --- MockWorkerRepository ---

type MockWorkerRepository struct {
	mock.Mock
}

var _ portsrepo.WorkerRepositoryFacade = (*MockWorkerRepository)(nil)

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Worker), args.Int(1), args.Error(2)
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) error {
	return m.Called(ctx, worker).Error(0)
}

func (m *MockWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	return m.Called(ctx, worker).Error(0)
}

// --- MockCatalogRepository ---

type MockCatalogRepository struct {
	mock.Mock
}

var (
	_ portsrepo.CatalogReader = (*MockCatalogRepository)(nil)
	_ portsrepo.RoleReader    = (*MockCatalogRepository)(nil)
)

func (m *MockCatalogRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockCatalogRepository) FindRoleByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockCatalogRepository) ListContractTypes(ctx context.Context) ([]domain.ContractType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractType), args.Error(1)
}

func (m *MockCatalogRepository) FindContractTypeByID(ctx context.Context, contractTypeID string) (*domain.ContractType, error) {
	args := m.Called(ctx, contractTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractType), args.Error(1)
}

func (m *MockCatalogRepository) ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnitOfMeasure), args.Error(1)
}

func (m *MockCatalogRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.UnitOfMeasure, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UnitOfMeasure), args.Error(1)
}

// --- MockLaborRepository ---

type MockLaborRepository struct {
	mock.Mock
}

var _ portsrepo.LaborRepositoryFacade = (*MockLaborRepository)(nil)

func (m *MockLaborRepository) FindLaborByID(ctx context.Context, laborID string) (*domain.Labor, error) {
	args := m.Called(ctx, laborID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Labor), args.Error(1)
}

func (m *MockLaborRepository) ListLabors(ctx context.Context, filter domain.LaborFilter) ([]domain.Labor, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Labor), args.Int(1), args.Error(2)
}

func (m *MockLaborRepository) SaveLabor(ctx context.Context, labor domain.Labor) error {
	return m.Called(ctx, labor).Error(0)
}

func (m *MockLaborRepository) UpdateLabor(ctx context.Context, labor domain.Labor) error {
	return m.Called(ctx, labor).Error(0)
}

// --- MockVigencyRepository ---

type MockVigencyRepository struct {
	mockTxManager
}

var _ portsrepo.VigencyRepositoryWithTx = (*MockVigencyRepository)(nil)

func (m *MockVigencyRepository) ListWindows(ctx context.Context, subject domain.Subject) ([]domain.PricedWindow, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricedWindow), args.Error(1)
}

func (m *MockVigencyRepository) FindWindowsCoveringDate(ctx context.Context, subject domain.Subject, d time.Time) ([]domain.PricedWindow, error) {
	args := m.Called(ctx, subject, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricedWindow), args.Error(1)
}

func (m *MockVigencyRepository) LockSubject(ctx context.Context, tx pgx.Tx, subject domain.Subject) error {
	return m.Called(ctx, tx, subject).Error(0)
}

func (m *MockVigencyRepository) FindWindowsForUpdate(ctx context.Context, tx pgx.Tx, subject domain.Subject) ([]domain.PricedWindow, error) {
	args := m.Called(ctx, tx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricedWindow), args.Error(1)
}

func (m *MockVigencyRepository) CloseWindowsInTx(ctx context.Context, tx pgx.Tx, windowIDs []string, validUntil time.Time, userID string, now time.Time) error {
	return m.Called(ctx, tx, windowIDs, validUntil, userID, now).Error(0)
}

func (m *MockVigencyRepository) InsertWindowInTx(ctx context.Context, tx pgx.Tx, w domain.PricedWindow) error {
	return m.Called(ctx, tx, w).Error(0)
}

// --- MockLoanRepository ---

type MockLoanRepository struct {
	mockTxManager
}

var _ portsrepo.LoanRepositoryWithTx = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	return m.Called(ctx, loan).Error(0)
}

func (m *MockLoanRepository) FindLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, tx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListActiveLoansByWorkerInTx(ctx context.Context, tx pgx.Tx, workerID string) ([]domain.Loan, error) {
	args := m.Called(ctx, tx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) UpdateLoanStateInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	return m.Called(ctx, tx, loan).Error(0)
}

func (m *MockLoanRepository) UpdateInstallmentsInTx(ctx context.Context, tx pgx.Tx, installments []domain.Installment) error {
	return m.Called(ctx, tx, installments).Error(0)
}

func (m *MockLoanRepository) DeleteLoanInTx(ctx context.Context, tx pgx.Tx, loanID string) error {
	return m.Called(ctx, tx, loanID).Error(0)
}

// --- MockPayPeriodRepository ---

type MockPayPeriodRepository struct {
	mockTxManager
}

var _ portsrepo.PayPeriodRepositoryWithTx = (*MockPayPeriodRepository)(nil)

func (m *MockPayPeriodRepository) FindPayPeriodByID(ctx context.Context, payPeriodID string) (*domain.PayPeriod, error) {
	args := m.Called(ctx, payPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayPeriod), args.Error(1)
}

func (m *MockPayPeriodRepository) FindPayPeriodByKey(ctx context.Context, year, month, number int) (*domain.PayPeriod, error) {
	args := m.Called(ctx, year, month, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayPeriod), args.Error(1)
}

func (m *MockPayPeriodRepository) ListPayPeriods(ctx context.Context, year *int) ([]domain.PayPeriod, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayPeriod), args.Error(1)
}

func (m *MockPayPeriodRepository) SavePayPeriod(ctx context.Context, period domain.PayPeriod) error {
	return m.Called(ctx, period).Error(0)
}

func (m *MockPayPeriodRepository) SavePayPeriodIfAbsent(ctx context.Context, period domain.PayPeriod) (bool, error) {
	args := m.Called(ctx, period)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayPeriodRepository) FindPayPeriodForUpdate(ctx context.Context, tx pgx.Tx, payPeriodID string) (*domain.PayPeriod, error) {
	args := m.Called(ctx, tx, payPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayPeriod), args.Error(1)
}

func (m *MockPayPeriodRepository) UpdatePayPeriodStatusInTx(ctx context.Context, tx pgx.Tx, payPeriodID string, status domain.PayPeriodStatus) error {
	return m.Called(ctx, tx, payPeriodID, status).Error(0)
}

// --- MockLaborRecordRepository ---

type MockLaborRecordRepository struct {
	mock.Mock
}

var _ portsrepo.LaborRecordRepositoryFacade = (*MockLaborRecordRepository)(nil)

func (m *MockLaborRecordRepository) FindLaborRecordByID(ctx context.Context, recordID string) (*domain.LaborRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LaborRecord), args.Error(1)
}

func (m *MockLaborRecordRepository) ListLaborRecords(ctx context.Context, filter domain.LaborRecordFilter) ([]domain.LaborRecord, *string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]domain.LaborRecord), next, args.Error(2)
}

func (m *MockLaborRecordRepository) ListLaborRecordsForPayrollInTx(ctx context.Context, tx pgx.Tx, workerID, payPeriodID string) ([]domain.LaborRecord, error) {
	args := m.Called(ctx, tx, workerID, payPeriodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LaborRecord), args.Error(1)
}

func (m *MockLaborRecordRepository) SaveLaborRecord(ctx context.Context, record domain.LaborRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockLaborRecordRepository) UpdateLaborRecord(ctx context.Context, record domain.LaborRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockLaborRecordRepository) DeleteLaborRecord(ctx context.Context, recordID string) error {
	return m.Called(ctx, recordID).Error(0)
}

// --- MockPayrollRepository ---

type MockPayrollRepository struct {
	mockTxManager
}

var _ portsrepo.PayrollRepositoryWithTx = (*MockPayrollRepository)(nil)

func (m *MockPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) ListPayrolls(ctx context.Context, filter domain.PayrollFilter) ([]domain.Payroll, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) SavePayroll(ctx context.Context, payroll domain.Payroll) error {
	return m.Called(ctx, payroll).Error(0)
}

func (m *MockPayrollRepository) FindPayrollForUpdate(ctx context.Context, tx pgx.Tx, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, tx, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}

func (m *MockPayrollRepository) ReplaceGeneratedLinesInTx(ctx context.Context, tx pgx.Tx, payrollID string, lines []domain.PayrollLine) error {
	return m.Called(ctx, tx, payrollID, lines).Error(0)
}

func (m *MockPayrollRepository) InsertLineInTx(ctx context.Context, tx pgx.Tx, line domain.PayrollLine) error {
	return m.Called(ctx, tx, line).Error(0)
}

func (m *MockPayrollRepository) UpdatePayrollInTx(ctx context.Context, tx pgx.Tx, payroll domain.Payroll) error {
	return m.Called(ctx, tx, payroll).Error(0)
}

func (m *MockPayrollRepository) ListOpenLoanClaimsInTx(ctx context.Context, tx pgx.Tx, workerID, excludePayrollID string) ([]domain.LoanClaim, error) {
	args := m.Called(ctx, tx, workerID, excludePayrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanClaim), args.Error(1)
}

// --- MockAuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuditRepository) ListAuditEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AuditEntry), args.Int(1), args.Error(2)
}

// --- MockAuditRecorder ---

type MockAuditRecorder struct {
	mock.Mock
}

var _ portssvc.AuditRecorder = (*MockAuditRecorder)(nil)

func (m *MockAuditRecorder) Record(ctx context.Context, actor domain.Actor, action domain.AuditAction, table, recordID string, before, after any) {
	m.Called(ctx, actor, action, table, recordID, before, after)
}

// --- MockVigencyService ---

type MockVigencyService struct {
	mock.Mock
}

var _ portssvc.VigencySvcFacade = (*MockVigencyService)(nil)

func (m *MockVigencyService) OpenWindow(ctx context.Context, actor domain.Actor, subject domain.Subject, req dto.OpenWindowRequest) (*domain.PricedWindow, error) {
	args := m.Called(ctx, actor, subject, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricedWindow), args.Error(1)
}

func (m *MockVigencyService) CurrentValue(ctx context.Context, subject domain.Subject, d time.Time) (*domain.PricedWindow, error) {
	args := m.Called(ctx, subject, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricedWindow), args.Error(1)
}

func (m *MockVigencyService) History(ctx context.Context, subject domain.Subject) ([]domain.PricedWindow, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricedWindow), args.Error(1)
}
