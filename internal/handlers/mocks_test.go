package handlers_test

import (
	"context"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	return m.Called(ctx, actor, userID).Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockWorkerService struct {
	mock.Mock
}

func (m *MockWorkerService) GetWorker(ctx context.Context, actor domain.Actor, workerID string) (*domain.Worker, error) {
	args := m.Called(ctx, actor, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerService) ListWorkers(ctx context.Context, filter domain.WorkerFilter) ([]domain.Worker, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Worker), args.Int(1), args.Error(2)
}

func (m *MockWorkerService) CreateWorker(ctx context.Context, actor domain.Actor, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerService) UpdateWorker(ctx context.Context, actor domain.Actor, workerID string, req dto.UpdateWorkerRequest) (*domain.Worker, error) {
	args := m.Called(ctx, actor, workerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerService) ChangeWorkerStatus(ctx context.Context, actor domain.Actor, workerID string, req dto.ChangeWorkerStatusRequest) (*domain.Worker, error) {
	args := m.Called(ctx, actor, workerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) loanResult(args mock.Arguments) (*domain.Loan, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) GetLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	return m.loanResult(m.Called(ctx, loanID))
}

func (m *MockLoanService) ListLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanService) CreateLoan(ctx context.Context, actor domain.Actor, req dto.CreateLoanRequest) (*domain.Loan, error) {
	return m.loanResult(m.Called(ctx, actor, req))
}

func (m *MockLoanService) SettleInstallment(ctx context.Context, actor domain.Actor, loanID string, sequence int, req dto.SettleInstallmentRequest) (*domain.Loan, error) {
	return m.loanResult(m.Called(ctx, actor, loanID, sequence, req))
}

func (m *MockLoanService) RegisterFullPayment(ctx context.Context, actor domain.Actor, loanID string, req dto.RegisterPaymentRequest) (*domain.Loan, error) {
	return m.loanResult(m.Called(ctx, actor, loanID, req))
}

func (m *MockLoanService) CancelLoan(ctx context.Context, actor domain.Actor, loanID string) (*domain.Loan, error) {
	return m.loanResult(m.Called(ctx, actor, loanID))
}

func (m *MockLoanService) DeleteLoan(ctx context.Context, actor domain.Actor, loanID string) error {
	return m.Called(ctx, actor, loanID).Error(0)
}

type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) payrollResult(args mock.Arguments) (*domain.Payroll, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}

func (m *MockPayrollService) GetPayroll(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	return m.payrollResult(m.Called(ctx, payrollID))
}

func (m *MockPayrollService) ListPayrolls(ctx context.Context, filter domain.PayrollFilter) ([]domain.Payroll, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payroll), args.Error(1)
}

func (m *MockPayrollService) CreatePayroll(ctx context.Context, actor domain.Actor, req dto.CreatePayrollRequest) (*domain.Payroll, error) {
	return m.payrollResult(m.Called(ctx, actor, req))
}

func (m *MockPayrollService) AddAdjustment(ctx context.Context, actor domain.Actor, payrollID string, req dto.AddAdjustmentRequest) (*domain.Payroll, error) {
	return m.payrollResult(m.Called(ctx, actor, payrollID, req))
}

func (m *MockPayrollService) CalculatePayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error) {
	return m.payrollResult(m.Called(ctx, actor, payrollID))
}

func (m *MockPayrollService) ApprovePayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error) {
	return m.payrollResult(m.Called(ctx, actor, payrollID))
}

func (m *MockPayrollService) MarkPayrollPaid(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error) {
	return m.payrollResult(m.Called(ctx, actor, payrollID))
}

var (
	_ portssvc.UserSvcFacade    = (*MockUserService)(nil)
	_ portssvc.TokenSvcFacade   = (*MockTokenService)(nil)
	_ portssvc.WorkerSvcFacade  = (*MockWorkerService)(nil)
	_ portssvc.LoanSvcFacade    = (*MockLoanService)(nil)
	_ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)
)
