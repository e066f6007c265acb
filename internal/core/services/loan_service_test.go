package services_test

import (
	"context"
	"testing"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/core/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LoanServiceTestSuite struct {
	suite.Suite
	loanRepo      *MockLoanRepository
	workerRepo    *MockWorkerRepository
	payPeriodRepo *MockPayPeriodRepository
	service       portssvc.LoanSvcFacade
}

func (s *LoanServiceTestSuite) SetupTest() {
	s.loanRepo = new(MockLoanRepository)
	s.workerRepo = new(MockWorkerRepository)
	s.payPeriodRepo = new(MockPayPeriodRepository)
	s.service = services.NewLoanService(s.loanRepo, s.workerRepo, s.payPeriodRepo,
		services.WithClock(fixedClock),
		services.WithIDGenerator(sequentialIDs()))
}

func (s *LoanServiceTestSuite) TearDownTest() {
	s.loanRepo.AssertExpectations(s.T())
	s.workerRepo.AssertExpectations(s.T())
	s.payPeriodRepo.AssertExpectations(s.T())
}

func activeWorker(id string) *domain.Worker {
	return &domain.Worker{WorkerID: id, FirstNames: "Ana", LastNames: "Rojas", Status: domain.WorkerActive, ContractTypeName: domain.WithContract}
}

// installmentLoan builds an ACTIVE loan of principal split in count installments.
func installmentLoan(principal string, count int) *domain.Loan {
	loan, err := domain.NewLoan(domain.LoanRequest{
		WorkerID:         "worker-1",
		Principal:        decimal.RequireFromString(principal),
		PaymentMode:      domain.PaymentInstallments,
		InstallmentCount: intPtr(count),
		LoanDate:         day("2025-02-03"),
	}, "user-1", fixedNow, sequentialIDs())
	if err != nil {
		panic(err)
	}
	return loan
}

func (s *LoanServiceTestSuite) TestCreateLoan_Installments() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{
		WorkerID:         "worker-1",
		Principal:        decimal.NewFromInt(1000),
		PaymentMode:      domain.PaymentInstallments,
		InstallmentCount: intPtr(3),
		LoanDate:         dto.NewDate(day("2025-06-01")),
	}

	s.workerRepo.On("FindWorkerByID", ctx, "worker-1").Return(activeWorker("worker-1"), nil).Once()
	s.loanRepo.On("SaveLoan", ctx, mock.MatchedBy(func(l domain.Loan) bool {
		return len(l.Installments) == 3 && l.OutstandingBalance.Equal(decimal.NewFromInt(1000)) && l.CreatedBy == writerActor.UserID
	})).Return(nil).Once()

	loan, err := s.service.CreateLoan(ctx, writerActor, req)

	s.Require().NoError(err)
	s.Equal(domain.LoanActive, loan.Status)
	s.True(loan.Installments[0].Amount.Equal(decimal.RequireFromString("333.34")))
	s.True(loan.Installments[1].Amount.Equal(decimal.RequireFromString("333.33")))
	s.True(loan.Installments[2].Amount.Equal(decimal.RequireFromString("333.33")))
	s.True(loan.ScheduledTotal().Equal(decimal.NewFromInt(1000)))
}

func (s *LoanServiceTestSuite) TestCreateLoan_WorkerRules() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{
		WorkerID:    "worker-2",
		Principal:   decimal.NewFromInt(500000),
		PaymentMode: domain.PaymentSingle,
		LoanDate:    dto.NewDate(day("2025-06-01")),
	}

	s.workerRepo.On("FindWorkerByID", ctx, "worker-2").Return(nil, apperrors.ErrNotFound).Once()
	_, err := s.service.CreateLoan(ctx, writerActor, req)
	s.ErrorIs(err, apperrors.ErrNotFound)

	retired := activeWorker("worker-2")
	retired.Status = domain.WorkerRetired
	s.workerRepo.On("FindWorkerByID", ctx, "worker-2").Return(retired, nil).Once()
	_, err = s.service.CreateLoan(ctx, writerActor, req)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateLoan(ctx, readerActor, req)
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.loanRepo.AssertNotCalled(s.T(), "SaveLoan", mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestSettleInstallment_Success() {
	ctx := context.Background()
	loan := installmentLoan("300", 3)

	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-1").Return(&domain.PayPeriod{PayPeriodID: "pp-1"}, nil).Once()
	s.loanRepo.expectTx(true)
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, loan.LoanID).Return(loan, nil).Once()
	s.loanRepo.On("UpdateInstallmentsInTx", ctx, nil, mock.MatchedBy(func(insts []domain.Installment) bool {
		return len(insts) == 1 && insts[0].SequenceNumber == 2 && insts[0].Status == domain.InstallmentSettled &&
			*insts[0].SettlementPeriodRef == "pp-1" && insts[0].SettledOn.Equal(day("2025-06-10"))
	})).Return(nil).Once()
	s.loanRepo.On("UpdateLoanStateInTx", ctx, nil, mock.MatchedBy(func(l domain.Loan) bool {
		return l.OutstandingBalance.Equal(decimal.NewFromInt(200)) && l.Status == domain.LoanActive
	})).Return(nil).Once()

	got, err := s.service.SettleInstallment(ctx, writerActor, loan.LoanID, 2, dto.SettleInstallmentRequest{PayPeriodID: "pp-1"})

	s.Require().NoError(err)
	s.True(got.OutstandingBalance.Equal(decimal.NewFromInt(200)))
}

func (s *LoanServiceTestSuite) TestSettleInstallment_AlreadySettled() {
	ctx := context.Background()
	loan := installmentLoan("300", 3)
	_, err := loan.SettleInstallment(1, "pp-0", nil, day("2025-02-15"), "user-1", fixedNow)
	s.Require().NoError(err)

	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-1").Return(&domain.PayPeriod{PayPeriodID: "pp-1"}, nil).Once()
	s.loanRepo.expectTx(false)
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, loan.LoanID).Return(loan, nil).Once()

	_, err = s.service.SettleInstallment(ctx, writerActor, loan.LoanID, 1, dto.SettleInstallmentRequest{PayPeriodID: "pp-1"})

	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.loanRepo.AssertNotCalled(s.T(), "UpdateLoanStateInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LoanServiceTestSuite) TestSettleInstallment_UnknownPeriod() {
	ctx := context.Background()
	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.SettleInstallment(ctx, writerActor, "loan-1", 1, dto.SettleInstallmentRequest{PayPeriodID: "nope"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LoanServiceTestSuite) TestCancelLoan() {
	ctx := context.Background()
	loan := installmentLoan("1000", 3)
	_, err := loan.SettleInstallment(1, "pp-0", nil, day("2025-02-15"), "user-1", fixedNow)
	s.Require().NoError(err)

	s.loanRepo.expectTx(true)
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, loan.LoanID).Return(loan, nil).Once()
	s.loanRepo.On("UpdateInstallmentsInTx", ctx, nil, mock.MatchedBy(func(insts []domain.Installment) bool {
		return len(insts) == 2 && insts[0].Status == domain.InstallmentCancelled && insts[1].Status == domain.InstallmentCancelled
	})).Return(nil).Once()
	s.loanRepo.On("UpdateLoanStateInTx", ctx, nil, mock.MatchedBy(func(l domain.Loan) bool {
		return l.Status == domain.LoanCancelled
	})).Return(nil).Once()

	got, err := s.service.CancelLoan(ctx, writerActor, loan.LoanID)

	s.Require().NoError(err)
	s.Equal(domain.LoanCancelled, got.Status)
	s.Equal(domain.InstallmentSettled, got.Installments[0].Status)
}

func (s *LoanServiceTestSuite) TestRegisterFullPayment() {
	ctx := context.Background()
	single, err := domain.NewLoan(domain.LoanRequest{
		WorkerID:    "worker-1",
		Principal:   decimal.NewFromInt(500000),
		PaymentMode: domain.PaymentSingle,
		LoanDate:    day("2025-06-01"),
	}, "user-1", fixedNow, sequentialIDs())
	s.Require().NoError(err)

	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-1").Return(&domain.PayPeriod{PayPeriodID: "pp-1"}, nil).Once()
	s.loanRepo.expectTx(true)
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, single.LoanID).Return(single, nil).Once()
	s.loanRepo.On("UpdateLoanStateInTx", ctx, nil, mock.MatchedBy(func(l domain.Loan) bool {
		return l.Status == domain.LoanSettled && l.OutstandingBalance.IsZero() &&
			l.SettlementPeriodRef != nil && *l.SettlementPeriodRef == "pp-1" &&
			l.SettledOn != nil && l.SettledOn.Equal(day("2025-06-09"))
	})).Return(nil).Once()

	paidOn := dto.NewDate(day("2025-06-09"))
	got, err := s.service.RegisterFullPayment(ctx, writerActor, single.LoanID, dto.RegisterPaymentRequest{PayPeriodID: "pp-1", PaidOn: &paidOn})

	s.Require().NoError(err)
	s.Equal(domain.LoanSettled, got.Status)
	s.Equal("pp-1", *got.SettlementPeriodRef)
	s.Nil(got.SettlementPayrollID)
}

func (s *LoanServiceTestSuite) TestDeleteLoan() {
	ctx := context.Background()
	fresh := installmentLoan("300", 3)

	s.loanRepo.expectTx(true)
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, fresh.LoanID).Return(fresh, nil).Once()
	s.loanRepo.On("DeleteLoanInTx", ctx, nil, fresh.LoanID).Return(nil).Once()

	s.Require().NoError(s.service.DeleteLoan(ctx, writerActor, fresh.LoanID))
}

func (s *LoanServiceTestSuite) TestDeleteLoan_RefusedWithSettledInstallment() {
	ctx := context.Background()
	loan := installmentLoan("300", 3)
	_, err := loan.SettleInstallment(1, "pp-0", nil, day("2025-02-15"), "user-1", fixedNow)
	s.Require().NoError(err)

	s.loanRepo.expectTx(false)
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, loan.LoanID).Return(loan, nil).Once()

	err = s.service.DeleteLoan(ctx, writerActor, loan.LoanID)

	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.loanRepo.AssertNotCalled(s.T(), "DeleteLoanInTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
