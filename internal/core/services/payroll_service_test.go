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

type PayrollServiceTestSuite struct {
	suite.Suite
	payrollRepo   *MockPayrollRepository
	workerRepo    *MockWorkerRepository
	payPeriodRepo *MockPayPeriodRepository
	recordRepo    *MockLaborRecordRepository
	laborRepo     *MockLaborRepository
	loanRepo      *MockLoanRepository
	vigency       *MockVigencyService
	audit         *MockAuditRecorder
	service       portssvc.PayrollSvcFacade
}

func (s *PayrollServiceTestSuite) SetupTest() {
	s.payrollRepo = new(MockPayrollRepository)
	s.workerRepo = new(MockWorkerRepository)
	s.payPeriodRepo = new(MockPayPeriodRepository)
	s.recordRepo = new(MockLaborRecordRepository)
	s.laborRepo = new(MockLaborRepository)
	s.loanRepo = new(MockLoanRepository)
	s.vigency = new(MockVigencyService)
	s.audit = new(MockAuditRecorder)
	s.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	s.service = services.NewPayrollService(services.PayrollDeps{
		PayrollRepo:   s.payrollRepo,
		WorkerRepo:    s.workerRepo,
		PayPeriodRepo: s.payPeriodRepo,
		RecordRepo:    s.recordRepo,
		LaborRepo:     s.laborRepo,
		LoanRepo:      s.loanRepo,
		Vigency:       s.vigency,
	}, services.WithClock(fixedClock), services.WithIDGenerator(sequentialIDs()), services.WithAuditRecorder(s.audit))
}

func (s *PayrollServiceTestSuite) TearDownTest() {
	s.payrollRepo.AssertExpectations(s.T())
	s.workerRepo.AssertExpectations(s.T())
	s.payPeriodRepo.AssertExpectations(s.T())
	s.recordRepo.AssertExpectations(s.T())
	s.laborRepo.AssertExpectations(s.T())
	s.loanRepo.AssertExpectations(s.T())
	s.vigency.AssertExpectations(s.T())
}

func draftPayroll(status domain.PayrollStatus, lines ...domain.PayrollLine) *domain.Payroll {
	p := &domain.Payroll{
		PayrollID:   "pay-1",
		WorkerID:    "worker-1",
		PayPeriodID: "pp-1",
		Status:      status,
		Lines:       lines,
	}
	p.RecomputeTotals()
	return p
}

func laborRecord(id, date, quantity string) domain.LaborRecord {
	return domain.LaborRecord{
		RecordID:    id,
		WorkerID:    "worker-1",
		LaborID:     "labor-1",
		PayPeriodID: "pp-1",
		Date:        day(date),
		Quantity:    decimal.RequireFromString(quantity),
	}
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll() {
	ctx := context.Background()
	bonus := domain.PayrollLine{LineID: "manual-1", Type: domain.LineEarning, Concept: domain.ConceptManualAdjustment, TotalValue: decimal.NewFromInt(15000)}
	stale := domain.PayrollLine{LineID: "old-1", Type: domain.LineEarning, Concept: domain.ConceptLabor, TotalValue: decimal.NewFromInt(999)}
	payroll := draftPayroll(domain.PayrollDraft, bonus, stale)

	installments := installmentLoan("300", 3)
	installments.LoanID = "loan-a"
	single, err := domain.NewLoan(domain.LoanRequest{
		WorkerID:    "worker-1",
		Principal:   decimal.NewFromInt(500),
		PaymentMode: domain.PaymentSingle,
		LoanDate:    day("2025-05-20"),
	}, "user-1", fixedNow, sequentialIDs())
	s.Require().NoError(err)
	single.LoanID = "loan-b"

	s.payrollRepo.expectTx(true)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(payroll, nil).Once()
	s.recordRepo.On("ListLaborRecordsForPayrollInTx", ctx, nil, "worker-1", "pp-1").Return([]domain.LaborRecord{
		laborRecord("r1", "2025-06-02", "2"),
		laborRecord("r2", "2025-06-05", "1.5"),
	}, nil).Once()
	s.laborRepo.On("FindLaborByID", ctx, "labor-1").Return(&domain.Labor{LaborID: "labor-1", Code: "FUM01", Name: "Fumigación", Active: true}, nil).Once()
	price := &domain.PricedWindow{WindowID: "w1", Value: decimal.NewFromInt(47450)}
	s.vigency.On("CurrentValue", ctx, domain.LaborPriceSubject("labor-1"), day("2025-06-02")).Return(price, nil).Once()
	s.vigency.On("CurrentValue", ctx, domain.LaborPriceSubject("labor-1"), day("2025-06-05")).Return(price, nil).Once()
	s.loanRepo.On("ListActiveLoansByWorkerInTx", ctx, nil, "worker-1").Return([]domain.Loan{*installments, *single}, nil).Once()
	s.payrollRepo.On("ListOpenLoanClaimsInTx", ctx, nil, "worker-1", "pay-1").Return([]domain.LoanClaim{}, nil).Once()
	s.payrollRepo.On("ReplaceGeneratedLinesInTx", ctx, nil, "pay-1", mock.MatchedBy(func(lines []domain.PayrollLine) bool {
		return len(lines) == 4
	})).Return(nil).Once()
	s.payrollRepo.On("UpdatePayrollInTx", ctx, nil, mock.MatchedBy(func(p domain.Payroll) bool {
		return p.Status == domain.PayrollCalculated
	})).Return(nil).Once()

	got, err := s.service.CalculatePayroll(ctx, writerActor, "pay-1")

	s.Require().NoError(err)
	s.Equal(domain.PayrollCalculated, got.Status)
	s.Require().Len(got.Lines, 5)
	s.Equal("manual-1", got.Lines[0].LineID)
	s.Equal("FUM01 Fumigación 2025-06-02", got.Lines[1].Description)
	s.True(got.Lines[1].TotalValue.Equal(decimal.NewFromInt(94900)))
	s.True(got.Lines[2].TotalValue.Equal(decimal.NewFromInt(71175)))
	s.Equal("Cuota 1/3 préstamo 2025-02-03", got.Lines[3].Description)
	s.Equal(1, *got.Lines[3].InstallmentSeq)
	s.True(got.Lines[3].TotalValue.Equal(decimal.NewFromInt(100)))
	s.Equal("Préstamo 2025-05-20 pago único", got.Lines[4].Description)
	s.Nil(got.Lines[4].InstallmentSeq)

	s.True(got.TotalEarned.Equal(decimal.NewFromInt(181075)), "earned %s", got.TotalEarned)
	s.True(got.TotalDeductions.Equal(decimal.NewFromInt(600)))
	s.True(got.NetPay.Equal(decimal.NewFromInt(180475)))
	s.NotNil(got.CalculatedAt)
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_MissingPrice() {
	ctx := context.Background()

	s.payrollRepo.expectTx(false)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(draftPayroll(domain.PayrollDraft), nil).Once()
	s.recordRepo.On("ListLaborRecordsForPayrollInTx", ctx, nil, "worker-1", "pp-1").Return([]domain.LaborRecord{
		laborRecord("r1", "2024-12-20", "1"),
	}, nil).Once()
	s.laborRepo.On("FindLaborByID", ctx, "labor-1").Return(&domain.Labor{LaborID: "labor-1", Code: "FUM01", Name: "Fumigación"}, nil).Once()
	s.vigency.On("CurrentValue", ctx, domain.LaborPriceSubject("labor-1"), day("2024-12-20")).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CalculatePayroll(ctx, writerActor, "pay-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "FUM01")
	s.payrollRepo.AssertNotCalled(s.T(), "ReplaceGeneratedLinesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.payrollRepo.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_NotEditable() {
	ctx := context.Background()

	s.payrollRepo.expectTx(false)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(draftPayroll(domain.PayrollApproved), nil).Once()

	_, err := s.service.CalculatePayroll(ctx, writerActor, "pay-1")
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *PayrollServiceTestSuite) TestMarkPayrollPaid_SettlesLoans() {
	ctx := context.Background()
	installments := installmentLoan("300", 3)
	installments.LoanID = "loan-a"
	single, err := domain.NewLoan(domain.LoanRequest{
		WorkerID:    "worker-1",
		Principal:   decimal.NewFromInt(500),
		PaymentMode: domain.PaymentSingle,
		LoanDate:    day("2025-05-20"),
	}, "user-1", fixedNow, sequentialIDs())
	s.Require().NoError(err)
	single.LoanID = "loan-b"

	payroll := draftPayroll(domain.PayrollApproved,
		domain.PayrollLine{LineID: "l1", Type: domain.LineEarning, Concept: domain.ConceptLabor, TotalValue: decimal.NewFromInt(94900)},
		domain.PayrollLine{LineID: "l2", Type: domain.LineDeduction, Concept: domain.ConceptLoan, LoanID: strPtr("loan-a"), InstallmentSeq: intPtr(1), TotalValue: decimal.NewFromInt(100)},
		domain.PayrollLine{LineID: "l3", Type: domain.LineDeduction, Concept: domain.ConceptLoan, LoanID: strPtr("loan-b"), TotalValue: decimal.NewFromInt(500)},
	)

	s.payrollRepo.expectTx(true)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(payroll, nil).Once()
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, "loan-a").Return(installments, nil).Once()
	s.loanRepo.On("UpdateInstallmentsInTx", ctx, nil, mock.MatchedBy(func(insts []domain.Installment) bool {
		return len(insts) == 1 && insts[0].SequenceNumber == 1 &&
			*insts[0].PayrollID == "pay-1" && *insts[0].SettlementPeriodRef == "pp-1"
	})).Return(nil).Once()
	s.loanRepo.On("UpdateLoanStateInTx", ctx, nil, mock.MatchedBy(func(l domain.Loan) bool {
		return l.LoanID == "loan-a" && l.OutstandingBalance.Equal(decimal.NewFromInt(200))
	})).Return(nil).Once()
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, "loan-b").Return(single, nil).Once()
	s.loanRepo.On("UpdateLoanStateInTx", ctx, nil, mock.MatchedBy(func(l domain.Loan) bool {
		return l.LoanID == "loan-b" && l.Status == domain.LoanSettled &&
			*l.SettlementPeriodRef == "pp-1" && *l.SettlementPayrollID == "pay-1"
	})).Return(nil).Once()
	s.payrollRepo.On("UpdatePayrollInTx", ctx, nil, mock.MatchedBy(func(p domain.Payroll) bool {
		return p.Status == domain.PayrollPaid
	})).Return(nil).Once()

	got, err := s.service.MarkPayrollPaid(ctx, adminActor, "pay-1")

	s.Require().NoError(err)
	s.Equal(domain.PayrollPaid, got.Status)
	s.NotNil(got.PaidAt)
}

func (s *PayrollServiceTestSuite) TestMarkPayrollPaid_CancelledLoanAborts() {
	ctx := context.Background()
	loan := installmentLoan("300", 3)
	loan.LoanID = "loan-a"
	_, err := loan.Cancel("user-1", fixedNow)
	s.Require().NoError(err)

	payroll := draftPayroll(domain.PayrollApproved,
		domain.PayrollLine{LineID: "l2", Type: domain.LineDeduction, Concept: domain.ConceptLoan, LoanID: strPtr("loan-a"), InstallmentSeq: intPtr(1), TotalValue: decimal.NewFromInt(100)},
	)

	s.payrollRepo.expectTx(false)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(payroll, nil).Once()
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, "loan-a").Return(loan, nil).Once()

	_, err = s.service.MarkPayrollPaid(ctx, adminActor, "pay-1")

	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.payrollRepo.AssertNotCalled(s.T(), "UpdatePayrollInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PayrollServiceTestSuite) TestApprovePayroll_RequiresCalculated() {
	ctx := context.Background()

	s.payrollRepo.expectTx(false)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(draftPayroll(domain.PayrollDraft), nil).Once()

	_, err := s.service.ApprovePayroll(ctx, adminActor, "pay-1")
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *PayrollServiceTestSuite) TestApproveAndPay_RequireSuperAdmin() {
	ctx := context.Background()

	_, err := s.service.ApprovePayroll(ctx, writerActor, "pay-1")
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.service.MarkPayrollPaid(ctx, writerActor, "pay-1")
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.payrollRepo.AssertNotCalled(s.T(), "Begin", mock.Anything)
}

// loanClaimsOf lists the loan deductions of p the way the repository reports them.
func loanClaimsOf(p *domain.Payroll) []domain.LoanClaim {
	var claims []domain.LoanClaim
	for _, line := range p.LoanLines() {
		claims = append(claims, domain.LoanClaim{
			PayrollID:      p.PayrollID,
			PayrollStatus:  p.Status,
			LoanID:         *line.LoanID,
			InstallmentSeq: line.InstallmentSeq,
		})
	}
	return claims
}

func (s *PayrollServiceTestSuite) TestTwoPayrollsDeductSameLoan() {
	ctx := context.Background()
	loan := installmentLoan("300", 3)
	loan.LoanID = "loan-a"

	first := draftPayroll(domain.PayrollDraft)
	second := draftPayroll(domain.PayrollDraft)
	second.PayrollID = "pay-2"
	second.PayPeriodID = "pp-2"

	calculate := func(p *domain.Payroll, claims []domain.LoanClaim) *domain.Payroll {
		s.payrollRepo.expectTx(true)
		s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, p.PayrollID).Return(p, nil).Once()
		s.recordRepo.On("ListLaborRecordsForPayrollInTx", ctx, nil, "worker-1", p.PayPeriodID).Return([]domain.LaborRecord{}, nil).Once()
		s.loanRepo.On("ListActiveLoansByWorkerInTx", ctx, nil, "worker-1").Return([]domain.Loan{loan.Clone()}, nil).Once()
		s.payrollRepo.On("ListOpenLoanClaimsInTx", ctx, nil, "worker-1", p.PayrollID).Return(claims, nil).Once()
		s.payrollRepo.On("ReplaceGeneratedLinesInTx", ctx, nil, p.PayrollID, mock.Anything).Return(nil).Once()
		s.payrollRepo.On("UpdatePayrollInTx", ctx, nil, mock.Anything).Return(nil).Once()
		got, err := s.service.CalculatePayroll(ctx, writerActor, p.PayrollID)
		s.Require().NoError(err)
		return got
	}

	first = calculate(first, nil)
	s.Require().Len(first.LoanLines(), 1)
	s.Equal(1, *first.LoanLines()[0].InstallmentSeq)

	// The first payroll is approved but unpaid when the second one is calculated.
	first.Status = domain.PayrollApproved
	second = calculate(second, loanClaimsOf(first))
	s.Require().Len(second.LoanLines(), 1)
	s.Equal(2, *second.LoanLines()[0].InstallmentSeq)

	s.payrollRepo.expectTx(true)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-2").Return(second, nil).Once()
	s.loanRepo.On("FindLoanForUpdate", ctx, nil, "loan-a").Return(loan, nil).Once()
	s.payrollRepo.On("ListOpenLoanClaimsInTx", ctx, nil, "worker-1", "pay-2").Return(loanClaimsOf(first), nil).Once()
	s.payrollRepo.On("UpdatePayrollInTx", ctx, nil, mock.Anything).Return(nil).Once()
	second, err := s.service.ApprovePayroll(ctx, adminActor, "pay-2")
	s.Require().NoError(err)

	for _, p := range []*domain.Payroll{first, second} {
		s.payrollRepo.expectTx(true)
		s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, p.PayrollID).Return(p, nil).Once()
		s.loanRepo.On("FindLoanForUpdate", ctx, nil, "loan-a").Return(loan, nil).Once()
		s.loanRepo.On("UpdateInstallmentsInTx", ctx, nil, mock.Anything).Return(nil).Once()
		s.loanRepo.On("UpdateLoanStateInTx", ctx, nil, mock.Anything).Return(nil).Once()
		s.payrollRepo.On("UpdatePayrollInTx", ctx, nil, mock.Anything).Return(nil).Once()
		_, err := s.service.MarkPayrollPaid(ctx, adminActor, p.PayrollID)
		s.Require().NoError(err, "paying %s", p.PayrollID)
	}

	s.Equal(domain.InstallmentSettled, loan.Installments[0].Status)
	s.Equal("pay-1", *loan.Installments[0].PayrollID)
	s.Equal(domain.InstallmentSettled, loan.Installments[1].Status)
	s.Equal("pay-2", *loan.Installments[1].PayrollID)
	s.Equal(domain.InstallmentPending, loan.Installments[2].Status)
	s.True(loan.OutstandingBalance.Equal(decimal.NewFromInt(100)))
}

func (s *PayrollServiceTestSuite) TestCalculatePayroll_SkipsClaimedSingleLoan() {
	ctx := context.Background()
	single, err := domain.NewLoan(domain.LoanRequest{
		WorkerID:    "worker-1",
		Principal:   decimal.NewFromInt(500),
		PaymentMode: domain.PaymentSingle,
		LoanDate:    day("2025-05-20"),
	}, "user-1", fixedNow, sequentialIDs())
	s.Require().NoError(err)
	single.LoanID = "loan-b"
	claims := []domain.LoanClaim{{PayrollID: "pay-0", PayrollStatus: domain.PayrollCalculated, LoanID: "loan-b"}}

	s.payrollRepo.expectTx(true)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(draftPayroll(domain.PayrollDraft), nil).Once()
	s.recordRepo.On("ListLaborRecordsForPayrollInTx", ctx, nil, "worker-1", "pp-1").Return([]domain.LaborRecord{}, nil).Once()
	s.loanRepo.On("ListActiveLoansByWorkerInTx", ctx, nil, "worker-1").Return([]domain.Loan{*single}, nil).Once()
	s.payrollRepo.On("ListOpenLoanClaimsInTx", ctx, nil, "worker-1", "pay-1").Return(claims, nil).Once()
	s.payrollRepo.On("ReplaceGeneratedLinesInTx", ctx, nil, "pay-1", mock.MatchedBy(func(lines []domain.PayrollLine) bool {
		return len(lines) == 0
	})).Return(nil).Once()
	s.payrollRepo.On("UpdatePayrollInTx", ctx, nil, mock.Anything).Return(nil).Once()

	got, err := s.service.CalculatePayroll(ctx, writerActor, "pay-1")

	s.Require().NoError(err)
	s.Empty(got.LoanLines())
	s.True(got.TotalDeductions.IsZero())
}

func (s *PayrollServiceTestSuite) TestApprovePayroll_LoanLineChecks() {
	ctx := context.Background()
	line := domain.PayrollLine{LineID: "l1", Type: domain.LineDeduction, Concept: domain.ConceptLoan, LoanID: strPtr("loan-a"), InstallmentSeq: intPtr(1), TotalValue: decimal.NewFromInt(100)}

	s.Run("installment held by another approved payroll", func() {
		loan := installmentLoan("300", 3)
		loan.LoanID = "loan-a"
		claims := []domain.LoanClaim{
			{PayrollID: "pay-3", PayrollStatus: domain.PayrollCalculated, LoanID: "loan-a", InstallmentSeq: intPtr(1)},
			{PayrollID: "pay-0", PayrollStatus: domain.PayrollApproved, LoanID: "loan-a", InstallmentSeq: intPtr(1)},
		}
		s.payrollRepo.expectTx(false)
		s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(draftPayroll(domain.PayrollCalculated, line), nil).Once()
		s.loanRepo.On("FindLoanForUpdate", ctx, nil, "loan-a").Return(loan, nil).Once()
		s.payrollRepo.On("ListOpenLoanClaimsInTx", ctx, nil, "worker-1", "pay-1").Return(claims, nil).Once()

		_, err := s.service.ApprovePayroll(ctx, adminActor, "pay-1")
		s.ErrorIs(err, apperrors.ErrInvalidState)
		s.Contains(err.Error(), "pay-0")
	})

	s.Run("installment settled since calculation", func() {
		loan := installmentLoan("300", 3)
		loan.LoanID = "loan-a"
		_, err := loan.SettleInstallment(1, "pp-0", nil, day("2025-06-01"), "user-1", fixedNow)
		s.Require().NoError(err)
		s.payrollRepo.expectTx(false)
		s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(draftPayroll(domain.PayrollCalculated, line), nil).Once()
		s.loanRepo.On("FindLoanForUpdate", ctx, nil, "loan-a").Return(loan, nil).Once()

		_, err = s.service.ApprovePayroll(ctx, adminActor, "pay-1")
		s.ErrorIs(err, apperrors.ErrInvalidState)
		s.Contains(err.Error(), "recalculate")
	})

	s.Run("claims of editable payrolls do not block", func() {
		loan := installmentLoan("300", 3)
		loan.LoanID = "loan-a"
		claims := []domain.LoanClaim{{PayrollID: "pay-3", PayrollStatus: domain.PayrollCalculated, LoanID: "loan-a", InstallmentSeq: intPtr(1)}}
		s.payrollRepo.expectTx(true)
		s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(draftPayroll(domain.PayrollCalculated, line), nil).Once()
		s.loanRepo.On("FindLoanForUpdate", ctx, nil, "loan-a").Return(loan, nil).Once()
		s.payrollRepo.On("ListOpenLoanClaimsInTx", ctx, nil, "worker-1", "pay-1").Return(claims, nil).Once()
		s.payrollRepo.On("UpdatePayrollInTx", ctx, nil, mock.MatchedBy(func(p domain.Payroll) bool {
			return p.Status == domain.PayrollApproved
		})).Return(nil).Once()

		got, err := s.service.ApprovePayroll(ctx, adminActor, "pay-1")
		s.Require().NoError(err)
		s.Equal(domain.PayrollApproved, got.Status)

		s.audit.AssertCalled(s.T(), "Record", ctx, adminActor, domain.AuditUpdate, "payrolls", "pay-1",
			mock.MatchedBy(func(before domain.Payroll) bool { return before.Status == domain.PayrollCalculated }),
			mock.MatchedBy(func(after *domain.Payroll) bool { return after.Status == domain.PayrollApproved }))
	})

	s.payrollRepo.AssertNumberOfCalls(s.T(), "UpdatePayrollInTx", 1)
}

func (s *PayrollServiceTestSuite) TestAddAdjustment() {
	ctx := context.Background()
	payroll := draftPayroll(domain.PayrollCalculated,
		domain.PayrollLine{LineID: "l1", Type: domain.LineEarning, Concept: domain.ConceptLabor, TotalValue: decimal.NewFromInt(100000)},
	)

	s.payrollRepo.expectTx(true)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(payroll, nil).Once()
	s.payrollRepo.On("InsertLineInTx", ctx, nil, mock.MatchedBy(func(l domain.PayrollLine) bool {
		return l.Concept == domain.ConceptManualAdjustment && l.Type == domain.LineDeduction && l.LineID == "id-1"
	})).Return(nil).Once()
	s.payrollRepo.On("UpdatePayrollInTx", ctx, nil, mock.Anything).Return(nil).Once()

	got, err := s.service.AddAdjustment(ctx, writerActor, "pay-1", dto.AddAdjustmentRequest{
		Type:        domain.LineDeduction,
		Description: "Herramienta extraviada",
		Amount:      decimal.NewFromInt(20000),
	})

	s.Require().NoError(err)
	s.Len(got.Lines, 2)
	s.True(got.NetPay.Equal(decimal.NewFromInt(80000)))
}

func (s *PayrollServiceTestSuite) TestAddAdjustment_Rejected() {
	ctx := context.Background()

	_, err := s.service.AddAdjustment(ctx, writerActor, "pay-1", dto.AddAdjustmentRequest{Type: "BONUS", Amount: decimal.NewFromInt(1)})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.AddAdjustment(ctx, writerActor, "pay-1", dto.AddAdjustmentRequest{Type: domain.LineEarning, Amount: decimal.RequireFromString("1500.001")})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.AddAdjustment(ctx, readerActor, "pay-1", dto.AddAdjustmentRequest{Type: domain.LineEarning, Amount: decimal.NewFromInt(1)})
	s.ErrorIs(err, apperrors.ErrForbidden)

	s.payrollRepo.expectTx(false)
	s.payrollRepo.On("FindPayrollForUpdate", ctx, nil, "pay-1").Return(draftPayroll(domain.PayrollPaid), nil).Once()
	_, err = s.service.AddAdjustment(ctx, writerActor, "pay-1", dto.AddAdjustmentRequest{Type: domain.LineEarning, Amount: decimal.NewFromInt(1)})
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *PayrollServiceTestSuite) TestCreatePayroll() {
	ctx := context.Background()
	req := dto.CreatePayrollRequest{WorkerID: "worker-1", PayPeriodID: "pp-1"}
	period, err := domain.NewPayPeriod("pp-1", 2025, 6, 1, fixedNow)
	s.Require().NoError(err)

	s.workerRepo.On("FindWorkerByID", ctx, "worker-1").Return(activeWorker("worker-1"), nil).Times(3)
	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-1").Return(period, nil).Twice()
	s.payrollRepo.On("SavePayroll", ctx, mock.MatchedBy(func(p domain.Payroll) bool {
		return p.PayrollID == "id-1" && p.Status == domain.PayrollDraft && p.NetPay.IsZero()
	})).Return(nil).Once()

	got, err := s.service.CreatePayroll(ctx, writerActor, req)
	s.Require().NoError(err)
	s.Equal("id-1", got.PayrollID)
	s.NotNil(got.Lines)

	s.payrollRepo.On("SavePayroll", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	_, err = s.service.CreatePayroll(ctx, writerActor, req)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	paid := *period
	paid.Status = domain.PayPeriodPaid
	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-1").Return(&paid, nil).Once()
	_, err = s.service.CreatePayroll(ctx, writerActor, req)
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
