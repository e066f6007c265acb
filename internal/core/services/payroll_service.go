package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const tablePayrolls = "payrolls"

type payrollService struct {
	BaseService
	payrollRepo   portsrepo.PayrollRepositoryWithTx
	workerRepo    portsrepo.WorkerReader
	payPeriodRepo portsrepo.PayPeriodReader
	recordRepo    portsrepo.LaborRecordReader
	laborRepo     portsrepo.LaborReader
	loanRepo      portsrepo.LoanTxWriter
	vigency       portssvc.VigencySvcFacade
}

// PayrollDeps groups the collaborators of the payroll service.
type PayrollDeps struct {
	PayrollRepo   portsrepo.PayrollRepositoryWithTx
	WorkerRepo    portsrepo.WorkerReader
	PayPeriodRepo portsrepo.PayPeriodReader
	RecordRepo    portsrepo.LaborRecordReader
	LaborRepo     portsrepo.LaborReader
	LoanRepo      portsrepo.LoanTxWriter
	Vigency       portssvc.VigencySvcFacade
}

// NewPayrollService creates the payroll service.
func NewPayrollService(deps PayrollDeps, options ...ServiceOption) portssvc.PayrollSvcFacade {
	return &payrollService{
		BaseService:   newBaseService(options...),
		payrollRepo:   deps.PayrollRepo,
		workerRepo:    deps.WorkerRepo,
		payPeriodRepo: deps.PayPeriodRepo,
		recordRepo:    deps.RecordRepo,
		laborRepo:     deps.LaborRepo,
		loanRepo:      deps.LoanRepo,
		vigency:       deps.Vigency,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) CreatePayroll(ctx context.Context, actor domain.Actor, req dto.CreatePayrollRequest) (*domain.Payroll, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	if _, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: worker %s", apperrors.ErrNotFound, req.WorkerID)
		}
		return nil, err
	}
	period, err := s.payPeriodRepo.FindPayPeriodByID(ctx, req.PayPeriodID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: quincena %s", apperrors.ErrNotFound, req.PayPeriodID)
		}
		return nil, err
	}
	if period.Status == domain.PayPeriodPaid {
		return nil, fmt.Errorf("%w: quincena %s is already paid", apperrors.ErrInvalidState, period.Label())
	}

	payroll := domain.Payroll{
		PayrollID:       s.NewID(),
		WorkerID:        req.WorkerID,
		PayPeriodID:     req.PayPeriodID,
		TotalEarned:     decimal.Zero,
		TotalDeductions: decimal.Zero,
		NetPay:          decimal.Zero,
		Status:          domain.PayrollDraft,
		Notes:           req.Notes,
		Lines:           []domain.PayrollLine{},
		AuditFields:     domain.NewAuditFields(actor.UserID, s.Now()),
	}

	if err := s.payrollRepo.SavePayroll(ctx, payroll); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: worker already has a payroll for quincena %s", apperrors.ErrDuplicate, period.Label())
		}
		s.LogError(ctx, err, "Failed to save payroll")
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditCreate, tablePayrolls, payroll.PayrollID, nil, payroll)
	return &payroll, nil
}

func (s *payrollService) GetPayroll(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	payroll, err := s.payrollRepo.FindPayrollByID(ctx, payrollID)
	if err != nil {
		if !isNotFound(err) {
			s.LogError(ctx, err, "Failed to get payroll", slog.String("payroll_id", payrollID))
		}
		return nil, err
	}
	return payroll, nil
}

func (s *payrollService) ListPayrolls(ctx context.Context, filter domain.PayrollFilter) ([]domain.Payroll, error) {
	payrolls, err := s.payrollRepo.ListPayrolls(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payrolls")
		return nil, err
	}
	if payrolls == nil {
		return []domain.Payroll{}, nil
	}
	return payrolls, nil
}

func (s *payrollService) AddAdjustment(ctx context.Context, actor domain.Actor, payrollID string, req dto.AddAdjustmentRequest) (*domain.Payroll, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid line type %q", apperrors.ErrValidation, req.Type)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if err := domain.CheckCents("amount", req.Amount); err != nil {
		return nil, err
	}

	var before domain.Payroll
	var payroll *domain.Payroll
	err := s.inTx(ctx, s.payrollRepo, func(tx pgx.Tx) error {
		var err error
		payroll, err = s.payrollRepo.FindPayrollForUpdate(ctx, tx, payrollID)
		if err != nil {
			return err
		}
		if !payroll.IsEditable() {
			return fmt.Errorf("%w: payroll %s is %s", apperrors.ErrInvalidState, payrollID, payroll.Status)
		}
		before = payroll.Clone()

		now := s.Now()
		line := domain.PayrollLine{
			LineID:      s.NewID(),
			PayrollID:   payrollID,
			Type:        req.Type,
			Concept:     domain.ConceptManualAdjustment,
			Description: req.Description,
			TotalValue:  req.Amount,
			CreatedAt:   now,
		}
		if err := s.payrollRepo.InsertLineInTx(ctx, tx, line); err != nil {
			return err
		}
		payroll.Lines = append(payroll.Lines, line)
		payroll.RecomputeTotals()
		payroll.Touch(actor.UserID, now)
		return s.payrollRepo.UpdatePayrollInTx(ctx, tx, *payroll)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add adjustment", slog.String("payroll_id", payrollID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tablePayrolls, payrollID, before, payroll)
	return payroll, nil
}

// laborLines prices every labor record of the payroll at the date it was worked.
func (s *payrollService) laborLines(ctx context.Context, tx pgx.Tx, payroll *domain.Payroll) ([]domain.PayrollLine, error) {
	records, err := s.recordRepo.ListLaborRecordsForPayrollInTx(ctx, tx, payroll.WorkerID, payroll.PayPeriodID)
	if err != nil {
		return nil, err
	}

	labors := make(map[string]*domain.Labor)
	lines := make([]domain.PayrollLine, 0, len(records))
	for _, r := range records {
		labor, ok := labors[r.LaborID]
		if !ok {
			labor, err = s.laborRepo.FindLaborByID(ctx, r.LaborID)
			if err != nil {
				return nil, err
			}
			labors[r.LaborID] = labor
		}

		price, err := s.vigency.CurrentValue(ctx, domain.LaborPriceSubject(r.LaborID), r.Date)
		if err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("%w: labor %s %s has no price on %s", apperrors.ErrValidation, labor.Code, labor.Name, r.Date.Format("2006-01-02"))
			}
			return nil, err
		}

		laborID := r.LaborID
		quantity := r.Quantity
		unitValue := price.Value
		lines = append(lines, domain.PayrollLine{
			LineID:      s.NewID(),
			PayrollID:   payroll.PayrollID,
			Type:        domain.LineEarning,
			Concept:     domain.ConceptLabor,
			Description: fmt.Sprintf("%s %s %s", labor.Code, labor.Name, r.Date.Format("2006-01-02")),
			LaborID:     &laborID,
			Quantity:    &quantity,
			UnitValue:   &unitValue,
			TotalValue:  quantity.Mul(unitValue).Round(2),
		})
	}
	return lines, nil
}

// loanLines deducts the next pending installment of every active loan, or the
// whole balance of SINGLE loans. Installments and balances already held by
// another unpaid payroll of the worker are left to that payroll.
func (s *payrollService) loanLines(ctx context.Context, tx pgx.Tx, payroll *domain.Payroll) ([]domain.PayrollLine, error) {
	loans, err := s.loanRepo.ListActiveLoansByWorkerInTx(ctx, tx, payroll.WorkerID)
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, nil
	}
	claims, err := s.payrollRepo.ListOpenLoanClaimsInTx(ctx, tx, payroll.WorkerID, payroll.PayrollID)
	if err != nil {
		return nil, err
	}
	claimed := domain.ClaimedInstallments(claims)

	var lines []domain.PayrollLine
	for i := range loans {
		loan := &loans[i]
		loanID := loan.LoanID
		line := domain.PayrollLine{
			LineID:    s.NewID(),
			PayrollID: payroll.PayrollID,
			Type:      domain.LineDeduction,
			Concept:   domain.ConceptLoan,
			LoanID:    &loanID,
		}
		switch loan.PaymentMode {
		case domain.PaymentInstallments:
			next := loan.NextPendingInstallment(claimed[loan.LoanID])
			if next == nil {
				continue
			}
			seq := next.SequenceNumber
			line.InstallmentSeq = &seq
			line.TotalValue = next.Amount
			line.Description = fmt.Sprintf("Cuota %d/%d préstamo %s", seq, len(loan.Installments), loan.LoanDate.Format("2006-01-02"))
		default:
			if !loan.OutstandingBalance.IsPositive() || domain.ClaimsWholeBalance(claims, loan.LoanID) {
				continue
			}
			line.TotalValue = loan.OutstandingBalance
			line.Description = fmt.Sprintf("Préstamo %s pago único", loan.LoanDate.Format("2006-01-02"))
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *payrollService) CalculatePayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	var before domain.Payroll
	var payroll *domain.Payroll
	err := s.inTx(ctx, s.payrollRepo, func(tx pgx.Tx) error {
		var err error
		payroll, err = s.payrollRepo.FindPayrollForUpdate(ctx, tx, payrollID)
		if err != nil {
			return err
		}
		if !payroll.IsEditable() {
			return fmt.Errorf("%w: payroll %s is %s", apperrors.ErrInvalidState, payrollID, payroll.Status)
		}
		before = payroll.Clone()

		earnings, err := s.laborLines(ctx, tx, payroll)
		if err != nil {
			return err
		}
		deductions, err := s.loanLines(ctx, tx, payroll)
		if err != nil {
			return err
		}

		now := s.Now()
		generated := append(earnings, deductions...)
		for i := range generated {
			generated[i].CreatedAt = now
		}
		if err := s.payrollRepo.ReplaceGeneratedLinesInTx(ctx, tx, payrollID, generated); err != nil {
			return err
		}

		payroll.Lines = append(payroll.ManualLines(), generated...)
		payroll.RecomputeTotals()
		if err := payroll.MarkCalculated(actor.UserID, now); err != nil {
			return err
		}
		return s.payrollRepo.UpdatePayrollInTx(ctx, tx, *payroll)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate payroll", slog.String("payroll_id", payrollID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tablePayrolls, payrollID, before, payroll)
	s.LogInfo(ctx, "Payroll calculated",
		slog.String("payroll_id", payrollID),
		slog.Int("lines", len(payroll.Lines)),
		slog.String("net_pay", payroll.NetPay.String()))
	return payroll, nil
}

// checkLoanLines row-locks the loans the payroll deducts from and makes sure
// every deduction can still be collected and is not held by another approved
// payroll. A failing payroll has to be recalculated.
func (s *payrollService) checkLoanLines(ctx context.Context, tx pgx.Tx, payroll *domain.Payroll) error {
	lines := payroll.LoanLines()
	if len(lines) == 0 {
		return nil
	}

	for _, line := range lines {
		loan, err := s.loanRepo.FindLoanForUpdate(ctx, tx, *line.LoanID)
		if err != nil {
			return err
		}
		if loan.Status != domain.LoanActive {
			return fmt.Errorf("%w: loan %s is %s, recalculate payroll %s", apperrors.ErrInvalidState, loan.LoanID, loan.Status, payroll.PayrollID)
		}
		if line.InstallmentSeq == nil {
			continue
		}
		inst, err := loan.FindInstallment(*line.InstallmentSeq)
		if err != nil {
			return err
		}
		if inst.Status != domain.InstallmentPending {
			return fmt.Errorf("%w: installment %d of loan %s is %s, recalculate payroll %s",
				apperrors.ErrInvalidState, inst.SequenceNumber, loan.LoanID, inst.Status, payroll.PayrollID)
		}
	}

	claims, err := s.payrollRepo.ListOpenLoanClaimsInTx(ctx, tx, payroll.WorkerID, payroll.PayrollID)
	if err != nil {
		return err
	}
	if c := payroll.ApprovedConflict(claims); c != nil {
		return fmt.Errorf("%w: loan %s is already deducted by approved payroll %s, recalculate payroll %s",
			apperrors.ErrInvalidState, c.LoanID, c.PayrollID, payroll.PayrollID)
	}
	return nil
}

func (s *payrollService) ApprovePayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error) {
	if err := s.RequireSuperAdmin(actor); err != nil {
		return nil, err
	}

	var before domain.Payroll
	var payroll *domain.Payroll
	err := s.inTx(ctx, s.payrollRepo, func(tx pgx.Tx) error {
		var err error
		payroll, err = s.payrollRepo.FindPayrollForUpdate(ctx, tx, payrollID)
		if err != nil {
			return err
		}
		before = payroll.Clone()
		if err := payroll.Approve(actor.UserID, s.Now()); err != nil {
			return err
		}
		if err := s.checkLoanLines(ctx, tx, payroll); err != nil {
			return err
		}
		return s.payrollRepo.UpdatePayrollInTx(ctx, tx, *payroll)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to approve payroll", slog.String("payroll_id", payrollID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tablePayrolls, payrollID, before, payroll)
	return payroll, nil
}

// MarkPayrollPaid pays the payroll and settles its loan deductions in the same transaction.
func (s *payrollService) MarkPayrollPaid(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error) {
	if err := s.RequireSuperAdmin(actor); err != nil {
		return nil, err
	}

	var before domain.Payroll
	var payroll *domain.Payroll
	err := s.inTx(ctx, s.payrollRepo, func(tx pgx.Tx) error {
		var err error
		payroll, err = s.payrollRepo.FindPayrollForUpdate(ctx, tx, payrollID)
		if err != nil {
			return err
		}
		before = payroll.Clone()
		now := s.Now()
		if err := payroll.MarkPaid(actor.UserID, now); err != nil {
			return err
		}

		for _, line := range payroll.LoanLines() {
			loan, err := s.loanRepo.FindLoanForUpdate(ctx, tx, *line.LoanID)
			if err != nil {
				return err
			}
			if line.InstallmentSeq != nil {
				inst, err := loan.SettleInstallment(*line.InstallmentSeq, payroll.PayPeriodID, &payroll.PayrollID, domain.DateOnly(now), actor.UserID, now)
				if err != nil {
					return fmt.Errorf("loan %s: %w", loan.LoanID, err)
				}
				if err := s.loanRepo.UpdateInstallmentsInTx(ctx, tx, []domain.Installment{*inst}); err != nil {
					return err
				}
			} else if err := loan.RegisterFullPayment(payroll.PayPeriodID, &payroll.PayrollID, now, actor.UserID, now); err != nil {
				return fmt.Errorf("loan %s: %w", loan.LoanID, err)
			}
			if err := s.loanRepo.UpdateLoanStateInTx(ctx, tx, *loan); err != nil {
				return err
			}
		}

		return s.payrollRepo.UpdatePayrollInTx(ctx, tx, *payroll)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to mark payroll paid", slog.String("payroll_id", payrollID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tablePayrolls, payrollID, before, payroll)
	s.LogInfo(ctx, "Payroll paid",
		slog.String("payroll_id", payrollID),
		slog.Int("loan_deductions", len(payroll.LoanLines())))
	return payroll, nil
}
