package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/jackc/pgx/v5"
)

const tableLoans = "loans"

type loanService struct {
	BaseService
	loanRepo      portsrepo.LoanRepositoryWithTx
	workerRepo    portsrepo.WorkerReader
	payPeriodRepo portsrepo.PayPeriodReader
}

// NewLoanService creates the loan amortization service.
func NewLoanService(loanRepo portsrepo.LoanRepositoryWithTx, workerRepo portsrepo.WorkerReader, payPeriodRepo portsrepo.PayPeriodReader, options ...ServiceOption) portssvc.LoanSvcFacade {
	return &loanService{
		BaseService:   newBaseService(options...),
		loanRepo:      loanRepo,
		workerRepo:    workerRepo,
		payPeriodRepo: payPeriodRepo,
	}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) CreateLoan(ctx context.Context, actor domain.Actor, req dto.CreateLoanRequest) (*domain.Loan, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, req.WorkerID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: worker %s", apperrors.ErrNotFound, req.WorkerID)
		}
		s.LogError(ctx, err, "Failed to load worker for loan", slog.String("worker_id", req.WorkerID))
		return nil, err
	}
	if worker.Status != domain.WorkerActive {
		return nil, fmt.Errorf("%w: worker %s is %s, loans need an active worker", apperrors.ErrValidation, worker.WorkerID, worker.Status)
	}

	loan, err := domain.NewLoan(domain.LoanRequest{
		WorkerID:         req.WorkerID,
		Principal:        req.Principal,
		PaymentMode:      req.PaymentMode,
		InstallmentCount: req.InstallmentCount,
		LoanDate:         req.LoanDate.Time,
		Notes:            req.Notes,
	}, actor.UserID, s.Now(), s.NewID)
	if err != nil {
		return nil, err
	}

	if err := s.loanRepo.SaveLoan(ctx, *loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("worker_id", req.WorkerID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditCreate, tableLoans, loan.LoanID, nil, loan)
	s.LogInfo(ctx, "Loan created",
		slog.String("loan_id", loan.LoanID),
		slog.String("worker_id", loan.WorkerID),
		slog.String("principal", loan.Principal.String()),
		slog.String("payment_mode", string(loan.PaymentMode)))
	return loan, nil
}

func (s *loanService) GetLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if !isNotFound(err) {
			s.LogError(ctx, err, "Failed to get loan", slog.String("loan_id", loanID))
		}
		return nil, err
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans")
		return nil, err
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

func (s *loanService) requirePayPeriod(ctx context.Context, payPeriodID string) error {
	if _, err := s.payPeriodRepo.FindPayPeriodByID(ctx, payPeriodID); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: quincena %s", apperrors.ErrNotFound, payPeriodID)
		}
		return err
	}
	return nil
}

func (s *loanService) SettleInstallment(ctx context.Context, actor domain.Actor, loanID string, sequence int, req dto.SettleInstallmentRequest) (*domain.Loan, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}
	if err := s.requirePayPeriod(ctx, req.PayPeriodID); err != nil {
		return nil, err
	}

	now := s.Now()
	settledOn := domain.DateOnly(now)
	if req.SettledOn != nil && !req.SettledOn.IsZero() {
		settledOn = domain.DateOnly(req.SettledOn.Time)
	}

	var before domain.Loan
	var loan *domain.Loan
	err := s.inTx(ctx, s.loanRepo, func(tx pgx.Tx) error {
		var err error
		loan, err = s.loanRepo.FindLoanForUpdate(ctx, tx, loanID)
		if err != nil {
			return err
		}
		before = loan.Clone()
		inst, err := loan.SettleInstallment(sequence, req.PayPeriodID, req.PayrollID, settledOn, actor.UserID, now)
		if err != nil {
			return err
		}
		if err := s.loanRepo.UpdateInstallmentsInTx(ctx, tx, []domain.Installment{*inst}); err != nil {
			return err
		}
		return s.loanRepo.UpdateLoanStateInTx(ctx, tx, *loan)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to settle installment",
			slog.String("loan_id", loanID),
			slog.Int("sequence", sequence))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tableLoans, loanID, before, loan)
	s.LogInfo(ctx, "Installment settled",
		slog.String("loan_id", loanID),
		slog.Int("sequence", sequence),
		slog.String("outstanding_balance", loan.OutstandingBalance.String()),
		slog.String("status", string(loan.Status)))
	return loan, nil
}

func (s *loanService) RegisterFullPayment(ctx context.Context, actor domain.Actor, loanID string, req dto.RegisterPaymentRequest) (*domain.Loan, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}
	if err := s.requirePayPeriod(ctx, req.PayPeriodID); err != nil {
		return nil, err
	}

	now := s.Now()
	paidOn := now
	if req.PaidOn != nil && !req.PaidOn.IsZero() {
		paidOn = req.PaidOn.Time
	}

	var before domain.Loan
	var loan *domain.Loan
	err := s.inTx(ctx, s.loanRepo, func(tx pgx.Tx) error {
		var err error
		loan, err = s.loanRepo.FindLoanForUpdate(ctx, tx, loanID)
		if err != nil {
			return err
		}
		before = loan.Clone()
		if err := loan.RegisterFullPayment(req.PayPeriodID, req.PayrollID, paidOn, actor.UserID, now); err != nil {
			return err
		}
		return s.loanRepo.UpdateLoanStateInTx(ctx, tx, *loan)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to register full payment", slog.String("loan_id", loanID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tableLoans, loanID, before, loan)
	s.LogInfo(ctx, "Loan paid in full",
		slog.String("loan_id", loanID),
		slog.String("pay_period_id", req.PayPeriodID))
	return loan, nil
}

func (s *loanService) CancelLoan(ctx context.Context, actor domain.Actor, loanID string) (*domain.Loan, error) {
	if err := s.RequireWriter(actor); err != nil {
		return nil, err
	}

	var before domain.Loan
	var loan *domain.Loan
	err := s.inTx(ctx, s.loanRepo, func(tx pgx.Tx) error {
		var err error
		loan, err = s.loanRepo.FindLoanForUpdate(ctx, tx, loanID)
		if err != nil {
			return err
		}
		before = loan.Clone()
		cancelled, err := loan.Cancel(actor.UserID, s.Now())
		if err != nil {
			return err
		}
		if len(cancelled) > 0 {
			if err := s.loanRepo.UpdateInstallmentsInTx(ctx, tx, cancelled); err != nil {
				return err
			}
		}
		return s.loanRepo.UpdateLoanStateInTx(ctx, tx, *loan)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to cancel loan", slog.String("loan_id", loanID))
		return nil, err
	}

	s.RecordAudit(ctx, actor, domain.AuditUpdate, tableLoans, loanID, before, loan)
	s.LogInfo(ctx, "Loan cancelled", slog.String("loan_id", loanID))
	return loan, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, actor domain.Actor, loanID string) error {
	if err := s.RequireWriter(actor); err != nil {
		return err
	}

	var before *domain.Loan
	err := s.inTx(ctx, s.loanRepo, func(tx pgx.Tx) error {
		loan, err := s.loanRepo.FindLoanForUpdate(ctx, tx, loanID)
		if err != nil {
			return err
		}
		if err := loan.CanDelete(); err != nil {
			return err
		}
		before = loan
		return s.loanRepo.DeleteLoanInTx(ctx, tx, loanID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete loan", slog.String("loan_id", loanID))
		return err
	}

	s.RecordAudit(ctx, actor, domain.AuditDelete, tableLoans, loanID, before, nil)
	s.LogInfo(ctx, "Loan deleted", slog.String("loan_id", loanID))
	return nil
}
