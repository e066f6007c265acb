package services

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
)

// LoanReaderSvc defines read operations for loans
type LoanReaderSvc interface {
	GetLoan(ctx context.Context, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error)
}

// LoanWriterSvc defines the loan amortization operations
type LoanWriterSvc interface {
	// CreateLoan lends money to an ACTIVE worker and builds its installment schedule.
	CreateLoan(ctx context.Context, actor domain.Actor, req dto.CreateLoanRequest) (*domain.Loan, error)

	// SettleInstallment marks one PENDING installment as deducted in a quincena.
	SettleInstallment(ctx context.Context, actor domain.Actor, loanID string, sequence int, req dto.SettleInstallmentRequest) (*domain.Loan, error)

	// RegisterFullPayment settles a SINGLE loan in one event.
	RegisterFullPayment(ctx context.Context, actor domain.Actor, loanID string, req dto.RegisterPaymentRequest) (*domain.Loan, error)

	// CancelLoan cancels an ACTIVE loan and its PENDING installments.
	CancelLoan(ctx context.Context, actor domain.Actor, loanID string) (*domain.Loan, error)

	// DeleteLoan removes a loan and its installments when no deduction was ever made.
	DeleteLoan(ctx context.Context, actor domain.Actor, loanID string) error
}

// LoanSvcFacade combines all loan-related service interfaces
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
