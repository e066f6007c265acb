package repositories

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LoanReader defines read operations for loan data
type LoanReader interface {
	// FindLoanByID retrieves a loan with its installments ordered by sequence.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoans retrieves loans (with installments) matching filter, newest first.
	ListLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loan data
type LoanWriter interface {
	// SaveLoan persists a loan and its installments atomically.
	SaveLoan(ctx context.Context, loan domain.Loan) error
}

// LoanTxWriter defines loan operations that run inside a caller-owned transaction.
type LoanTxWriter interface {
	// FindLoanForUpdate retrieves a loan with its installments, row-locking the loan.
	FindLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.Loan, error)

	// ListActiveLoansByWorkerInTx retrieves the ACTIVE loans of a worker with installments.
	ListActiveLoansByWorkerInTx(ctx context.Context, tx pgx.Tx, workerID string) ([]domain.Loan, error)

	// UpdateLoanStateInTx writes status, balance and audit fields of a loan.
	UpdateLoanStateInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error

	// UpdateInstallmentsInTx writes status and settlement fields of the given installments.
	UpdateInstallmentsInTx(ctx context.Context, tx pgx.Tx, installments []domain.Installment) error

	// DeleteLoanInTx deletes the installments of a loan and then the loan.
	DeleteLoanInTx(ctx context.Context, tx pgx.Tx, loanID string) error
}

// LoanRepositoryWithTx combines all loan-related repository interfaces with transaction control
type LoanRepositoryWithTx interface {
	LoanReader
	LoanWriter
	LoanTxWriter
	TransactionManager
}
