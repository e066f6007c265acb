package repositories

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PayrollReader defines read operations for payrolls
type PayrollReader interface {
	// FindPayrollByID retrieves a payroll with its lines.
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error)

	// ListPayrolls retrieves payrolls without lines.
	ListPayrolls(ctx context.Context, filter domain.PayrollFilter) ([]domain.Payroll, error)
}

// PayrollWriter defines write operations for payrolls
type PayrollWriter interface {
	// SavePayroll persists a new payroll header. A second payroll for the same
	// worker and quincena yields ErrDuplicate.
	SavePayroll(ctx context.Context, payroll domain.Payroll) error
}

// PayrollTxWriter defines payroll operations inside a caller-owned transaction.
type PayrollTxWriter interface {
	// FindPayrollForUpdate retrieves a payroll with its lines, row-locking the header.
	FindPayrollForUpdate(ctx context.Context, tx pgx.Tx, payrollID string) (*domain.Payroll, error)

	// ReplaceGeneratedLinesInTx deletes the LABOR and LOAN lines and inserts lines in their place.
	ReplaceGeneratedLinesInTx(ctx context.Context, tx pgx.Tx, payrollID string, lines []domain.PayrollLine) error

	InsertLineInTx(ctx context.Context, tx pgx.Tx, line domain.PayrollLine) error

	// UpdatePayrollInTx writes totals, status, timestamps and audit fields.
	UpdatePayrollInTx(ctx context.Context, tx pgx.Tx, payroll domain.Payroll) error

	// ListOpenLoanClaimsInTx returns the loan deductions of the worker's payrolls
	// that are not PAID, leaving out excludePayrollID.
	ListOpenLoanClaimsInTx(ctx context.Context, tx pgx.Tx, workerID, excludePayrollID string) ([]domain.LoanClaim, error)
}

// PayrollRepositoryWithTx combines the payroll interfaces with transaction control
type PayrollRepositoryWithTx interface {
	PayrollReader
	PayrollWriter
	PayrollTxWriter
	TransactionManager
}
