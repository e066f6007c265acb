package pgsql

import (
	"context"
	"fmt"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	"github.com/finca-nomina/nomina_backend/internal/models"
	"github.com/finca-nomina/nomina_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	payrollColumns = `payroll_id, worker_id, pay_period_id, total_earned, total_deductions, net_pay, status,
		calculated_at, approved_at, paid_at, notes, created_at, created_by, last_updated_at, last_updated_by`
	payrollLineColumns = `line_id, payroll_id, line_type, concept, description, labor_id, quantity, unit_value,
		total_value, loan_id, installment_seq, created_at`
)

type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool *pgxpool.Pool) *PgxPayrollRepository {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryWithTx = (*PgxPayrollRepository)(nil)

func (r *PgxPayrollRepository) SavePayroll(ctx context.Context, payroll domain.Payroll) error {
	m := mapping.ToModelPayroll(payroll)
	query := `INSERT INTO payrolls (` + payrollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	_, err := r.Pool.Exec(ctx, query,
		m.PayrollID, m.WorkerID, m.PayPeriodID, m.TotalEarned, m.TotalDeductions, m.NetPay, m.Status,
		m.CalculatedAt, m.ApprovedAt, m.PaidAt, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "payroll of worker "+payroll.WorkerID+" in quincena "+payroll.PayPeriodID)
	}
	return nil
}

func (r *PgxPayrollRepository) findPayroll(ctx context.Context, q querier, payrollID, suffix string) (*domain.Payroll, error) {
	rows, err := q.Query(ctx, `SELECT `+payrollColumns+` FROM payrolls WHERE payroll_id = $1`+suffix+`;`, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll %s: %w", payrollID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[models.Payroll])
	if err != nil {
		return nil, notFoundOr(err, "payroll "+payrollID)
	}

	lineRows, err := q.Query(ctx, `SELECT `+payrollLineColumns+`
		FROM payroll_lines WHERE payroll_id = $1
		ORDER BY created_at, line_id;`, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of payroll %s: %w", payrollID, err)
	}
	lines, err := pgx.CollectRows(lineRows, pgx.RowToStructByPos[models.PayrollLine])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payroll lines: %w", err)
	}

	payroll := mapping.ToDomainPayroll(m, lines)
	return &payroll, nil
}

func (r *PgxPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	return r.findPayroll(ctx, r.Pool, payrollID, "")
}

func (r *PgxPayrollRepository) FindPayrollForUpdate(ctx context.Context, tx pgx.Tx, payrollID string) (*domain.Payroll, error) {
	return r.findPayroll(ctx, tx, payrollID, " FOR UPDATE")
}

func (r *PgxPayrollRepository) ListPayrolls(ctx context.Context, filter domain.PayrollFilter) ([]domain.Payroll, error) {
	var where whereBuilder
	if filter.PayPeriodID != nil {
		where.add("pay_period_id = ?", *filter.PayPeriodID)
	}
	if filter.WorkerID != nil {
		where.add("worker_id = ?", *filter.WorkerID)
	}
	if filter.Status != nil {
		where.add("status = ?", string(*filter.Status))
	}
	query := `SELECT ` + payrollColumns + ` FROM payrolls` + where.sql() + ` ORDER BY created_at DESC, payroll_id;`
	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payrolls: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.Payroll])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payrolls: %w", err)
	}
	payrolls := make([]domain.Payroll, len(ms))
	for i, m := range ms {
		payrolls[i] = mapping.ToDomainPayroll(m, nil)
	}
	return payrolls, nil
}

func insertLine(ctx context.Context, q querier, line domain.PayrollLine) error {
	m := mapping.ToModelPayrollLine(line)
	query := `INSERT INTO payroll_lines (` + payrollLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := q.Exec(ctx, query,
		m.LineID, m.PayrollID, m.LineType, m.Concept, m.Description, m.LaborID, m.Quantity, m.UnitValue,
		m.TotalValue, m.LoanID, m.InstallmentSeq, m.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "payroll line "+line.LineID)
	}
	return nil
}

func (r *PgxPayrollRepository) ReplaceGeneratedLinesInTx(ctx context.Context, tx pgx.Tx, payrollID string, lines []domain.PayrollLine) error {
	_, err := tx.Exec(ctx, `DELETE FROM payroll_lines WHERE payroll_id = $1 AND concept IN ($2, $3);`,
		payrollID, string(domain.ConceptLabor), string(domain.ConceptLoan))
	if err != nil {
		return fmt.Errorf("failed to clear generated lines of payroll %s: %w", payrollID, err)
	}
	for _, line := range lines {
		if err := insertLine(ctx, tx, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *PgxPayrollRepository) InsertLineInTx(ctx context.Context, tx pgx.Tx, line domain.PayrollLine) error {
	return insertLine(ctx, tx, line)
}

func (r *PgxPayrollRepository) UpdatePayrollInTx(ctx context.Context, tx pgx.Tx, payroll domain.Payroll) error {
	m := mapping.ToModelPayroll(payroll)
	query := `
		UPDATE payrolls
		SET total_earned = $2, total_deductions = $3, net_pay = $4, status = $5,
			calculated_at = $6, approved_at = $7, paid_at = $8, notes = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE payroll_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.PayrollID, m.TotalEarned, m.TotalDeductions, m.NetPay, m.Status,
		m.CalculatedAt, m.ApprovedAt, m.PaidAt, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "payroll "+payroll.PayrollID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payroll %s", apperrors.ErrNotFound, payroll.PayrollID)
	}
	return nil
}

func (r *PgxPayrollRepository) ListOpenLoanClaimsInTx(ctx context.Context, tx pgx.Tx, workerID, excludePayrollID string) ([]domain.LoanClaim, error) {
	query := `
		SELECT p.payroll_id, p.status, l.loan_id, l.installment_seq
		FROM payroll_lines l
		JOIN payrolls p ON p.payroll_id = l.payroll_id
		WHERE p.worker_id = $1 AND p.payroll_id <> $2 AND p.status <> $3
			AND l.concept = $4 AND l.loan_id IS NOT NULL
		ORDER BY p.created_at, p.payroll_id;
	`
	rows, err := tx.Query(ctx, query, workerID, excludePayrollID, string(domain.PayrollPaid), string(domain.ConceptLoan))
	if err != nil {
		return nil, fmt.Errorf("failed to query loan claims of worker %s: %w", workerID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.LoanClaim])
	if err != nil {
		return nil, fmt.Errorf("failed to scan loan claims: %w", err)
	}
	claims := make([]domain.LoanClaim, len(ms))
	for i, m := range ms {
		claims[i] = mapping.ToDomainLoanClaim(m)
	}
	return claims, nil
}
