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
	loanColumns = `loan_id, worker_id, principal, loan_date, payment_mode, installment_count, installment_amount,
		outstanding_balance, status, notes, settlement_pay_period_id, settlement_payroll_id, settled_on,
		created_at, created_by, last_updated_at, last_updated_by`
	installmentColumns = `installment_id, loan_id, sequence_number, amount, status,
		settlement_pay_period_id, payroll_id, settled_on, created_at`
)

type PgxLoanRepository struct {
	BaseRepository
}

func newPgxLoanRepository(pool *pgxpool.Pool) *PgxLoanRepository {
	return &PgxLoanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoanRepositoryWithTx = (*PgxLoanRepository)(nil)

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	m := mapping.ToModelLoan(loan)
	query := `INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`
	_, err = tx.Exec(ctx, query,
		m.LoanID, m.WorkerID, m.Principal, m.LoanDate, m.PaymentMode, m.InstallmentCount, m.InstallmentAmount,
		m.OutstandingBalance, m.Status, m.Notes, m.SettlementPeriodRef, m.SettlementPayrollID, m.SettledOn,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "loan "+loan.LoanID)
	}

	if len(loan.Installments) > 0 {
		batch := &pgx.Batch{}
		insert := `INSERT INTO loan_installments (` + installmentColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
		for _, inst := range loan.Installments {
			im := mapping.ToModelInstallment(inst)
			batch.Queue(insert, im.InstallmentID, im.LoanID, im.SequenceNumber, im.Amount, im.Status,
				im.SettlementPeriodRef, im.PayrollID, im.SettledOn, im.CreatedAt)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return translateWriteError(err, "installments of loan "+loan.LoanID)
		}
	}

	return r.Commit(ctx, tx)
}

// loadLoans scans loan rows and attaches their installments.
func (r *PgxLoanRepository) loadLoans(ctx context.Context, q querier, query string, args ...any) ([]domain.Loan, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByPos[models.Loan])
	if err != nil {
		return nil, fmt.Errorf("failed to scan loans: %w", err)
	}
	if len(ms) == 0 {
		return []domain.Loan{}, nil
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.LoanID
	}
	instRows, err := q.Query(ctx, `SELECT `+installmentColumns+`
		FROM loan_installments WHERE loan_id = ANY($1)
		ORDER BY loan_id, sequence_number;`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	insts, err := pgx.CollectRows(instRows, pgx.RowToStructByPos[models.Installment])
	if err != nil {
		return nil, fmt.Errorf("failed to scan installments: %w", err)
	}
	byLoan := make(map[string][]models.Installment, len(ms))
	for _, inst := range insts {
		byLoan[inst.LoanID] = append(byLoan[inst.LoanID], inst)
	}

	loans := make([]domain.Loan, len(ms))
	for i, m := range ms {
		loans[i] = mapping.ToDomainLoan(m, byLoan[m.LoanID])
	}
	return loans, nil
}

func (r *PgxLoanRepository) findLoan(ctx context.Context, q querier, loanID, suffix string) (*domain.Loan, error) {
	loans, err := r.loadLoans(ctx, q, `SELECT `+loanColumns+` FROM loans WHERE loan_id = $1`+suffix+`;`, loanID)
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
	}
	return &loans[0], nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	return r.findLoan(ctx, r.Pool, loanID, "")
}

func (r *PgxLoanRepository) ListLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error) {
	var where whereBuilder
	if filter.WorkerID != nil {
		where.add("worker_id = ?", *filter.WorkerID)
	}
	if filter.Status != nil {
		where.add("status = ?", string(*filter.Status))
	}
	if filter.PaymentMode != nil {
		where.add("payment_mode = ?", string(*filter.PaymentMode))
	}
	query := `SELECT ` + loanColumns + ` FROM loans` + where.sql() + ` ORDER BY loan_date DESC, created_at DESC;`
	return r.loadLoans(ctx, r.Pool, query, where.args...)
}

func (r *PgxLoanRepository) FindLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID string) (*domain.Loan, error) {
	return r.findLoan(ctx, tx, loanID, " FOR UPDATE")
}

func (r *PgxLoanRepository) ListActiveLoansByWorkerInTx(ctx context.Context, tx pgx.Tx, workerID string) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + `
		FROM loans WHERE worker_id = $1 AND status = $2
		ORDER BY loan_date, created_at FOR UPDATE;`
	return r.loadLoans(ctx, tx, query, workerID, string(domain.LoanActive))
}

func (r *PgxLoanRepository) UpdateLoanStateInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	query := `
		UPDATE loans
		SET status = $2, outstanding_balance = $3, notes = $4,
			settlement_pay_period_id = $5, settlement_payroll_id = $6, settled_on = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE loan_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query,
		loan.LoanID, string(loan.Status), loan.OutstandingBalance, mapping.NullableString(loan.Notes),
		loan.SettlementPeriodRef, loan.SettlementPayrollID, loan.SettledOn,
		loan.LastUpdatedAt, loan.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "loan "+loan.LoanID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loan.LoanID)
	}
	return nil
}

func (r *PgxLoanRepository) UpdateInstallmentsInTx(ctx context.Context, tx pgx.Tx, installments []domain.Installment) error {
	if len(installments) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		UPDATE loan_installments
		SET status = $2, settlement_pay_period_id = $3, payroll_id = $4, settled_on = $5
		WHERE installment_id = $1;`
	for _, inst := range installments {
		batch.Queue(query, inst.InstallmentID, string(inst.Status), inst.SettlementPeriodRef, inst.PayrollID, inst.SettledOn)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateWriteError(err, "installments")
	}
	return nil
}

func (r *PgxLoanRepository) DeleteLoanInTx(ctx context.Context, tx pgx.Tx, loanID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM loan_installments WHERE loan_id = $1;`, loanID); err != nil {
		return translateWriteError(err, "installments of loan "+loanID)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM loans WHERE loan_id = $1;`, loanID)
	if err != nil {
		return translateWriteError(err, "loan "+loanID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
	}
	return nil
}
