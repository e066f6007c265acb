package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is a row of the loans table.
type Loan struct {
	LoanID              string           `db:"loan_id"`
	WorkerID            string           `db:"worker_id"`
	Principal           decimal.Decimal  `db:"principal"`
	LoanDate            time.Time        `db:"loan_date"`
	PaymentMode         string           `db:"payment_mode"`
	InstallmentCount    *int             `db:"installment_count"`
	InstallmentAmount   *decimal.Decimal `db:"installment_amount"`
	OutstandingBalance  decimal.Decimal  `db:"outstanding_balance"`
	Status              string           `db:"status"`
	Notes               *string          `db:"notes"`
	SettlementPeriodRef *string          `db:"settlement_pay_period_id"`
	SettlementPayrollID *string          `db:"settlement_payroll_id"`
	SettledOn           *time.Time       `db:"settled_on"`
	AuditFields
}

// Installment is a row of the loan_installments table.
type Installment struct {
	InstallmentID       string          `db:"installment_id"`
	LoanID              string          `db:"loan_id"`
	SequenceNumber      int             `db:"sequence_number"`
	Amount              decimal.Decimal `db:"amount"`
	Status              string          `db:"status"`
	SettlementPeriodRef *string         `db:"settlement_pay_period_id"`
	PayrollID           *string         `db:"payroll_id"`
	SettledOn           *time.Time      `db:"settled_on"`
	CreatedAt           time.Time       `db:"created_at"`
}
