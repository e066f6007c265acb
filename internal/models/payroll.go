package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is a row of the payrolls table.
type Payroll struct {
	PayrollID       string          `db:"payroll_id"`
	WorkerID        string          `db:"worker_id"`
	PayPeriodID     string          `db:"pay_period_id"`
	TotalEarned     decimal.Decimal `db:"total_earned"`
	TotalDeductions decimal.Decimal `db:"total_deductions"`
	NetPay          decimal.Decimal `db:"net_pay"`
	Status          string          `db:"status"`
	CalculatedAt    *time.Time      `db:"calculated_at"`
	ApprovedAt      *time.Time      `db:"approved_at"`
	PaidAt          *time.Time      `db:"paid_at"`
	Notes           *string         `db:"notes"`
	AuditFields
}

// PayrollLine is a row of the payroll_lines table.
type PayrollLine struct {
	LineID         string           `db:"line_id"`
	PayrollID      string           `db:"payroll_id"`
	LineType       string           `db:"line_type"`
	Concept        string           `db:"concept"`
	Description    string           `db:"description"`
	LaborID        *string          `db:"labor_id"`
	Quantity       *decimal.Decimal `db:"quantity"`
	UnitValue      *decimal.Decimal `db:"unit_value"`
	TotalValue     decimal.Decimal  `db:"total_value"`
	LoanID         *string          `db:"loan_id"`
	InstallmentSeq *int             `db:"installment_seq"`
	CreatedAt      time.Time        `db:"created_at"`
}

// LoanClaim is a LOAN line of payroll_lines joined with its payroll's status.
type LoanClaim struct {
	PayrollID      string `db:"payroll_id"`
	Status         string `db:"status"`
	LoanID         string `db:"loan_id"`
	InstallmentSeq *int   `db:"installment_seq"`
}
