package domain

import (
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PayrollStatus is the lifecycle state of a payroll document.
type PayrollStatus string

const (
	PayrollDraft      PayrollStatus = "DRAFT"
	PayrollCalculated PayrollStatus = "CALCULATED"
	PayrollApproved   PayrollStatus = "APPROVED"
	PayrollPaid       PayrollStatus = "PAID"
)

// LineType says whether a payroll line adds to or subtracts from gross pay.
type LineType string

const (
	LineEarning   LineType = "EARNING"
	LineDeduction LineType = "DEDUCTION"
)

func (t LineType) IsValid() bool {
	return t == LineEarning || t == LineDeduction
}

// LineConcept classifies a payroll line.
type LineConcept string

const (
	ConceptLabor              LineConcept = "LABOR"
	ConceptSunday             LineConcept = "SUNDAY"
	ConceptHoliday            LineConcept = "HOLIDAY"
	ConceptTransportAllowance LineConcept = "TRANSPORT_ALLOWANCE"
	ConceptHealth             LineConcept = "HEALTH"
	ConceptPension            LineConcept = "PENSION"
	ConceptLoan               LineConcept = "LOAN"
	ConceptManualAdjustment   LineConcept = "MANUAL_ADJUSTMENT"
)

// IsGenerated reports whether calculation owns lines of this concept.
func (c LineConcept) IsGenerated() bool {
	return c == ConceptLabor || c == ConceptLoan
}

// PayrollLine is one earning or deduction of a payroll.
type PayrollLine struct {
	LineID         string           `json:"lineID"`
	PayrollID      string           `json:"payrollID"`
	Type           LineType         `json:"type"`
	Concept        LineConcept      `json:"concept"`
	Description    string           `json:"description"`
	LaborID        *string          `json:"laborID,omitempty"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	UnitValue      *decimal.Decimal `json:"unitValue,omitempty"`
	TotalValue     decimal.Decimal  `json:"totalValue"`
	LoanID         *string          `json:"loanID,omitempty"`
	InstallmentSeq *int             `json:"installmentSeq,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// Payroll is the pay of one worker for one quincena.
type Payroll struct {
	PayrollID       string          `json:"payrollID"`
	WorkerID        string          `json:"workerID"`
	PayPeriodID     string          `json:"payPeriodID"`
	TotalEarned     decimal.Decimal `json:"totalEarned"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`
	Status          PayrollStatus   `json:"status"`
	CalculatedAt    *time.Time      `json:"calculatedAt,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	Notes           string          `json:"notes"`
	Lines           []PayrollLine   `json:"lines"`
	AuditFields
}

// PayrollFilter narrows payroll listings.
type PayrollFilter struct {
	PayPeriodID *string
	WorkerID    *string
	Status      *PayrollStatus
}

// RecomputeTotals sums the lines into the payroll totals.
func (p *Payroll) RecomputeTotals() {
	earned, deductions := decimal.Zero, decimal.Zero
	for _, line := range p.Lines {
		if line.Type == LineEarning {
			earned = earned.Add(line.TotalValue)
		} else {
			deductions = deductions.Add(line.TotalValue)
		}
	}
	p.TotalEarned = earned
	p.TotalDeductions = deductions
	p.NetPay = earned.Sub(deductions)
}

// IsEditable reports whether lines may still be added or regenerated.
func (p *Payroll) IsEditable() bool {
	return p.Status == PayrollDraft || p.Status == PayrollCalculated
}

// MarkCalculated records a completed calculation.
func (p *Payroll) MarkCalculated(userID string, now time.Time) error {
	if !p.IsEditable() {
		return fmt.Errorf("%w: payroll %s is %s", apperrors.ErrInvalidState, p.PayrollID, p.Status)
	}
	p.Status = PayrollCalculated
	p.CalculatedAt = &now
	p.Touch(userID, now)
	return nil
}

// Approve moves a CALCULATED payroll to APPROVED.
func (p *Payroll) Approve(userID string, now time.Time) error {
	if p.Status != PayrollCalculated {
		return fmt.Errorf("%w: only calculated payrolls can be approved, payroll %s is %s", apperrors.ErrInvalidState, p.PayrollID, p.Status)
	}
	p.Status = PayrollApproved
	p.ApprovedAt = &now
	p.Touch(userID, now)
	return nil
}

// MarkPaid moves an APPROVED payroll to PAID.
func (p *Payroll) MarkPaid(userID string, now time.Time) error {
	if p.Status != PayrollApproved {
		return fmt.Errorf("%w: only approved payrolls can be paid, payroll %s is %s", apperrors.ErrInvalidState, p.PayrollID, p.Status)
	}
	p.Status = PayrollPaid
	p.PaidAt = &now
	p.Touch(userID, now)
	return nil
}

// Clone returns a copy of p that shares no line storage with it.
func (p *Payroll) Clone() Payroll {
	c := *p
	c.Lines = append([]PayrollLine(nil), p.Lines...)
	return c
}

// ManualLines returns the lines calculation must keep.
func (p *Payroll) ManualLines() []PayrollLine {
	var lines []PayrollLine
	for _, line := range p.Lines {
		if !line.Concept.IsGenerated() {
			lines = append(lines, line)
		}
	}
	return lines
}

// LoanLines returns the loan deductions of the payroll.
func (p *Payroll) LoanLines() []PayrollLine {
	var lines []PayrollLine
	for _, line := range p.Lines {
		if line.Concept == ConceptLoan && line.LoanID != nil {
			lines = append(lines, line)
		}
	}
	return lines
}

// LoanClaim is a loan deduction carried by a payroll that is not paid yet.
// A nil InstallmentSeq claims the whole balance of a SINGLE loan.
type LoanClaim struct {
	PayrollID      string
	PayrollStatus  PayrollStatus
	LoanID         string
	InstallmentSeq *int
}

// Overlaps reports whether line deducts what c already holds.
func (c LoanClaim) Overlaps(line PayrollLine) bool {
	if line.LoanID == nil || *line.LoanID != c.LoanID {
		return false
	}
	if line.InstallmentSeq == nil || c.InstallmentSeq == nil {
		return line.InstallmentSeq == nil && c.InstallmentSeq == nil
	}
	return *line.InstallmentSeq == *c.InstallmentSeq
}

// ClaimedInstallments indexes the installment claims by loan.
func ClaimedInstallments(claims []LoanClaim) map[string]map[int]bool {
	claimed := make(map[string]map[int]bool)
	for _, c := range claims {
		if c.InstallmentSeq == nil {
			continue
		}
		if claimed[c.LoanID] == nil {
			claimed[c.LoanID] = make(map[int]bool)
		}
		claimed[c.LoanID][*c.InstallmentSeq] = true
	}
	return claimed
}

// ClaimsWholeBalance reports whether some claim holds the full balance of loanID.
func ClaimsWholeBalance(claims []LoanClaim, loanID string) bool {
	for _, c := range claims {
		if c.LoanID == loanID && c.InstallmentSeq == nil {
			return true
		}
	}
	return false
}

// ApprovedConflict returns the first claim of another APPROVED payroll that
// holds a deduction of p. Claims of payrolls that can still be recalculated
// are ignored.
func (p *Payroll) ApprovedConflict(claims []LoanClaim) *LoanClaim {
	for _, line := range p.LoanLines() {
		for i := range claims {
			c := claims[i]
			if c.PayrollID == p.PayrollID || c.PayrollStatus != PayrollApproved {
				continue
			}
			if c.Overlaps(line) {
				return &claims[i]
			}
		}
	}
	return nil
}
