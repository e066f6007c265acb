package domain

import (
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentMode is how a loan is repaid.
type PaymentMode string

const (
	PaymentSingle       PaymentMode = "SINGLE"
	PaymentInstallments PaymentMode = "INSTALLMENTS"
)

func (m PaymentMode) IsValid() bool {
	return m == PaymentSingle || m == PaymentInstallments
}

// LoanStatus is the lifecycle state of a loan. SETTLED and CANCELLED are terminal.
type LoanStatus string

const (
	LoanActive    LoanStatus = "ACTIVE"
	LoanSettled   LoanStatus = "SETTLED"
	LoanCancelled LoanStatus = "CANCELLED"
)

// InstallmentStatus is the lifecycle state of an installment. SETTLED and CANCELLED are terminal.
type InstallmentStatus string

const (
	InstallmentPending   InstallmentStatus = "PENDING"
	InstallmentSettled   InstallmentStatus = "SETTLED"
	InstallmentCancelled InstallmentStatus = "CANCELLED"
)

// SettlementTolerance is the balance at or below which a loan counts as repaid.
var SettlementTolerance = decimal.New(1, -2)

// Installment is one scheduled partial repayment of a loan.
type Installment struct {
	InstallmentID       string            `json:"installmentID"`
	LoanID              string            `json:"loanID"`
	SequenceNumber      int               `json:"sequenceNumber"`
	Amount              decimal.Decimal   `json:"amount"`
	Status              InstallmentStatus `json:"status"`
	SettlementPeriodRef *string           `json:"settlementPeriodRef,omitempty"`
	PayrollID           *string           `json:"payrollID,omitempty"`
	SettledOn           *time.Time        `json:"settledOn,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// Loan is money lent to a worker and recovered through payroll deductions.
// The settlement fields are set when a SINGLE loan is paid in full.
type Loan struct {
	LoanID              string           `json:"loanID"`
	WorkerID            string           `json:"workerID"`
	Principal           decimal.Decimal  `json:"principal"`
	LoanDate            time.Time        `json:"loanDate"`
	PaymentMode         PaymentMode      `json:"paymentMode"`
	InstallmentCount    *int             `json:"installmentCount,omitempty"`
	InstallmentAmount   *decimal.Decimal `json:"installmentAmount,omitempty"`
	OutstandingBalance  decimal.Decimal  `json:"outstandingBalance"`
	Status              LoanStatus       `json:"status"`
	Notes               string           `json:"notes"`
	Installments        []Installment    `json:"installments"`
	SettlementPeriodRef *string          `json:"settlementPeriodRef,omitempty"`
	SettlementPayrollID *string          `json:"settlementPayrollID,omitempty"`
	SettledOn           *time.Time       `json:"settledOn,omitempty"`
	AuditFields
}

// LoanFilter narrows loan listings.
type LoanFilter struct {
	WorkerID    *string
	Status      *LoanStatus
	PaymentMode *PaymentMode
}

// BuildInstallmentSchedule splits principal into count amounts with two decimal places.
// Every amount is principal/count truncated to cents, and the leftover cents go to the
// first installment, so the amounts always add up to principal exactly. It returns the
// amounts and the nominal per-installment amount.
func BuildInstallmentSchedule(principal decimal.Decimal, count int) ([]decimal.Decimal, decimal.Decimal, error) {
	if !principal.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("%w: principal must be greater than zero", apperrors.ErrValidation)
	}
	if err := CheckCents("principal", principal); err != nil {
		return nil, decimal.Zero, err
	}
	if count < 1 {
		return nil, decimal.Zero, fmt.Errorf("%w: installment count must be at least 1", apperrors.ErrValidation)
	}

	n := decimal.NewFromInt(int64(count))
	base := principal.Div(n).Truncate(MoneyPlaces)
	if !base.IsPositive() {
		return nil, decimal.Zero, fmt.Errorf("%w: principal %s is too small for %d installments", apperrors.ErrValidation, principal.String(), count)
	}
	remainder := principal.Sub(base.Mul(n))

	amounts := make([]decimal.Decimal, count)
	for i := range amounts {
		amounts[i] = base
	}
	amounts[0] = amounts[0].Add(remainder)
	return amounts, base, nil
}

// LoanRequest carries the inputs of a new loan.
type LoanRequest struct {
	WorkerID         string
	Principal        decimal.Decimal
	PaymentMode      PaymentMode
	InstallmentCount *int
	LoanDate         time.Time
	Notes            string
}

// NewLoan validates req and builds an ACTIVE loan with its schedule.
// SINGLE loans carry no installments.
func NewLoan(req LoanRequest, userID string, now time.Time, newID func() string) (*Loan, error) {
	if !req.Principal.IsPositive() {
		return nil, fmt.Errorf("%w: principal must be greater than zero", apperrors.ErrValidation)
	}
	if err := CheckCents("principal", req.Principal); err != nil {
		return nil, err
	}
	if !req.PaymentMode.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment mode %q", apperrors.ErrValidation, req.PaymentMode)
	}

	loanID := newID()
	loan := &Loan{
		LoanID:             loanID,
		WorkerID:           req.WorkerID,
		Principal:          req.Principal,
		LoanDate:           DateOnly(req.LoanDate),
		PaymentMode:        req.PaymentMode,
		OutstandingBalance: req.Principal,
		Status:             LoanActive,
		Notes:              req.Notes,
		Installments:       []Installment{},
		AuditFields:        NewAuditFields(userID, now),
	}

	if req.PaymentMode == PaymentSingle {
		return loan, nil
	}

	if req.InstallmentCount == nil {
		return nil, fmt.Errorf("%w: installment count is required for installment loans", apperrors.ErrValidation)
	}
	amounts, base, err := BuildInstallmentSchedule(req.Principal, *req.InstallmentCount)
	if err != nil {
		return nil, err
	}

	count := *req.InstallmentCount
	loan.InstallmentCount = &count
	loan.InstallmentAmount = &base
	for i, amount := range amounts {
		loan.Installments = append(loan.Installments, Installment{
			InstallmentID:  newID(),
			LoanID:         loanID,
			SequenceNumber: i + 1,
			Amount:         amount,
			Status:         InstallmentPending,
			CreatedAt:      now,
		})
	}
	return loan, nil
}

// IsTerminal reports whether no further transition may leave the loan's status.
func (l *Loan) IsTerminal() bool {
	return l.Status == LoanSettled || l.Status == LoanCancelled
}

// FindInstallment returns the installment with the given sequence number.
func (l *Loan) FindInstallment(sequence int) (*Installment, error) {
	for i := range l.Installments {
		if l.Installments[i].SequenceNumber == sequence {
			return &l.Installments[i], nil
		}
	}
	return nil, fmt.Errorf("%w: installment %d of loan %s", apperrors.ErrNotFound, sequence, l.LoanID)
}

// NextPendingInstallment returns the lowest-numbered PENDING installment whose
// sequence number is not in skip, or nil.
func (l *Loan) NextPendingInstallment(skip map[int]bool) *Installment {
	var next *Installment
	for i := range l.Installments {
		inst := &l.Installments[i]
		if inst.Status != InstallmentPending || skip[inst.SequenceNumber] {
			continue
		}
		if next == nil || inst.SequenceNumber < next.SequenceNumber {
			next = inst
		}
	}
	return next
}

// SettleInstallment marks a PENDING installment SETTLED in periodRef and
// decrements the outstanding balance, settling the loan once the balance is
// within SettlementTolerance. The returned installment points into l.Installments.
func (l *Loan) SettleInstallment(sequence int, periodRef string, payrollID *string, on time.Time, userID string, now time.Time) (*Installment, error) {
	if l.Status != LoanActive {
		return nil, fmt.Errorf("%w: loan %s is %s", apperrors.ErrInvalidState, l.LoanID, l.Status)
	}
	inst, err := l.FindInstallment(sequence)
	if err != nil {
		return nil, err
	}
	if inst.Status != InstallmentPending {
		return nil, fmt.Errorf("%w: installment %d of loan %s is %s", apperrors.ErrInvalidState, sequence, l.LoanID, inst.Status)
	}

	settledOn := DateOnly(on)
	ref := periodRef
	inst.Status = InstallmentSettled
	inst.SettlementPeriodRef = &ref
	inst.PayrollID = payrollID
	inst.SettledOn = &settledOn

	l.OutstandingBalance = l.OutstandingBalance.Sub(inst.Amount)
	if l.OutstandingBalance.IsNegative() {
		l.OutstandingBalance = decimal.Zero
	}
	if l.OutstandingBalance.LessThanOrEqual(SettlementTolerance) {
		l.Status = LoanSettled
	}
	l.Touch(userID, now)
	return inst, nil
}

// RegisterFullPayment settles an ACTIVE SINGLE loan in one event, recording the
// quincena and, when known, the payroll that collected it.
func (l *Loan) RegisterFullPayment(periodRef string, payrollID *string, on time.Time, userID string, now time.Time) error {
	if l.Status != LoanActive {
		return fmt.Errorf("%w: loan %s is %s", apperrors.ErrInvalidState, l.LoanID, l.Status)
	}
	if l.PaymentMode != PaymentSingle {
		return fmt.Errorf("%w: loan %s is repaid in installments", apperrors.ErrInvalidState, l.LoanID)
	}
	settledOn := DateOnly(on)
	ref := periodRef
	l.SettlementPeriodRef = &ref
	l.SettlementPayrollID = payrollID
	l.SettledOn = &settledOn
	l.OutstandingBalance = decimal.Zero
	l.Status = LoanSettled
	l.Touch(userID, now)
	return nil
}

// Cancel moves an ACTIVE loan to CANCELLED and cancels its PENDING installments.
// It returns the installments it changed. SETTLED installments are left alone.
func (l *Loan) Cancel(userID string, now time.Time) ([]Installment, error) {
	if l.Status != LoanActive {
		return nil, fmt.Errorf("%w: loan %s is %s", apperrors.ErrInvalidState, l.LoanID, l.Status)
	}
	var changed []Installment
	for i := range l.Installments {
		if l.Installments[i].Status == InstallmentPending {
			l.Installments[i].Status = InstallmentCancelled
			changed = append(changed, l.Installments[i])
		}
	}
	l.Status = LoanCancelled
	l.Touch(userID, now)
	return changed, nil
}

// CanDelete reports whether the loan has no settled installments, so deleting it
// loses no deduction history.
func (l *Loan) CanDelete() error {
	for _, inst := range l.Installments {
		if inst.Status == InstallmentSettled {
			return fmt.Errorf("%w: loan %s has settled installments", apperrors.ErrInvalidState, l.LoanID)
		}
	}
	if l.PaymentMode == PaymentSingle && l.Status == LoanSettled {
		return fmt.Errorf("%w: loan %s is already paid", apperrors.ErrInvalidState, l.LoanID)
	}
	return nil
}

// ScheduledTotal sums the amounts of all non-cancelled installments.
func (l *Loan) ScheduledTotal() decimal.Decimal {
	total := decimal.Zero
	for _, inst := range l.Installments {
		if inst.Status != InstallmentCancelled {
			total = total.Add(inst.Amount)
		}
	}
	return total
}

// Clone returns a copy of l that shares no installment storage with it.
func (l *Loan) Clone() Loan {
	c := *l
	c.Installments = append([]Installment(nil), l.Installments...)
	return c
}
