package dto

import (
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to lend money to a worker.
type CreateLoanRequest struct {
	WorkerID         string             `json:"workerID" binding:"required"`
	Principal        decimal.Decimal    `json:"principal" binding:"required,gt=0"`
	PaymentMode      domain.PaymentMode `json:"paymentMode" binding:"required,oneof=SINGLE INSTALLMENTS"`
	InstallmentCount *int               `json:"installmentCount" binding:"omitempty,min=1"`
	LoanDate         Date               `json:"loanDate" binding:"required"`
	Notes            string             `json:"notes"`
}

// SettleInstallmentRequest names the quincena in which an installment was deducted.
type SettleInstallmentRequest struct {
	PayPeriodID string  `json:"payPeriodID" binding:"required"`
	PayrollID   *string `json:"payrollID"`
	SettledOn   *Date   `json:"settledOn"`
}

// RegisterPaymentRequest records the single payment of a SINGLE loan.
type RegisterPaymentRequest struct {
	PayPeriodID string  `json:"payPeriodID" binding:"required"`
	PayrollID   *string `json:"payrollID"`
	PaidOn      *Date   `json:"paidOn"`
}

// ListLoansParams defines query parameters for listing loans.
type ListLoansParams struct {
	WorkerID    string `form:"workerID"`
	Status      string `form:"status" binding:"omitempty,oneof=ACTIVE SETTLED CANCELLED"`
	PaymentMode string `form:"paymentMode" binding:"omitempty,oneof=SINGLE INSTALLMENTS"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListLoansParams) ToFilter() domain.LoanFilter {
	var f domain.LoanFilter
	if p.WorkerID != "" {
		f.WorkerID = &p.WorkerID
	}
	if p.Status != "" {
		s := domain.LoanStatus(p.Status)
		f.Status = &s
	}
	if p.PaymentMode != "" {
		m := domain.PaymentMode(p.PaymentMode)
		f.PaymentMode = &m
	}
	return f
}

// InstallmentResponse is the API view of an installment.
type InstallmentResponse struct {
	SequenceNumber      int                      `json:"sequenceNumber"`
	Amount              decimal.Decimal          `json:"amount"`
	Status              domain.InstallmentStatus `json:"status"`
	SettlementPeriodRef *string                  `json:"settlementPeriodRef,omitempty"`
	PayrollID           *string                  `json:"payrollID,omitempty"`
	SettledOn           *Date                    `json:"settledOn,omitempty"`
}

// LoanResponse is the API view of a loan with its schedule.
type LoanResponse struct {
	LoanID              string                `json:"loanID"`
	WorkerID            string                `json:"workerID"`
	Principal           decimal.Decimal       `json:"principal"`
	LoanDate            Date                  `json:"loanDate"`
	PaymentMode         domain.PaymentMode    `json:"paymentMode"`
	InstallmentCount    *int                  `json:"installmentCount,omitempty"`
	InstallmentAmount   *decimal.Decimal      `json:"installmentAmount,omitempty"`
	OutstandingBalance  decimal.Decimal       `json:"outstandingBalance"`
	Status              domain.LoanStatus     `json:"status"`
	Notes               string                `json:"notes"`
	Installments        []InstallmentResponse `json:"installments"`
	SettlementPeriodRef *string               `json:"settlementPeriodRef,omitempty"`
	SettlementPayrollID *string               `json:"settlementPayrollID,omitempty"`
	SettledOn           *Date                 `json:"settledOn,omitempty"`
	CreatedAt           time.Time             `json:"createdAt"`
	CreatedBy           string                `json:"createdBy"`
}

// ToLoanResponse converts a domain.Loan to LoanResponse DTO
func ToLoanResponse(l *domain.Loan) LoanResponse {
	installments := make([]InstallmentResponse, len(l.Installments))
	for i, inst := range l.Installments {
		installments[i] = InstallmentResponse{
			SequenceNumber:      inst.SequenceNumber,
			Amount:              inst.Amount,
			Status:              inst.Status,
			SettlementPeriodRef: inst.SettlementPeriodRef,
			PayrollID:           inst.PayrollID,
			SettledOn:           DatePtr(inst.SettledOn),
		}
	}
	return LoanResponse{
		LoanID:              l.LoanID,
		WorkerID:            l.WorkerID,
		Principal:           l.Principal,
		LoanDate:            NewDate(l.LoanDate),
		PaymentMode:         l.PaymentMode,
		InstallmentCount:    l.InstallmentCount,
		InstallmentAmount:   l.InstallmentAmount,
		OutstandingBalance:  l.OutstandingBalance,
		Status:              l.Status,
		Notes:               l.Notes,
		Installments:        installments,
		SettlementPeriodRef: l.SettlementPeriodRef,
		SettlementPayrollID: l.SettlementPayrollID,
		SettledOn:           DatePtr(l.SettledOn),
		CreatedAt:           l.CreatedAt,
		CreatedBy:           l.CreatedBy,
	}
}

// ToLoanResponses converts a list of loans.
func ToLoanResponses(loans []domain.Loan) []LoanResponse {
	out := make([]LoanResponse, len(loans))
	for i := range loans {
		out[i] = ToLoanResponse(&loans[i])
	}
	return out
}
