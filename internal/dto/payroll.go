package dto

import (
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayrollRequest opens a DRAFT payroll for a worker and quincena.
type CreatePayrollRequest struct {
	WorkerID    string `json:"workerID" binding:"required"`
	PayPeriodID string `json:"payPeriodID" binding:"required"`
	Notes       string `json:"notes"`
}

// AddAdjustmentRequest adds a manual earning or deduction line.
type AddAdjustmentRequest struct {
	Type        domain.LineType `json:"type" binding:"required,oneof=EARNING DEDUCTION"`
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// ListPayrollsParams defines query parameters for listing payrolls.
type ListPayrollsParams struct {
	PayPeriodID string `form:"payPeriodID"`
	WorkerID    string `form:"workerID"`
	Status      string `form:"status" binding:"omitempty,oneof=DRAFT CALCULATED APPROVED PAID"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListPayrollsParams) ToFilter() domain.PayrollFilter {
	var f domain.PayrollFilter
	if p.PayPeriodID != "" {
		f.PayPeriodID = &p.PayPeriodID
	}
	if p.WorkerID != "" {
		f.WorkerID = &p.WorkerID
	}
	if p.Status != "" {
		s := domain.PayrollStatus(p.Status)
		f.Status = &s
	}
	return f
}

// PayrollLineResponse is the API view of a payroll line.
type PayrollLineResponse struct {
	LineID         string             `json:"lineID"`
	Type           domain.LineType    `json:"type"`
	Concept        domain.LineConcept `json:"concept"`
	Description    string             `json:"description"`
	LaborID        *string            `json:"laborID,omitempty"`
	Quantity       *decimal.Decimal   `json:"quantity,omitempty"`
	UnitValue      *decimal.Decimal   `json:"unitValue,omitempty"`
	TotalValue     decimal.Decimal    `json:"totalValue"`
	LoanID         *string            `json:"loanID,omitempty"`
	InstallmentSeq *int               `json:"installmentSeq,omitempty"`
}

// PayrollResponse is the API view of a payroll with its lines.
type PayrollResponse struct {
	PayrollID       string                `json:"payrollID"`
	WorkerID        string                `json:"workerID"`
	PayPeriodID     string                `json:"payPeriodID"`
	TotalEarned     decimal.Decimal       `json:"totalEarned"`
	TotalDeductions decimal.Decimal       `json:"totalDeductions"`
	NetPay          decimal.Decimal       `json:"netPay"`
	Status          domain.PayrollStatus  `json:"status"`
	CalculatedAt    *time.Time            `json:"calculatedAt,omitempty"`
	ApprovedAt      *time.Time            `json:"approvedAt,omitempty"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	Notes           string                `json:"notes"`
	Lines           []PayrollLineResponse `json:"lines"`
}

// ToPayrollResponse converts a domain.Payroll to PayrollResponse DTO
func ToPayrollResponse(p *domain.Payroll) PayrollResponse {
	lines := make([]PayrollLineResponse, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = PayrollLineResponse{
			LineID:         l.LineID,
			Type:           l.Type,
			Concept:        l.Concept,
			Description:    l.Description,
			LaborID:        l.LaborID,
			Quantity:       l.Quantity,
			UnitValue:      l.UnitValue,
			TotalValue:     l.TotalValue,
			LoanID:         l.LoanID,
			InstallmentSeq: l.InstallmentSeq,
		}
	}
	return PayrollResponse{
		PayrollID:       p.PayrollID,
		WorkerID:        p.WorkerID,
		PayPeriodID:     p.PayPeriodID,
		TotalEarned:     p.TotalEarned,
		TotalDeductions: p.TotalDeductions,
		NetPay:          p.NetPay,
		Status:          p.Status,
		CalculatedAt:    p.CalculatedAt,
		ApprovedAt:      p.ApprovedAt,
		PaidAt:          p.PaidAt,
		Notes:           p.Notes,
		Lines:           lines,
	}
}

// ToPayrollResponses converts a list of payrolls.
func ToPayrollResponses(payrolls []domain.Payroll) []PayrollResponse {
	out := make([]PayrollResponse, len(payrolls))
	for i := range payrolls {
		out[i] = ToPayrollResponse(&payrolls[i])
	}
	return out
}
