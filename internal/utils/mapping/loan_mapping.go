package mapping

import (
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/models"
)

// ToModelLoan converts a domain Loan to a model Loan. Installments are mapped separately.
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:              d.LoanID,
		WorkerID:            d.WorkerID,
		Principal:           d.Principal,
		LoanDate:            d.LoanDate,
		PaymentMode:         string(d.PaymentMode),
		InstallmentCount:    d.InstallmentCount,
		InstallmentAmount:   d.InstallmentAmount,
		OutstandingBalance:  d.OutstandingBalance,
		Status:              string(d.Status),
		Notes:               NullableString(d.Notes),
		SettlementPeriodRef: d.SettlementPeriodRef,
		SettlementPayrollID: d.SettlementPayrollID,
		SettledOn:           d.SettledOn,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan and its installments to a domain Loan
func ToDomainLoan(m models.Loan, installments []models.Installment) domain.Loan {
	loan := domain.Loan{
		LoanID:              m.LoanID,
		WorkerID:            m.WorkerID,
		Principal:           m.Principal,
		LoanDate:            m.LoanDate,
		PaymentMode:         domain.PaymentMode(m.PaymentMode),
		InstallmentCount:    m.InstallmentCount,
		InstallmentAmount:   m.InstallmentAmount,
		OutstandingBalance:  m.OutstandingBalance,
		Status:              domain.LoanStatus(m.Status),
		Notes:               StringValue(m.Notes),
		Installments:        make([]domain.Installment, len(installments)),
		SettlementPeriodRef: m.SettlementPeriodRef,
		SettlementPayrollID: m.SettlementPayrollID,
		SettledOn:           m.SettledOn,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
	for i, inst := range installments {
		loan.Installments[i] = ToDomainInstallment(inst)
	}
	return loan
}

// ToModelInstallment converts a domain Installment to a model Installment
func ToModelInstallment(d domain.Installment) models.Installment {
	return models.Installment{
		InstallmentID:       d.InstallmentID,
		LoanID:              d.LoanID,
		SequenceNumber:      d.SequenceNumber,
		Amount:              d.Amount,
		Status:              string(d.Status),
		SettlementPeriodRef: d.SettlementPeriodRef,
		PayrollID:           d.PayrollID,
		SettledOn:           d.SettledOn,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainInstallment converts a model Installment to a domain Installment
func ToDomainInstallment(m models.Installment) domain.Installment {
	return domain.Installment{
		InstallmentID:       m.InstallmentID,
		LoanID:              m.LoanID,
		SequenceNumber:      m.SequenceNumber,
		Amount:              m.Amount,
		Status:              domain.InstallmentStatus(m.Status),
		SettlementPeriodRef: m.SettlementPeriodRef,
		PayrollID:           m.PayrollID,
		SettledOn:           m.SettledOn,
		CreatedAt:           m.CreatedAt,
	}
}
