package mapping

import (
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/models"
)

// ToDomainPayPeriod converts a model PayPeriod to a domain PayPeriod
func ToDomainPayPeriod(m models.PayPeriod) domain.PayPeriod {
	return domain.PayPeriod{
		PayPeriodID:          m.PayPeriodID,
		Year:                 m.Year,
		Month:                m.Month,
		Number:               m.Number,
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		RegistrationDeadline: m.RegistrationDeadline,
		Status:               domain.PayPeriodStatus(m.Status),
		CreatedAt:            m.CreatedAt,
	}
}

// ToModelLaborRecord converts a domain LaborRecord to a model LaborRecord
func ToModelLaborRecord(d domain.LaborRecord) models.LaborRecord {
	return models.LaborRecord{
		RecordID:    d.RecordID,
		WorkerID:    d.WorkerID,
		LaborID:     d.LaborID,
		PayPeriodID: d.PayPeriodID,
		Date:        d.Date,
		Quantity:    d.Quantity,
		Notes:       NullableString(d.Notes),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLaborRecord converts a model LaborRecord to a domain LaborRecord
func ToDomainLaborRecord(m models.LaborRecord) domain.LaborRecord {
	return domain.LaborRecord{
		RecordID:    m.RecordID,
		WorkerID:    m.WorkerID,
		LaborID:     m.LaborID,
		PayPeriodID: m.PayPeriodID,
		Date:        m.Date,
		Quantity:    m.Quantity,
		Notes:       StringValue(m.Notes),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayroll converts a domain Payroll header to a model Payroll
func ToModelPayroll(d domain.Payroll) models.Payroll {
	return models.Payroll{
		PayrollID:       d.PayrollID,
		WorkerID:        d.WorkerID,
		PayPeriodID:     d.PayPeriodID,
		TotalEarned:     d.TotalEarned,
		TotalDeductions: d.TotalDeductions,
		NetPay:          d.NetPay,
		Status:          string(d.Status),
		CalculatedAt:    d.CalculatedAt,
		ApprovedAt:      d.ApprovedAt,
		PaidAt:          d.PaidAt,
		Notes:           NullableString(d.Notes),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayroll converts a model Payroll and its lines to a domain Payroll
func ToDomainPayroll(m models.Payroll, lines []models.PayrollLine) domain.Payroll {
	p := domain.Payroll{
		PayrollID:       m.PayrollID,
		WorkerID:        m.WorkerID,
		PayPeriodID:     m.PayPeriodID,
		TotalEarned:     m.TotalEarned,
		TotalDeductions: m.TotalDeductions,
		NetPay:          m.NetPay,
		Status:          domain.PayrollStatus(m.Status),
		CalculatedAt:    m.CalculatedAt,
		ApprovedAt:      m.ApprovedAt,
		PaidAt:          m.PaidAt,
		Notes:           StringValue(m.Notes),
		Lines:           make([]domain.PayrollLine, len(lines)),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	for i, l := range lines {
		p.Lines[i] = ToDomainPayrollLine(l)
	}
	return p
}

// ToModelPayrollLine converts a domain PayrollLine to a model PayrollLine
func ToModelPayrollLine(d domain.PayrollLine) models.PayrollLine {
	return models.PayrollLine{
		LineID:         d.LineID,
		PayrollID:      d.PayrollID,
		LineType:       string(d.Type),
		Concept:        string(d.Concept),
		Description:    d.Description,
		LaborID:        d.LaborID,
		Quantity:       d.Quantity,
		UnitValue:      d.UnitValue,
		TotalValue:     d.TotalValue,
		LoanID:         d.LoanID,
		InstallmentSeq: d.InstallmentSeq,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainPayrollLine converts a model PayrollLine to a domain PayrollLine
func ToDomainPayrollLine(m models.PayrollLine) domain.PayrollLine {
	return domain.PayrollLine{
		LineID:         m.LineID,
		PayrollID:      m.PayrollID,
		Type:           domain.LineType(m.LineType),
		Concept:        domain.LineConcept(m.Concept),
		Description:    m.Description,
		LaborID:        m.LaborID,
		Quantity:       m.Quantity,
		UnitValue:      m.UnitValue,
		TotalValue:     m.TotalValue,
		LoanID:         m.LoanID,
		InstallmentSeq: m.InstallmentSeq,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainAuditEntry converts a model AuditEntry to a domain AuditEntry
func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		AuditID:   m.AuditID,
		UserID:    m.UserID,
		Action:    domain.AuditAction(m.Action),
		TableName: m.TableName,
		RecordID:  m.RecordID,
		Before:    m.Before,
		After:     m.After,
		IPAddress: StringValue(m.IPAddress),
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainLoanClaim converts a model LoanClaim to a domain LoanClaim
func ToDomainLoanClaim(m models.LoanClaim) domain.LoanClaim {
	return domain.LoanClaim{
		PayrollID:      m.PayrollID,
		PayrollStatus:  domain.PayrollStatus(m.Status),
		LoanID:         m.LoanID,
		InstallmentSeq: m.InstallmentSeq,
	}
}
