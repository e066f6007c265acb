package mapping

import (
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/models"
)

// ToModelWorker converts a domain Worker to a model Worker
func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:          d.WorkerID,
		FirstNames:        d.FirstNames,
		LastNames:         d.LastNames,
		DocumentType:      string(d.DocumentType),
		DocumentNumber:    d.DocumentNumber,
		DocumentPlace:     NullableString(d.DocumentPlace),
		BirthDate:         d.BirthDate,
		Phone:             NullableString(d.Phone),
		Address:           NullableString(d.Address),
		Email:             NullableString(d.Email),
		EPS:               NullableString(d.EPS),
		ContractTypeID:    d.ContractTypeID,
		ContractTypeName:  string(d.ContractTypeName),
		HireDate:          d.HireDate,
		RetireDate:        d.RetireDate,
		Status:            string(d.Status),
		BankAccountNumber: NullableString(d.BankAccountNumber),
		Bank:              NullableString(d.Bank),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorker converts a model Worker to a domain Worker
func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:          m.WorkerID,
		FirstNames:        m.FirstNames,
		LastNames:         m.LastNames,
		DocumentType:      domain.DocumentType(m.DocumentType),
		DocumentNumber:    m.DocumentNumber,
		DocumentPlace:     StringValue(m.DocumentPlace),
		BirthDate:         m.BirthDate,
		Phone:             StringValue(m.Phone),
		Address:           StringValue(m.Address),
		Email:             StringValue(m.Email),
		EPS:               StringValue(m.EPS),
		ContractTypeID:    m.ContractTypeID,
		ContractTypeName:  domain.ContractTypeName(m.ContractTypeName),
		HireDate:          m.HireDate,
		RetireDate:        m.RetireDate,
		Status:            domain.WorkerStatus(m.Status),
		BankAccountNumber: StringValue(m.BankAccountNumber),
		Bank:              StringValue(m.Bank),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainContractType converts a model ContractType to a domain ContractType
func ToDomainContractType(m models.ContractType) domain.ContractType {
	return domain.ContractType{
		ContractTypeID:    m.ContractTypeID,
		Name:              domain.ContractTypeName(m.Name),
		Description:       m.Description,
		AppliesDeductions: m.AppliesDeductions,
		AppliesSundays:    m.AppliesSundays,
		AppliesTransport:  m.AppliesTransport,
	}
}
