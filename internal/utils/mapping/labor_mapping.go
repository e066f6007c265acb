package mapping

import (
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/models"
)

// ToModelLabor converts a domain Labor to a model Labor
func ToModelLabor(d domain.Labor) models.Labor {
	return models.Labor{
		LaborID:      d.LaborID,
		Code:         d.Code,
		Name:         d.Name,
		Description:  NullableString(d.Description),
		UnitID:       d.UnitID,
		UnitName:     string(d.UnitName),
		IsSpecial:    d.IsSpecial,
		ContractOnly: d.ContractOnly,
		Active:       d.Active,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLabor converts a model Labor to a domain Labor
func ToDomainLabor(m models.Labor) domain.Labor {
	return domain.Labor{
		LaborID:      m.LaborID,
		Code:         m.Code,
		Name:         m.Name,
		Description:  StringValue(m.Description),
		UnitID:       m.UnitID,
		UnitName:     domain.UnitName(m.UnitName),
		IsSpecial:    m.IsSpecial,
		ContractOnly: m.ContractOnly,
		Active:       m.Active,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUnit converts a model UnitOfMeasure to a domain UnitOfMeasure
func ToDomainUnit(m models.UnitOfMeasure) domain.UnitOfMeasure {
	return domain.UnitOfMeasure{UnitID: m.UnitID, Name: domain.UnitName(m.Name), Description: m.Description}
}

// ToModelPricedWindow converts a domain PricedWindow to a model PricedWindow
func ToModelPricedWindow(d domain.PricedWindow) models.PricedWindow {
	return models.PricedWindow{
		WindowID:    d.WindowID,
		SubjectKind: string(d.Subject.Kind),
		SubjectID:   d.Subject.ID,
		Value:       d.Value,
		ValidFrom:   d.ValidFrom,
		ValidUntil:  d.ValidUntil,
		Description: NullableString(d.Description),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPricedWindow converts a model PricedWindow to a domain PricedWindow
func ToDomainPricedWindow(m models.PricedWindow) domain.PricedWindow {
	return domain.PricedWindow{
		WindowID:    m.WindowID,
		Subject:     domain.Subject{Kind: domain.SubjectKind(m.SubjectKind), ID: m.SubjectID},
		Value:       m.Value,
		ValidFrom:   m.ValidFrom,
		ValidUntil:  m.ValidUntil,
		Description: StringValue(m.Description),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
