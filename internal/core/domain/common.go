package domain

import (
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places stored amounts and quantities carry.
const MoneyPlaces = 2

// CheckCents rejects v when it has more decimal places than the database keeps,
// so a stored value always reads back as the value that was accepted.
func CheckCents(field string, v decimal.Decimal) error {
	if !v.Equal(v.Truncate(MoneyPlaces)) {
		return fmt.Errorf("%w: %s %s has more than %d decimal places", apperrors.ErrValidation, field, v.String(), MoneyPlaces)
	}
	return nil
}

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// NewAuditFields stamps creation and update fields with the same user and instant.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// Touch records an update by userID at now.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// Actor is the acting user of an operation. It is passed explicitly to every
// service call; services never read it from ambient state.
type Actor struct {
	UserID    string
	Role      RoleName
	IPAddress string
}

// DateOnly drops the clock part of t, keeping its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
