package dto

import (
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenWindowRequest opens a new priced window for a labor price or payroll variable.
// Supersede closes the window currently open instead of failing with a conflict.
type OpenWindowRequest struct {
	Value       *decimal.Decimal `json:"value" binding:"required,gte=0"`
	ValidFrom   Date             `json:"validFrom" binding:"required"`
	Description string           `json:"description" binding:"max=255"`
	Supersede   bool             `json:"supersede"`
}

// WindowResponse is the API view of a priced window.
type WindowResponse struct {
	WindowID    string             `json:"windowID"`
	SubjectKind domain.SubjectKind `json:"subjectKind"`
	SubjectID   string             `json:"subjectID"`
	Value       decimal.Decimal    `json:"value"`
	ValidFrom   Date               `json:"validFrom"`
	ValidUntil  *Date              `json:"validUntil"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"createdAt"`
	CreatedBy   string             `json:"createdBy"`
}

// ToWindowResponse converts a domain.PricedWindow to WindowResponse DTO
func ToWindowResponse(w *domain.PricedWindow) WindowResponse {
	return WindowResponse{
		WindowID:    w.WindowID,
		SubjectKind: w.Subject.Kind,
		SubjectID:   w.Subject.ID,
		Value:       w.Value,
		ValidFrom:   NewDate(w.ValidFrom),
		ValidUntil:  DatePtr(w.ValidUntil),
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
		CreatedBy:   w.CreatedBy,
	}
}

// ToWindowResponses converts a window history.
func ToWindowResponses(windows []domain.PricedWindow) []WindowResponse {
	out := make([]WindowResponse, len(windows))
	for i := range windows {
		out[i] = ToWindowResponse(&windows[i])
	}
	return out
}
