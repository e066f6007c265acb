package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SubjectKind distinguishes the catalogs that own vigency windows.
type SubjectKind string

const (
	SubjectLaborPrice      SubjectKind = "LABOR_PRICE"
	SubjectPayrollVariable SubjectKind = "PAYROLL_VARIABLE"
)

// VariableName identifies a payroll constant.
type VariableName string

const (
	VariableMinimumWage       VariableName = "SALARIO_MINIMO"
	VariableTransportAllow    VariableName = "AUXILIO_TRANSPORTE"
	VariableHealthPercentage  VariableName = "PORCENTAJE_SALUD"
	VariablePensionPercentage VariableName = "PORCENTAJE_PENSION"
)

// VariableNames lists every payroll constant in a stable order.
var VariableNames = []VariableName{
	VariableMinimumWage,
	VariableTransportAllow,
	VariableHealthPercentage,
	VariablePensionPercentage,
}

func (v VariableName) IsValid() bool {
	for _, n := range VariableNames {
		if n == v {
			return true
		}
	}
	return false
}

// Subject is the keyed entity a window prices: a labor or a payroll variable.
type Subject struct {
	Kind SubjectKind `json:"kind"`
	ID   string      `json:"id"`
}

// LaborPriceSubject returns the subject for the price of laborID.
func LaborPriceSubject(laborID string) Subject {
	return Subject{Kind: SubjectLaborPrice, ID: laborID}
}

// VariableSubject returns the subject for a payroll variable.
func VariableSubject(name VariableName) Subject {
	return Subject{Kind: SubjectPayrollVariable, ID: string(name)}
}

func (s Subject) String() string {
	return string(s.Kind) + ":" + s.ID
}

// PricedWindow is a time-bounded value for a subject. ValidUntil nil means open-ended.
type PricedWindow struct {
	WindowID    string          `json:"windowID"`
	Subject     Subject         `json:"subject"`
	Value       decimal.Decimal `json:"value"`
	ValidFrom   time.Time       `json:"validFrom"`
	ValidUntil  *time.Time      `json:"validUntil,omitempty"`
	Description string          `json:"description"`
	AuditFields
}

// IsOpen reports whether the window has no closing date.
func (w PricedWindow) IsOpen() bool {
	return w.ValidUntil == nil
}

// CoversDate reports whether d falls in [ValidFrom, ValidUntil], both ends inclusive.
func (w PricedWindow) CoversDate(d time.Time) bool {
	day := DateOnly(d)
	if DateOnly(w.ValidFrom).After(day) {
		return false
	}
	return w.ValidUntil == nil || !DateOnly(*w.ValidUntil).Before(day)
}

// PlanOpenWindow checks a new window starting at validFrom against the existing
// windows of the same subject and returns the open windows that must be closed
// at validFrom. Open windows starting on or before validFrom block the new
// window unless supersede is set. Windows starting on or after validFrom, and
// closed windows extending past validFrom, always block it.
func PlanOpenWindow(existing []PricedWindow, validFrom time.Time, supersede bool) ([]PricedWindow, error) {
	from := DateOnly(validFrom)
	var toClose []PricedWindow
	for _, w := range existing {
		start := DateOnly(w.ValidFrom)
		switch {
		case start.Equal(from):
			return nil, fmt.Errorf("%w: a window for %s already starts on %s", apperrors.ErrConflict, w.Subject, from.Format(time.DateOnly))
		case start.After(from):
			return nil, fmt.Errorf("%w: a later window for %s starts on %s", apperrors.ErrConflict, w.Subject, start.Format(time.DateOnly))
		case w.IsOpen():
			toClose = append(toClose, w)
		case DateOnly(*w.ValidUntil).After(from):
			return nil, fmt.Errorf("%w: window for %s valid until %s overlaps %s", apperrors.ErrConflict, w.Subject, w.ValidUntil.Format(time.DateOnly), from.Format(time.DateOnly))
		}
	}
	if len(toClose) > 0 && !supersede {
		return nil, fmt.Errorf("%w: an active window already covers this subject", apperrors.ErrConflict)
	}
	return toClose, nil
}

// ResolveCurrent picks the window current at d among candidates.
//
// A window is still current on its own closing date. When a closed window and
// its successor share the boundary day, the closing window wins. Any other
// multiple match is a DataIntegrityError.
func ResolveCurrent(candidates []PricedWindow, d time.Time) (*PricedWindow, error) {
	day := DateOnly(d)
	var matches []PricedWindow
	for _, w := range candidates {
		if w.CoversDate(day) {
			matches = append(matches, w)
		}
	}

	switch len(matches) {
	case 0:
		return nil, apperrors.ErrNotFound
	case 1:
		return &matches[0], nil
	case 2:
		sort.Slice(matches, func(i, j int) bool { return matches[i].ValidFrom.Before(matches[j].ValidFrom) })
		closing, successor := matches[0], matches[1]
		if !closing.IsOpen() && DateOnly(*closing.ValidUntil).Equal(day) && DateOnly(successor.ValidFrom).Equal(day) {
			return &closing, nil
		}
	}
	return nil, fmt.Errorf("%w: %d windows current for %s on %s", apperrors.ErrDataIntegrity, len(matches), matches[0].Subject, day.Format(time.DateOnly))
}
