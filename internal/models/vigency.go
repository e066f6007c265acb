package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricedWindow is a row of the priced_windows table.
type PricedWindow struct {
	WindowID    string          `db:"window_id"`
	SubjectKind string          `db:"subject_kind"`
	SubjectID   string          `db:"subject_id"`
	Value       decimal.Decimal `db:"value"`
	ValidFrom   time.Time       `db:"valid_from"`
	ValidUntil  *time.Time      `db:"valid_until"`
	Description *string         `db:"description"`
	AuditFields
}
