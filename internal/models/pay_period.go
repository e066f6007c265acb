package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayPeriod is a row of the pay_periods table.
type PayPeriod struct {
	PayPeriodID          string    `db:"pay_period_id"`
	Year                 int       `db:"year"`
	Month                int       `db:"month"`
	Number               int       `db:"number"`
	StartDate            time.Time `db:"start_date"`
	EndDate              time.Time `db:"end_date"`
	RegistrationDeadline time.Time `db:"registration_deadline"`
	Status               string    `db:"status"`
	CreatedAt            time.Time `db:"created_at"`
}

// LaborRecord is a row of the labor_records table.
type LaborRecord struct {
	RecordID    string          `db:"record_id"`
	WorkerID    string          `db:"worker_id"`
	LaborID     string          `db:"labor_id"`
	PayPeriodID string          `db:"pay_period_id"`
	Date        time.Time       `db:"record_date"`
	Quantity    decimal.Decimal `db:"quantity"`
	Notes       *string         `db:"notes"`
	AuditFields
}
