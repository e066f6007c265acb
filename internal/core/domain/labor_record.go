package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinLaborQuantity is the smallest quantity a labor record may carry.
var MinLaborQuantity = decimal.New(1, -2)

// LaborRecord is a day's work of one labor by one worker inside a quincena.
type LaborRecord struct {
	RecordID    string          `json:"recordID"`
	WorkerID    string          `json:"workerID"`
	LaborID     string          `json:"laborID"`
	PayPeriodID string          `json:"payPeriodID"`
	Date        time.Time       `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	Notes       string          `json:"notes"`
	AuditFields
}

// LaborRecordFilter narrows labor record listings. NextToken continues a previous page.
type LaborRecordFilter struct {
	WorkerID    *string
	PayPeriodID *string
	LaborID     *string
	DateFrom    *time.Time
	DateTo      *time.Time
	Limit       int
	NextToken   *string
}
