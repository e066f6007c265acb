package dto

import (
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLaborRecordRequest records a day of work.
type CreateLaborRecordRequest struct {
	WorkerID    string          `json:"workerID" binding:"required"`
	LaborID     string          `json:"laborID" binding:"required"`
	PayPeriodID string          `json:"payPeriodID" binding:"required"`
	Date        Date            `json:"date" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required,gte=0.01"`
	Notes       string          `json:"notes"`
}

// UpdateLaborRecordRequest changes a labor record. Omitted fields are left unchanged.
type UpdateLaborRecordRequest struct {
	LaborID  *string          `json:"laborID"`
	Date     *Date            `json:"date"`
	Quantity *decimal.Decimal `json:"quantity" binding:"omitempty,gte=0.01"`
	Notes    *string          `json:"notes"`
}

// ListLaborRecordsParams defines query parameters for listing labor records.
type ListLaborRecordsParams struct {
	WorkerID    string  `form:"workerID"`
	PayPeriodID string  `form:"payPeriodID"`
	LaborID     string  `form:"laborID"`
	DateFrom    string  `form:"dateFrom"`
	DateTo      string  `form:"dateTo"`
	Limit       int     `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken   *string `form:"nextToken"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListLaborRecordsParams) ToFilter() (domain.LaborRecordFilter, error) {
	f := domain.LaborRecordFilter{Limit: p.Limit, NextToken: p.NextToken}
	if p.WorkerID != "" {
		f.WorkerID = &p.WorkerID
	}
	if p.PayPeriodID != "" {
		f.PayPeriodID = &p.PayPeriodID
	}
	if p.LaborID != "" {
		f.LaborID = &p.LaborID
	}
	if p.DateFrom != "" {
		d, err := ParseDate(p.DateFrom)
		if err != nil {
			return f, err
		}
		f.DateFrom = &d.Time
	}
	if p.DateTo != "" {
		d, err := ParseDate(p.DateTo)
		if err != nil {
			return f, err
		}
		f.DateTo = &d.Time
	}
	return f, nil
}

// LaborRecordResponse is the API view of a labor record.
type LaborRecordResponse struct {
	RecordID    string          `json:"recordID"`
	WorkerID    string          `json:"workerID"`
	LaborID     string          `json:"laborID"`
	PayPeriodID string          `json:"payPeriodID"`
	Date        Date            `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ListLaborRecordsResponse wraps a page of labor records.
type ListLaborRecordsResponse struct {
	Records   []LaborRecordResponse `json:"records"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLaborRecordResponse converts a domain.LaborRecord to LaborRecordResponse DTO
func ToLaborRecordResponse(r *domain.LaborRecord) LaborRecordResponse {
	return LaborRecordResponse{
		RecordID:    r.RecordID,
		WorkerID:    r.WorkerID,
		LaborID:     r.LaborID,
		PayPeriodID: r.PayPeriodID,
		Date:        NewDate(r.Date),
		Quantity:    r.Quantity,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		CreatedBy:   r.CreatedBy,
	}
}

// ToListLaborRecordsResponse converts a page of records.
func ToListLaborRecordsResponse(records []domain.LaborRecord, nextToken *string) ListLaborRecordsResponse {
	out := make([]LaborRecordResponse, len(records))
	for i := range records {
		out[i] = ToLaborRecordResponse(&records[i])
	}
	return ListLaborRecordsResponse{Records: out, NextToken: nextToken}
}
