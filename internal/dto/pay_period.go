package dto

import (
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// CreatePayPeriodRequest identifies a quincena by year, month and half.
type CreatePayPeriodRequest struct {
	Year   int `json:"year" binding:"required,min=2000,max=2100"`
	Month  int `json:"month" binding:"required,min=1,max=12"`
	Number int `json:"number" binding:"required,oneof=1 2"`
}

// PayPeriodResponse is the API view of a quincena.
type PayPeriodResponse struct {
	PayPeriodID          string                 `json:"payPeriodID"`
	Label                string                 `json:"label"`
	Year                 int                    `json:"year"`
	Month                int                    `json:"month"`
	Number               int                    `json:"number"`
	StartDate            Date                   `json:"startDate"`
	EndDate              Date                   `json:"endDate"`
	RegistrationDeadline Date                   `json:"registrationDeadline"`
	Status               domain.PayPeriodStatus `json:"status"`
	CreatedAt            time.Time              `json:"createdAt"`
}

// ToPayPeriodResponse converts a domain.PayPeriod to PayPeriodResponse DTO
func ToPayPeriodResponse(p *domain.PayPeriod) PayPeriodResponse {
	return PayPeriodResponse{
		PayPeriodID:          p.PayPeriodID,
		Label:                p.Label(),
		Year:                 p.Year,
		Month:                p.Month,
		Number:               p.Number,
		StartDate:            NewDate(p.StartDate),
		EndDate:              NewDate(p.EndDate),
		RegistrationDeadline: NewDate(p.RegistrationDeadline),
		Status:               p.Status,
		CreatedAt:            p.CreatedAt,
	}
}

// ToPayPeriodResponses converts a list of quincenas.
func ToPayPeriodResponses(periods []domain.PayPeriod) []PayPeriodResponse {
	out := make([]PayPeriodResponse, len(periods))
	for i := range periods {
		out[i] = ToPayPeriodResponse(&periods[i])
	}
	return out
}
