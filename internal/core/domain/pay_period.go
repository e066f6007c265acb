package domain

import (
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
)

// RegistrationGraceDays is how long after a quincena ends labor can still be recorded.
const RegistrationGraceDays = 15

// PayPeriodStatus is the lifecycle state of a quincena.
type PayPeriodStatus string

const (
	PayPeriodOpen        PayPeriodStatus = "OPEN"
	PayPeriodCalculating PayPeriodStatus = "CALCULATING"
	PayPeriodCalculated  PayPeriodStatus = "CALCULATED"
	PayPeriodPaid        PayPeriodStatus = "PAID"
)

var payPeriodFlow = map[PayPeriodStatus]PayPeriodStatus{
	PayPeriodOpen:        PayPeriodCalculating,
	PayPeriodCalculating: PayPeriodCalculated,
	PayPeriodCalculated:  PayPeriodPaid,
}

// PayPeriod is a quincena: days 1-15 (number 1) or 16-end of month (number 2).
type PayPeriod struct {
	PayPeriodID          string          `json:"payPeriodID"`
	Year                 int             `json:"year"`
	Month                int             `json:"month"`
	Number               int             `json:"number"`
	StartDate            time.Time       `json:"startDate"`
	EndDate              time.Time       `json:"endDate"`
	RegistrationDeadline time.Time       `json:"registrationDeadline"`
	Status               PayPeriodStatus `json:"status"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// NewPayPeriod derives the dates of quincena number of month/year.
func NewPayPeriod(id string, year, month, number int, now time.Time) (*PayPeriod, error) {
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: year %d out of range", apperrors.ErrValidation, year)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if number != 1 && number != 2 {
		return nil, fmt.Errorf("%w: quincena number must be 1 or 2", apperrors.ErrValidation)
	}

	var start, end time.Time
	if number == 1 {
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
	} else {
		start = time.Date(year, time.Month(month), 16, 0, 0, 0, 0, time.UTC)
		// day 0 of the next month is the last day of this one
		end = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	}

	return &PayPeriod{
		PayPeriodID:          id,
		Year:                 year,
		Month:                month,
		Number:               number,
		StartDate:            start,
		EndDate:              end,
		RegistrationDeadline: end.AddDate(0, 0, RegistrationGraceDays),
		Status:               PayPeriodOpen,
		CreatedAt:            now,
	}, nil
}

// PayPeriodKeyFor returns the year, month and quincena number containing d.
func PayPeriodKeyFor(d time.Time) (year, month, number int) {
	day := DateOnly(d)
	number = 1
	if day.Day() > 15 {
		number = 2
	}
	return day.Year(), int(day.Month()), number
}

// NextPayPeriodKey returns the quincena following year/month/number.
func NextPayPeriodKey(year, month, number int) (int, int, int) {
	if number == 1 {
		return year, month, 2
	}
	if month == 12 {
		return year + 1, 1, 1
	}
	return year, month + 1, 1
}

// Contains reports whether d falls within the quincena, both ends inclusive.
func (p PayPeriod) Contains(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(p.StartDate) && !day.After(p.EndDate)
}

// CanRegister reports whether labor may still be recorded on today.
func (p PayPeriod) CanRegister(today time.Time) bool {
	return p.Status != PayPeriodPaid && !DateOnly(today).After(p.RegistrationDeadline)
}

// Advance moves the quincena one step forward.
func (p *PayPeriod) Advance() error {
	next, ok := payPeriodFlow[p.Status]
	if !ok {
		return fmt.Errorf("%w: quincena %s is %s", apperrors.ErrInvalidState, p.Label(), p.Status)
	}
	p.Status = next
	return nil
}

// Label renders the quincena as YYYY-MM-Qn.
func (p PayPeriod) Label() string {
	return fmt.Sprintf("%d-%02d-Q%d", p.Year, p.Month, p.Number)
}
