package domain_test

import (
	"testing"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayPeriod_Dates(t *testing.T) {
	tests := []struct {
		name                 string
		year, month, number  int
		start, end, deadline string
	}{
		{"first half", 2025, 2, 1, "2025-02-01", "2025-02-15", "2025-03-02"},
		{"second half of february", 2025, 2, 2, "2025-02-16", "2025-02-28", "2025-03-15"},
		{"second half of leap february", 2024, 2, 2, "2024-02-16", "2024-02-29", "2024-03-15"},
		{"second half of december", 2025, 12, 2, "2025-12-16", "2025-12-31", "2026-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := domain.NewPayPeriod("pp", tt.year, tt.month, tt.number, time.Now())
			require.NoError(t, err)
			assert.Equal(t, day(tt.start), p.StartDate)
			assert.Equal(t, day(tt.end), p.EndDate)
			assert.Equal(t, day(tt.deadline), p.RegistrationDeadline)
			assert.Equal(t, domain.PayPeriodOpen, p.Status)
		})
	}
}

func TestNewPayPeriod_Invalid(t *testing.T) {
	_, err := domain.NewPayPeriod("pp", 2025, 13, 1, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = domain.NewPayPeriod("pp", 2025, 1, 3, time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPayPeriodKeys(t *testing.T) {
	y, m, n := domain.PayPeriodKeyFor(day("2025-12-20"))
	assert.Equal(t, []int{2025, 12, 2}, []int{y, m, n})

	y, m, n = domain.NextPayPeriodKey(y, m, n)
	assert.Equal(t, []int{2026, 1, 1}, []int{y, m, n})

	y, m, n = domain.NextPayPeriodKey(y, m, n)
	assert.Equal(t, []int{2026, 1, 2}, []int{y, m, n})
}

func TestPayPeriod_Lifecycle(t *testing.T) {
	p, err := domain.NewPayPeriod("pp", 2025, 3, 1, time.Now())
	require.NoError(t, err)

	assert.True(t, p.Contains(day("2025-03-15")))
	assert.False(t, p.Contains(day("2025-03-16")))
	assert.True(t, p.CanRegister(day("2025-03-30")))
	assert.False(t, p.CanRegister(day("2025-03-31")))

	for _, want := range []domain.PayPeriodStatus{domain.PayPeriodCalculating, domain.PayPeriodCalculated, domain.PayPeriodPaid} {
		require.NoError(t, p.Advance())
		assert.Equal(t, want, p.Status)
	}
	assert.ErrorIs(t, p.Advance(), apperrors.ErrInvalidState)
	assert.False(t, p.CanRegister(day("2025-03-20")))
	assert.Equal(t, "2025-03-Q1", p.Label())
}

func TestPayroll_TotalsAndTransitions(t *testing.T) {
	loanID := "loan-1"
	p := &domain.Payroll{
		PayrollID: "pay-1",
		Status:    domain.PayrollDraft,
		Lines: []domain.PayrollLine{
			{Type: domain.LineEarning, Concept: domain.ConceptLabor, TotalValue: decimal.NewFromInt(200000)},
			{Type: domain.LineEarning, Concept: domain.ConceptManualAdjustment, TotalValue: decimal.NewFromInt(15000)},
			{Type: domain.LineDeduction, Concept: domain.ConceptLoan, LoanID: &loanID, TotalValue: decimal.NewFromInt(50000)},
		},
	}
	p.RecomputeTotals()

	assert.True(t, p.TotalEarned.Equal(decimal.NewFromInt(215000)))
	assert.True(t, p.TotalDeductions.Equal(decimal.NewFromInt(50000)))
	assert.True(t, p.NetPay.Equal(decimal.NewFromInt(165000)))
	assert.Len(t, p.ManualLines(), 1)
	assert.Len(t, p.LoanLines(), 1)

	assert.ErrorIs(t, p.Approve("u", time.Now()), apperrors.ErrInvalidState)
	require.NoError(t, p.MarkCalculated("u", time.Now()))
	assert.ErrorIs(t, p.MarkPaid("u", time.Now()), apperrors.ErrInvalidState)
	require.NoError(t, p.Approve("u", time.Now()))
	assert.False(t, p.IsEditable())
	assert.ErrorIs(t, p.MarkCalculated("u", time.Now()), apperrors.ErrInvalidState)
	require.NoError(t, p.MarkPaid("u", time.Now()))
	assert.NotNil(t, p.PaidAt)
}
