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

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func window(id, from string, until *time.Time, value int64) domain.PricedWindow {
	return domain.PricedWindow{
		WindowID:   id,
		Subject:    domain.LaborPriceSubject("LAB001"),
		Value:      decimal.NewFromInt(value),
		ValidFrom:  day(from),
		ValidUntil: until,
	}
}

func TestPricedWindow_CoversDate(t *testing.T) {
	closed := window("w1", "2025-01-01", dayPtr("2025-06-01"), 47450)
	open := window("w2", "2025-06-01", nil, 50000)

	tests := []struct {
		name string
		w    domain.PricedWindow
		date string
		want bool
	}{
		{"before start", closed, "2024-12-31", false},
		{"on start", closed, "2025-01-01", true},
		{"inside", closed, "2025-03-15", true},
		{"on closing date", closed, "2025-06-01", true},
		{"day after closing", closed, "2025-06-02", false},
		{"open window far future", open, "2030-01-01", true},
		{"open window before start", open, "2025-05-31", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.CoversDate(day(tt.date)))
		})
	}
}

func TestPlanOpenWindow(t *testing.T) {
	tests := []struct {
		name      string
		existing  []domain.PricedWindow
		from      string
		supersede bool
		wantClose []string
		wantErr   error
	}{
		{
			name:     "first window for subject",
			existing: nil,
			from:     "2025-01-01",
		},
		{
			name:     "open window blocks without supersede",
			existing: []domain.PricedWindow{window("w1", "2025-01-01", nil, 47450)},
			from:     "2025-06-01",
			wantErr:  apperrors.ErrConflict,
		},
		{
			name:      "supersede closes the open window",
			existing:  []domain.PricedWindow{window("w1", "2025-01-01", nil, 47450)},
			from:      "2025-06-01",
			supersede: true,
			wantClose: []string{"w1"},
		},
		{
			name:      "same start day is rejected even with supersede",
			existing:  []domain.PricedWindow{window("w1", "2025-01-01", nil, 47450)},
			from:      "2025-01-01",
			supersede: true,
			wantErr:   apperrors.ErrConflict,
		},
		{
			name:      "later window is rejected",
			existing:  []domain.PricedWindow{window("w1", "2025-06-01", nil, 50000)},
			from:      "2025-01-01",
			supersede: true,
			wantErr:   apperrors.ErrConflict,
		},
		{
			name:     "closed history before the new start is fine",
			existing: []domain.PricedWindow{window("w1", "2024-01-01", dayPtr("2024-12-31"), 40000)},
			from:     "2025-01-01",
		},
		{
			name:     "closed window reaching the new start day is fine",
			existing: []domain.PricedWindow{window("w1", "2024-01-01", dayPtr("2025-01-01"), 40000)},
			from:     "2025-01-01",
		},
		{
			name:      "closed window extending past the new start is rejected",
			existing:  []domain.PricedWindow{window("w1", "2024-01-01", dayPtr("2025-03-01"), 40000)},
			from:      "2025-01-01",
			supersede: true,
			wantErr:   apperrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toClose, err := domain.PlanOpenWindow(tt.existing, day(tt.from), tt.supersede)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			var ids []string
			for _, w := range toClose {
				ids = append(ids, w.WindowID)
			}
			assert.Equal(t, tt.wantClose, ids)
		})
	}
}

func TestResolveCurrent_SupersessionScenario(t *testing.T) {
	first := window("w1", "2025-01-01", nil, 47450)

	toClose, err := domain.PlanOpenWindow([]domain.PricedWindow{first}, day("2025-06-01"), true)
	require.NoError(t, err)
	require.Len(t, toClose, 1)

	first.ValidUntil = dayPtr("2025-06-01")
	second := window("w2", "2025-06-01", nil, 50000)
	history := []domain.PricedWindow{first, second}

	openCount := 0
	for _, w := range history {
		if w.IsOpen() {
			openCount++
		}
	}
	assert.Equal(t, 1, openCount)

	got, err := domain.ResolveCurrent(history, day("2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, "w1", got.WindowID)

	got, err = domain.ResolveCurrent(history, day("2025-06-01"))
	require.NoError(t, err)
	assert.Equal(t, "w1", got.WindowID, "a window is still current on its own closing date")

	got, err = domain.ResolveCurrent(history, day("2025-06-02"))
	require.NoError(t, err)
	assert.Equal(t, "w2", got.WindowID)
	assert.True(t, got.Value.Equal(decimal.NewFromInt(50000)))
}

func TestResolveCurrent_Errors(t *testing.T) {
	t.Run("nothing covers the date", func(t *testing.T) {
		_, err := domain.ResolveCurrent([]domain.PricedWindow{window("w1", "2025-01-01", nil, 1)}, day("2024-01-01"))
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("two open windows", func(t *testing.T) {
		_, err := domain.ResolveCurrent([]domain.PricedWindow{
			window("w1", "2025-01-01", nil, 1),
			window("w2", "2025-02-01", nil, 2),
		}, day("2025-03-01"))
		assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
	})

	t.Run("overlapping closed windows", func(t *testing.T) {
		_, err := domain.ResolveCurrent([]domain.PricedWindow{
			window("w1", "2025-01-01", dayPtr("2025-05-01"), 1),
			window("w2", "2025-02-01", dayPtr("2025-06-01"), 2),
		}, day("2025-03-01"))
		assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
	})
}

func TestVariableName_IsValid(t *testing.T) {
	assert.True(t, domain.VariableMinimumWage.IsValid())
	assert.True(t, domain.VariablePensionPercentage.IsValid())
	assert.False(t, domain.VariableName("BONO").IsValid())
	assert.Equal(t, "PAYROLL_VARIABLE:SALARIO_MINIMO", domain.VariableSubject(domain.VariableMinimumWage).String())
}
