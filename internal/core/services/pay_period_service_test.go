package services_test

import (
	"context"
	"testing"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/core/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPayPeriodService_CreatePayPeriod(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPayPeriodRepository)
	svc := services.NewPayPeriodService(repo, services.WithClock(fixedClock), services.WithIDGenerator(sequentialIDs()))

	repo.On("SavePayPeriod", ctx, mock.MatchedBy(func(p domain.PayPeriod) bool {
		return p.PayPeriodID == "id-1" && p.EndDate.Equal(day("2025-02-28"))
	})).Return(nil).Once()
	repo.On("SavePayPeriod", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	period, err := svc.CreatePayPeriod(ctx, writerActor, dto.CreatePayPeriodRequest{Year: 2025, Month: 2, Number: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.PayPeriodOpen, period.Status)

	_, err = svc.CreatePayPeriod(ctx, writerActor, dto.CreatePayPeriodRequest{Year: 2025, Month: 2, Number: 2})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = svc.CreatePayPeriod(ctx, writerActor, dto.CreatePayPeriodRequest{Year: 2025, Month: 2, Number: 3})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.AssertExpectations(t)
}

func TestPayPeriodService_AdvancePayPeriod(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPayPeriodRepository)
	svc := services.NewPayPeriodService(repo, services.WithClock(fixedClock))

	open, err := domain.NewPayPeriod("pp-1", 2025, 6, 1, fixedNow)
	require.NoError(t, err)
	repo.expectTx(true)
	repo.On("FindPayPeriodForUpdate", ctx, nil, "pp-1").Return(open, nil).Once()
	repo.On("UpdatePayPeriodStatusInTx", ctx, nil, "pp-1", domain.PayPeriodCalculating).Return(nil).Once()

	got, err := svc.AdvancePayPeriod(ctx, writerActor, "pp-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PayPeriodCalculating, got.Status)

	paid := *open
	paid.Status = domain.PayPeriodPaid
	repo.expectTx(false)
	repo.On("FindPayPeriodForUpdate", ctx, nil, "pp-1").Return(&paid, nil).Once()

	_, err = svc.AdvancePayPeriod(ctx, writerActor, "pp-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	repo.AssertExpectations(t)
}

func TestPayPeriodService_EnsurePayPeriodFor(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the missing quincena", func(t *testing.T) {
		repo := new(MockPayPeriodRepository)
		svc := services.NewPayPeriodService(repo, services.WithClock(fixedClock), services.WithIDGenerator(sequentialIDs()))
		repo.On("SavePayPeriodIfAbsent", ctx, mock.MatchedBy(func(p domain.PayPeriod) bool {
			return p.Year == 2025 && p.Month == 12 && p.Number == 2
		})).Return(true, nil).Once()

		period, created, err := svc.EnsurePayPeriodFor(ctx, day("2025-12-20"))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "2025-12-Q2", period.Label())
		repo.AssertExpectations(t)
	})

	t.Run("returns the existing quincena", func(t *testing.T) {
		repo := new(MockPayPeriodRepository)
		svc := services.NewPayPeriodService(repo, services.WithClock(fixedClock), services.WithIDGenerator(sequentialIDs()))
		existing, err := domain.NewPayPeriod("pp-existing", 2025, 6, 1, fixedNow)
		require.NoError(t, err)
		repo.On("SavePayPeriodIfAbsent", ctx, mock.Anything).Return(false, nil).Once()
		repo.On("FindPayPeriodByKey", ctx, 2025, 6, 1).Return(existing, nil).Once()

		period, created, err := svc.EnsurePayPeriodFor(ctx, day("2025-06-10"))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "pp-existing", period.PayPeriodID)
		repo.AssertExpectations(t)
	})
}
