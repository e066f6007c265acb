package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/core/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLaborService_CreateLabor_NormalizesCode(t *testing.T) {
	ctx := context.Background()
	labors := new(MockLaborRepository)
	catalog := new(MockCatalogRepository)
	svc := services.NewLaborService(labors, catalog, new(MockVigencyService),
		services.WithClock(fixedClock), services.WithIDGenerator(sequentialIDs()))

	catalog.On("FindUnitByID", ctx, "unit-dia").Return(&domain.UnitOfMeasure{UnitID: "unit-dia", Name: domain.UnitDay}, nil).Once()
	labors.On("SaveLabor", ctx, mock.MatchedBy(func(l domain.Labor) bool {
		return l.Code == "FUM01" && l.Name == "Fumigación" && l.Active && l.UnitName == domain.UnitDay
	})).Return(nil).Once()

	labor, err := svc.CreateLabor(ctx, writerActor, dto.CreateLaborRequest{Code: " fum01", Name: "Fumigación ", UnitID: "unit-dia"})

	require.NoError(t, err)
	assert.Equal(t, "id-1", labor.LaborID)
	labors.AssertExpectations(t)
	catalog.AssertExpectations(t)

	catalog.On("FindUnitByID", ctx, "unit-x").Return(nil, apperrors.ErrNotFound).Once()
	_, err = svc.CreateLabor(ctx, writerActor, dto.CreateLaborRequest{Code: "X", Name: "X", UnitID: "unit-x"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLaborService_GetLabor_Price(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		window    *domain.PricedWindow
		vigErr    error
		wantPrice *decimal.Decimal
		wantErr   bool
	}{
		{name: "priced", window: &domain.PricedWindow{Value: decimal.NewFromInt(47450)}, wantPrice: func() *decimal.Decimal { d := decimal.NewFromInt(47450); return &d }()},
		{name: "never priced", vigErr: apperrors.ErrNotFound},
		{name: "lookup failure", vigErr: errors.New("redis and db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labors := new(MockLaborRepository)
			vigency := new(MockVigencyService)
			svc := services.NewLaborService(labors, new(MockCatalogRepository), vigency, services.WithClock(fixedClock))

			labors.On("FindLaborByID", ctx, "labor-1").Return(activeLabor(false), nil).Once()
			if tt.window != nil {
				vigency.On("CurrentValue", ctx, domain.LaborPriceSubject("labor-1"), fixedNow).Return(tt.window, nil).Once()
			} else {
				vigency.On("CurrentValue", ctx, domain.LaborPriceSubject("labor-1"), fixedNow).Return(nil, tt.vigErr).Once()
			}

			labor, price, err := svc.GetLabor(ctx, "labor-1")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "FUM01", labor.Code)
			if tt.wantPrice == nil {
				assert.Nil(t, price)
			} else {
				require.NotNil(t, price)
				assert.True(t, tt.wantPrice.Equal(*price))
			}
			vigency.AssertExpectations(t)
		})
	}
}

func TestCatalogService_ListRoles(t *testing.T) {
	ctx := context.Background()
	catalog := new(MockCatalogRepository)
	svc := services.NewCatalogService(catalog, catalog)

	catalog.On("ListRoles", ctx).Return([]domain.Role{{Name: domain.RoleSuperAdmin}, {Name: domain.RoleDigitador}, {Name: domain.RoleReadOnly}}, nil).Once()

	roles, err := svc.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 3)
	catalog.AssertExpectations(t)
}
