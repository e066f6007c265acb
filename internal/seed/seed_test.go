package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVigency struct{ mock.Mock }

func (m *mockVigency) OpenWindow(ctx context.Context, actor domain.Actor, subject domain.Subject, req dto.OpenWindowRequest) (*domain.PricedWindow, error) {
	args := m.Called(ctx, actor, subject, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricedWindow), args.Error(1)
}

type mockLabors struct{ mock.Mock }

func (m *mockLabors) CreateLabor(ctx context.Context, actor domain.Actor, req dto.CreateLaborRequest) (*domain.Labor, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Labor), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	names := make([]domain.VariableName, 0, len(c.Variables))
	for _, v := range c.Variables {
		names = append(names, v.Name)
	}
	assert.ElementsMatch(t, domain.VariableNames, names)
	assert.True(t, c.Variables[0].Value.Equal(decimal.NewFromInt(1423500)))
	assert.Equal(t, "2025-01-01", dto.NewDate(c.Variables[0].ValidFrom).Format("2006-01-02"))

	require.NotEmpty(t, c.Labors)
	require.Len(t, c.Labors, 8)
	assert.Equal(t, "LAB001", c.Labors[0].Code)
	require.NotNil(t, c.Labors[0].Price)
	assert.True(t, c.Labors[0].Price.Equal(decimal.NewFromInt(47450)))
	assert.Nil(t, c.Labors[1].Price)
	assert.True(t, c.Labors[1].IsSpecial && c.Labors[1].ContractOnly)
}

func TestParseCatalog_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown variable": "variables:\n  - name: BONO\n    value: \"1\"\n    valid_from: 2025-01-01\n",
		"duplicate labor":  "labors:\n  - {code: A, name: A, unit: unit-dia}\n  - {code: A, name: B, unit: unit-dia}\n",
		"price no date":    "labors:\n  - {code: A, name: A, unit: unit-dia, price: \"10\"}\n",
		"missing unit":     "labors:\n  - {code: A, name: A}\n",
		"not yaml":         "labors: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	catalog, err := ParseCatalog([]byte(`
variables:
  - name: SALARIO_MINIMO
    value: "1423500"
    valid_from: 2025-01-01
labors:
  - code: JORNAL
    name: Jornal
    unit: unit-dia
    price: "60000"
    valid_from: 2025-01-01
  - code: FESTIVO
    name: Festivo
    unit: unit-dia
    special: true
`))
	require.NoError(t, err)

	vig, labors, users := new(mockVigency), new(mockLabors), new(mockUsers)
	system := mock.MatchedBy(func(a domain.Actor) bool {
		return a.UserID == SystemUserID && a.Role == domain.RoleSuperAdmin
	})

	// First run creates everything.
	vig.On("OpenWindow", mock.Anything, system, domain.VariableSubject(domain.VariableMinimumWage), mock.Anything).
		Return(&domain.PricedWindow{WindowID: "win-1"}, nil).Once()
	labors.On("CreateLabor", mock.Anything, system, mock.MatchedBy(func(r dto.CreateLaborRequest) bool { return r.Code == "JORNAL" })).
		Return(&domain.Labor{LaborID: "lab-1", Code: "JORNAL"}, nil).Once()
	vig.On("OpenWindow", mock.Anything, system, domain.LaborPriceSubject("lab-1"),
		mock.MatchedBy(func(r dto.OpenWindowRequest) bool { return r.Value.Equal(decimal.NewFromInt(60000)) })).
		Return(&domain.PricedWindow{WindowID: "win-2"}, nil).Once()
	labors.On("CreateLabor", mock.Anything, system, mock.MatchedBy(func(r dto.CreateLaborRequest) bool { return r.Code == "FESTIVO" && r.IsSpecial })).
		Return(&domain.Labor{LaborID: "lab-2", Code: "FESTIVO"}, nil).Once()
	users.On("CreateUser", mock.Anything, system, mock.MatchedBy(func(r dto.CreateUserRequest) bool {
		return r.Username == "admin" && r.Role == domain.RoleSuperAdmin && r.FirstName == "Administrador"
	})).Return(&domain.User{UserID: "u-1"}, nil).Once()

	s := NewSeeder(vig, labors, users, nil)
	report, err := s.Run(context.Background(), catalog, Admin{Username: "admin", Password: "cambiar-ya-123"})
	require.NoError(t, err)
	assert.Equal(t, Report{VariablesOpened: 1, LaborsCreated: 2, PricesOpened: 1, AdminCreated: true}, report)

	// Second run finds everything in place.
	vig.On("OpenWindow", mock.Anything, system, domain.VariableSubject(domain.VariableMinimumWage), mock.Anything).
		Return(nil, fmt.Errorf("%w: open window exists", apperrors.ErrConflict)).Once()
	labors.On("CreateLabor", mock.Anything, system, mock.Anything).
		Return(nil, fmt.Errorf("%w: labor code", apperrors.ErrDuplicate)).Twice()
	users.On("CreateUser", mock.Anything, system, mock.Anything).
		Return(nil, fmt.Errorf("%w: username admin is taken", apperrors.ErrDuplicate)).Once()

	report, err = s.Run(context.Background(), catalog, Admin{Username: "admin", Password: "cambiar-ya-123"})
	require.NoError(t, err)
	assert.Equal(t, Report{VariablesKept: 1, LaborsKept: 2}, report)

	vig.AssertExpectations(t)
	labors.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestSeeder_StopsOnUnexpectedError(t *testing.T) {
	catalog := &Catalog{Labors: []LaborSeed{{Code: "JORNAL", Name: "Jornal", UnitID: "unit-x"}}}
	labors := new(mockLabors)
	labors.On("CreateLabor", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unit unit-x", apperrors.ErrNotFound)).Once()

	_, err := NewSeeder(new(mockVigency), labors, new(mockUsers), nil).Run(context.Background(), catalog, Admin{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
