package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
)

// SystemUserID stamps rows written by the seeder.
const SystemUserID = "system"

type windowOpener interface {
	OpenWindow(ctx context.Context, actor domain.Actor, subject domain.Subject, req dto.OpenWindowRequest) (*domain.PricedWindow, error)
}

type laborCreator interface {
	CreateLabor(ctx context.Context, actor domain.Actor, req dto.CreateLaborRequest) (*domain.Labor, error)
}

type userCreator interface {
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)
}

// Admin describes the first SUPER_ADMIN account. An empty Username skips it.
type Admin struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// Report counts what a run created and what already existed.
type Report struct {
	VariablesOpened int
	VariablesKept   int
	LaborsCreated   int
	LaborsKept      int
	PricesOpened    int
	AdminCreated    bool
}

// Seeder writes a Catalog through the services, so every row is validated and audited.
type Seeder struct {
	vigency windowOpener
	labors  laborCreator
	users   userCreator
	logger  *slog.Logger
}

// NewSeeder wires the seeder. A nil logger falls back to slog.Default.
func NewSeeder(vigency windowOpener, labors laborCreator, users userCreator, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{vigency: vigency, labors: labors, users: users, logger: logger}
}

// Run applies the catalog. Running it twice leaves the data unchanged.
func (s *Seeder) Run(ctx context.Context, catalog *Catalog, admin Admin) (Report, error) {
	var report Report
	actor := domain.Actor{UserID: SystemUserID, Role: domain.RoleSuperAdmin, IPAddress: "127.0.0.1"}

	for _, v := range catalog.Variables {
		value := v.Value
		_, err := s.vigency.OpenWindow(ctx, actor, domain.VariableSubject(v.Name), dto.OpenWindowRequest{
			Value:       &value,
			ValidFrom:   dto.NewDate(v.ValidFrom),
			Description: v.Description,
		})
		switch {
		case err == nil:
			report.VariablesOpened++
		case errors.Is(err, apperrors.ErrConflict):
			report.VariablesKept++
		default:
			return report, fmt.Errorf("seed variable %s: %w", v.Name, err)
		}
	}

	for _, l := range catalog.Labors {
		labor, err := s.labors.CreateLabor(ctx, actor, dto.CreateLaborRequest{
			Code:         l.Code,
			Name:         l.Name,
			Description:  l.Description,
			UnitID:       l.UnitID,
			IsSpecial:    l.IsSpecial,
			ContractOnly: l.ContractOnly,
		})
		if errors.Is(err, apperrors.ErrDuplicate) {
			report.LaborsKept++
			continue
		}
		if err != nil {
			return report, fmt.Errorf("seed labor %s: %w", l.Code, err)
		}
		report.LaborsCreated++

		if l.Price == nil {
			continue
		}
		price := *l.Price
		if _, err := s.vigency.OpenWindow(ctx, actor, domain.LaborPriceSubject(labor.LaborID), dto.OpenWindowRequest{
			Value:       &price,
			ValidFrom:   dto.NewDate(l.ValidFrom),
			Description: "Precio inicial",
		}); err != nil {
			return report, fmt.Errorf("seed price of labor %s: %w", l.Code, err)
		}
		report.PricesOpened++
	}

	if admin.Username != "" {
		created, err := s.seedAdmin(ctx, actor, admin)
		if err != nil {
			return report, err
		}
		report.AdminCreated = created
	}

	s.logger.Info("Seed finished",
		slog.Int("variables_opened", report.VariablesOpened),
		slog.Int("labors_created", report.LaborsCreated),
		slog.Int("prices_opened", report.PricesOpened),
		slog.Bool("admin_created", report.AdminCreated))
	return report, nil
}

func (s *Seeder) seedAdmin(ctx context.Context, actor domain.Actor, admin Admin) (bool, error) {
	if admin.FirstName == "" {
		admin.FirstName = "Administrador"
	}
	if admin.LastName == "" {
		admin.LastName = "Finca"
	}
	_, err := s.users.CreateUser(ctx, actor, dto.CreateUserRequest{
		Username:  admin.Username,
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Password:  admin.Password,
		Role:      domain.RoleSuperAdmin,
	})
	if errors.Is(err, apperrors.ErrDuplicate) {
		s.logger.Info("Admin user already exists", slog.String("username", admin.Username))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seed admin %s: %w", admin.Username, err)
	}
	return true, nil
}
