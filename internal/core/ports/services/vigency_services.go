package services

import (
	"context"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
)

// VigencySvcFacade manages time-bounded values of labor prices and payroll variables.
type VigencySvcFacade interface {
	// OpenWindow starts a new open-ended window for subject. Without Supersede an
	// open window already covering the subject is a conflict.
	OpenWindow(ctx context.Context, actor domain.Actor, subject domain.Subject, req dto.OpenWindowRequest) (*domain.PricedWindow, error)

	// CurrentValue returns the window in force for subject on d.
	CurrentValue(ctx context.Context, subject domain.Subject, d time.Time) (*domain.PricedWindow, error)

	// History returns every window of subject ordered by start date.
	History(ctx context.Context, subject domain.Subject) ([]domain.PricedWindow, error)
}
