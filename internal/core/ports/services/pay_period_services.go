package services

import (
	"context"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
)

// PayPeriodSvcFacade manages quincenas.
type PayPeriodSvcFacade interface {
	CreatePayPeriod(ctx context.Context, actor domain.Actor, req dto.CreatePayPeriodRequest) (*domain.PayPeriod, error)
	GetPayPeriod(ctx context.Context, payPeriodID string) (*domain.PayPeriod, error)
	ListPayPeriods(ctx context.Context, year *int) ([]domain.PayPeriod, error)

	// AdvancePayPeriod moves a quincena one status forward.
	AdvancePayPeriod(ctx context.Context, actor domain.Actor, payPeriodID string) (*domain.PayPeriod, error)

	// EnsurePayPeriodFor creates the quincena containing d unless it exists.
	// It reports whether a quincena was created.
	EnsurePayPeriodFor(ctx context.Context, d time.Time) (*domain.PayPeriod, bool, error)
}
