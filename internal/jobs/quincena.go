package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/hibiken/asynq"
)

// PayPeriodEnsurer creates the quincena containing a date unless it exists.
type PayPeriodEnsurer interface {
	EnsurePayPeriodFor(ctx context.Context, d time.Time) (*domain.PayPeriod, bool, error)
}

// QuincenaJob keeps the quincena calendar one period ahead of today.
type QuincenaJob struct {
	periods PayPeriodEnsurer
	logger  *slog.Logger
	clock   func() time.Time
}

// NewQuincenaJob wires the handler. A nil logger falls back to slog.Default.
func NewQuincenaJob(periods PayPeriodEnsurer, logger *slog.Logger) *QuincenaJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuincenaJob{
		periods: periods,
		logger:  logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes TaskEnsureQuincena tasks.
func (j *QuincenaJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.periods == nil {
		return errors.New("quincena job: handler not configured")
	}
	var payload EnsureQuincenaPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("quincena job: decode payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	ref := j.clock()
	if payload.Date != "" {
		parsed, err := time.Parse(time.DateOnly, payload.Date)
		if err != nil {
			return fmt.Errorf("quincena job: bad date %q: %w", payload.Date, asynq.SkipRetry)
		}
		ref = parsed
	}

	_, err := j.EnsureAround(ctx, ref)
	return err
}

// EnsureAround creates the quincena containing ref and the one after it.
// It returns how many quincenas were created.
func (j *QuincenaJob) EnsureAround(ctx context.Context, ref time.Time) (int, error) {
	created := 0
	for _, d := range []time.Time{ref, nextQuincenaStart(ref)} {
		period, isNew, err := j.periods.EnsurePayPeriodFor(ctx, d)
		if err != nil {
			j.logger.Error("ensure quincena", slog.String("date", d.Format(time.DateOnly)), slog.Any("error", err))
			return created, err
		}
		if isNew {
			created++
			j.logger.Info("quincena created", slog.String("label", period.Label()))
		}
	}
	return created, nil
}

// nextQuincenaStart returns the first day of the quincena after the one containing d.
func nextQuincenaStart(d time.Time) time.Time {
	year, month, number := domain.NextPayPeriodKey(domain.PayPeriodKeyFor(d))
	day := 1
	if number == 2 {
		day = 16
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
