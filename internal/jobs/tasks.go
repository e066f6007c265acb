package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the queue every payroll job runs on.
	QueueDefault = "default"

	// TaskEnsureQuincena makes sure the current and the following quincena exist.
	TaskEnsureQuincena = "quincena:ensure"
)

// EnsureQuincenaPayload optionally pins the reference date. Without it the
// handler uses the day it runs on.
type EnsureQuincenaPayload struct {
	Date string `json:"date,omitempty"`
}

// NewEnsureQuincenaTask builds a quincena task. A zero date means "today".
func NewEnsureQuincenaTask(date time.Time) (*asynq.Task, error) {
	var payload EnsureQuincenaPayload
	if !date.IsZero() {
		payload.Date = date.Format(time.DateOnly)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", TaskEnsureQuincena, err)
	}
	return asynq.NewTask(TaskEnsureQuincena, data, asynq.Queue(QueueDefault), asynq.MaxRetry(3)), nil
}
