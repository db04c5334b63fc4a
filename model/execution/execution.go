package execution

import (
	"time"
)

// Execution represents a single action run
type Execution struct {
	ID          string                 `json:"id"`
	Action      string                 `json:"action"`
	Service     string                 `json:"service"`
	Method      string                 `json:"method"`
	ResultKey   string                 `json:"resultKey,omitempty"`
	State       State                  `json:"state"`
	Input       interface{}            `json:"input,omitempty"`
	Output      interface{}            `json:"output,omitempty"`
	Error       string                 `json:"error,omitempty"`
	ScheduledAt time.Time              `json:"scheduledAt"`
	StartedAt   *time.Time             `json:"startedAt,omitempty"`
	CompletedAt *time.Time             `json:"completedAt,omitempty"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
}

// Start marks the execution as started
func (e *Execution) Start(now time.Time) {
	e.StartedAt = &now
	e.State = StateRunning
}

// Complete marks the execution as completed
func (e *Execution) Complete(now time.Time) {
	e.CompletedAt = &now
	e.State = StateCompleted
}

// Fail marks the execution as failed
func (e *Execution) Fail(now time.Time, err error) {
	e.CompletedAt = &now
	if err != nil {
		e.Error = err.Error()
	}
	e.State = StateFailed
}

// Elapsed returns execution duration, zero if not yet completed
func (e *Execution) Elapsed() time.Duration {
	if e.StartedAt == nil || e.CompletedAt == nil {
		return 0
	}
	return e.CompletedAt.Sub(*e.StartedAt)
}

// Clone creates a copy of the execution so that the caller can mutate it
// without affecting the original instance. Input and Output are shared.
func (e *Execution) Clone() *Execution {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Meta != nil {
		clone.Meta = make(map[string]interface{}, len(e.Meta))
		for k, v := range e.Meta {
			clone.Meta[k] = v
		}
	}
	return &clone
}

// New creates a pending execution
func New(id, action, service, method string, scheduledAt time.Time) *Execution {
	return &Execution{
		ID:          id,
		Action:      action,
		Service:     service,
		Method:      method,
		State:       StatePending,
		ScheduledAt: scheduledAt,
	}
}
