package saga

import "time"

// EventType names one observable transition of a running saga.
type EventType string

const (
	EventSagaStarted           EventType = "saga_started"
	EventSagaCompleted         EventType = "saga_completed"
	EventSagaFailed            EventType = "saga_failed"
	EventStageStarted          EventType = "stage_started"
	EventStageCompleted        EventType = "stage_completed"
	EventStageFailed           EventType = "stage_failed"
	EventCompensationStarted   EventType = "compensation_started"
	EventCompensationCompleted EventType = "compensation_completed"
	EventCompensationFailed    EventType = "compensation_failed"
)

// Event is one saga transition as broadcast to stream subscribers.
type Event struct {
	Type     EventType `json:"type"`
	Workflow string    `json:"workflow"`
	SagaID   string    `json:"saga_id"`
	Stage    string    `json:"stage,omitempty"`
	Error    string    `json:"error,omitempty"`
	At       time.Time `json:"at"`
}

// Observer receives saga events. Implementations must be safe for
// concurrent use and must not block: events are emitted inline from the
// workflow goroutine.
type Observer interface {
	SagaEvent(Event)
}

// NopObserver discards events.
type NopObserver struct{}

func (NopObserver) SagaEvent(Event) {}
