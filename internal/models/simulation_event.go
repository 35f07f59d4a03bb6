package models

import "time"

// Event types written to the simulation event log.
const (
	EventBootstrap = "BOOTSTRAP"
	EventStart     = "START"
	EventStop      = "STOP"
	EventAlert     = "ALERT"
)

// SimulationEvent is a single log entry.
type SimulationEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // BOOTSTRAP | START | STOP | ALERT
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
