package models

import "time"

// SimulationState is the read model behind the start/stop controls.
type SimulationState struct {
	IsRunning   bool      `json:"is_running"`
	Ticks       uint64    `json:"ticks"`
	RecordCount int       `json:"record_count"`
	StartedAt   time.Time `json:"started_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DashboardSnapshot is everything the dashboard page draws in one frame.
type DashboardSnapshot struct {
	Running        bool              `json:"running"`
	Latest         *TelemetryRecord  `json:"latest,omitempty"`
	Records        []TelemetryRecord `json:"records"`
	Alerts         []TelemetryRecord `json:"alerts"`
	Total          int               `json:"total"`
	SeverityCounts map[Severity]int  `json:"severity_counts"`
}
