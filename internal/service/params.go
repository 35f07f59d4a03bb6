package service

import (
	"time"

	"process_control_sim/internal/models"
)

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "BOOTSTRAP", "START", "STOP", "ALERT"
}

// DashboardSnapshot is re-exported for handler signatures.
type DashboardSnapshot = models.DashboardSnapshot
