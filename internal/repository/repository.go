package repository

import (
	"context"
	"database/sql"
	"time"

	"process_control_sim/internal/csvlog"
	"process_control_sim/internal/models"
)

// EventRepo is the append-only simulation event log.
type EventRepo interface {
	Append(ctx context.Context, e models.SimulationEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.SimulationEvent, error)
}

// SnapshotRepo persists a whole batch of records, replacing what was there.
type SnapshotRepo interface {
	Save(ctx context.Context, records []models.TelemetryRecord) error
}

type Repository struct {
	EventRepo    EventRepo
	SnapshotRepo SnapshotRepo
}

func NewRepository(db *sql.DB, snapshotPath string, opts csvlog.Options) *Repository {
	return &Repository{
		EventRepo:    NewEventSQLite(db),
		SnapshotRepo: NewSnapshotCSV(snapshotPath, opts),
	}
}
