package service

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"process_control_sim/internal/logger"
	"process_control_sim/internal/metrics"
	"process_control_sim/internal/models"
	"process_control_sim/internal/repository"
)

// Simulation exposes the start/stop controls.
type Simulation interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	State(ctx context.Context) (models.SimulationState, error)
}

// Monitoring exposes read-only dashboard frames.
type Monitoring interface {
	Snapshot(ctx context.Context, limit int) (DashboardSnapshot, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.SimulationEvent, error)
}

// Simulator runs the background loop that appends a record per tick.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Export streams the collection as CSV.
type Export interface {
	WriteCSV(ctx context.Context, w io.Writer) (int, error)
}

// Generator produces synthetic telemetry.
type Generator interface {
	GenerateOne() models.TelemetryRecord
	GenerateBatch(ctx context.Context, n int) ([]models.TelemetryRecord, error)
}

// Service aggregates all sub-services.
type Service struct {
	Simulation
	Monitoring
	EventLog
	Simulator
	Export
	Generator

	session *Session
}

// NewService wires the repository layer and the shared session into the
// concrete services.
func NewService(repos *repository.Repository, session *Session, src rand.Source, log *logger.Logger) *Service {
	gen := NewGeneratorService(src, repos.SnapshotRepo, repos.EventRepo)
	return &Service{
		Simulation: NewSimulationService(session, repos.EventRepo),
		Monitoring: NewMonitoringService(session),
		EventLog:   NewEventLogService(repos.EventRepo),
		Simulator:  NewSimulatorService(session, gen, repos.EventRepo, log),
		Export:     NewExportService(session),
		Generator:  gen,
		session:    session,
	}
}

// Bootstrap generates the initial batch, persists it and seeds the session.
func (s *Service) Bootstrap(ctx context.Context, n int) error {
	batch, err := s.GenerateBatch(ctx, n)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	s.session.Seed(batch)
	metrics.CollectionSize.Set(float64(s.session.Len()))
	return nil
}
