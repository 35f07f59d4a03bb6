package service

import (
	"context"
	"fmt"
	"time"

	"process_control_sim/internal/metrics"
	"process_control_sim/internal/models"
	"process_control_sim/internal/repository"

	"github.com/google/uuid"
)

// SimulationService owns the start/stop controls.
type SimulationService struct {
	session   *Session
	eventRepo repository.EventRepo
	now       func() time.Time
}

func NewSimulationService(session *Session, eventRepo repository.EventRepo) *SimulationService {
	return &SimulationService{session: session, eventRepo: eventRepo, now: time.Now}
}

// Start moves the session to RUNNING and logs START. Starting a running
// session is a no-op.
func (s *SimulationService) Start(ctx context.Context) error {
	return s.transition(ctx, true, models.EventStart, "Simulation started")
}

// Stop moves the session to STOPPED and logs STOP. The simulator notices on
// its next tick. Stopping a stopped session is a no-op.
func (s *SimulationService) Stop(ctx context.Context) error {
	return s.transition(ctx, false, models.EventStop, "Simulation stopped")
}

// State returns the current control read model.
func (s *SimulationService) State(ctx context.Context) (models.SimulationState, error) {
	if err := ctx.Err(); err != nil {
		return models.SimulationState{}, err
	}
	return s.session.State(), nil
}

func (s *SimulationService) transition(ctx context.Context, running bool, eventType, description string) error {
	if !s.session.SetRunning(running) {
		return nil
	}
	metrics.SetRunning(running)

	st := s.session.State()
	err := s.eventRepo.Append(ctx, models.SimulationEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  s.now().UTC(),
		Type:        eventType,
		Description: description,
		Metadata: map[string]any{
			"ticks":        st.Ticks,
			"record_count": st.RecordCount,
		},
	})
	if err != nil {
		return fmt.Errorf("log %s event: %w", eventType, err)
	}
	return nil
}
