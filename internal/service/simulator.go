package service

import (
	"context"
	"time"

	"process_control_sim/internal/logger"
	"process_control_sim/internal/metrics"
	"process_control_sim/internal/models"
	"process_control_sim/internal/repository"

	"github.com/google/uuid"
)

// RecordSource yields one synthetic record per call.
type RecordSource interface {
	GenerateOne() models.TelemetryRecord
}

// SimulatorService appends a record to the session on every tick while the
// session is running.
type SimulatorService struct {
	session   *Session
	source    RecordSource
	eventRepo repository.EventRepo
	log       *logger.Logger
}

func NewSimulatorService(session *Session, source RecordSource, eventRepo repository.EventRepo, log *logger.Logger) *SimulatorService {
	if log == nil {
		log = logger.Nop()
	}
	return &SimulatorService{
		session:   session,
		source:    source,
		eventRepo: eventRepo,
		log:       log,
	}
}

// Run ticks at the given interval until ctx is canceled. The running flag is
// read once per tick, so a stop takes effect within one interval.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if !s.session.Running() {
				continue
			}
			s.step(ctx)
		}
	}
}

// step is one tick: generate, prepend, reclassify, record.
func (s *SimulatorService) step(ctx context.Context) models.TelemetryRecord {
	rec := s.session.Prepend(s.source.GenerateOne())

	metrics.TicksTotal.Inc()
	metrics.RecordsGenerated.WithLabelValues(rec.Equipment).Inc()
	metrics.SeverityTotal.WithLabelValues(string(rec.Severity), rec.Equipment).Inc()
	metrics.CollectionSize.Set(float64(s.session.Len()))
	metrics.LatestReading.WithLabelValues(rec.Equipment, "temperature_f").Set(rec.TemperatureF)
	metrics.LatestReading.WithLabelValues(rec.Equipment, "vibration_mm_s").Set(rec.VibrationMMS)
	metrics.LatestReading.WithLabelValues(rec.Equipment, "hydraulic_pressure_psi").Set(rec.HydraulicPSI)
	metrics.LatestReading.WithLabelValues(rec.Equipment, "throughput_units_hr").Set(float64(rec.ThroughputPerHour))

	if rec.Severity != models.SeverityOK {
		s.logAlert(ctx, rec)
	}
	return rec
}

// logAlert appends an ALERT event. Failures are logged and the loop goes on.
func (s *SimulatorService) logAlert(ctx context.Context, rec models.TelemetryRecord) {
	err := s.eventRepo.Append(ctx, models.SimulationEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventAlert,
		Description: string(rec.Severity) + " on " + rec.Equipment,
		Metadata: map[string]any{
			"timestamp":              rec.Timestamp,
			"equipment":              rec.Equipment,
			"severity":               rec.Severity,
			"temperature_f":          rec.TemperatureF,
			"vibration_mm_s":         rec.VibrationMMS,
			"hydraulic_pressure_psi": rec.HydraulicPSI,
		},
	})
	if err != nil {
		s.log.Errorw("simulator_alert_event_failed", "err", err, "equipment", rec.Equipment, "severity", rec.Severity)
	}
}
