package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"process_control_sim/internal/models"
	"process_control_sim/internal/repository"

	"github.com/google/uuid"
)

// EquipmentIDs are the simulated production line units.
var EquipmentIDs = []string{"JD-LATHE-001", "JD-MILL-003", "JD-PAINT-002", "JD-ASSEMBLY-005"}

// Sampling ranges, inclusive.
const (
	MinTemperatureF = 60.0
	MaxTemperatureF = 130.0
	MinVibrationMMS = 0.1
	MaxVibrationMMS = 3.5
	MinHydraulicPSI = 1500.0
	MaxHydraulicPSI = 3000.0
	MinThroughput   = 80
	MaxThroughput   = 250
)

// ErrInvalidBatchSize is returned for a negative batch size.
var ErrInvalidBatchSize = errors.New("batch size must be >= 0")

// GeneratorService produces synthetic telemetry.
type GeneratorService struct {
	mu  sync.Mutex // guards rng
	rng *rand.Rand
	now func() time.Time

	snapshots repository.SnapshotRepo
	events    repository.EventRepo // optional
}

// NewGeneratorService builds a generator over src. events may be nil.
func NewGeneratorService(src rand.Source, snapshots repository.SnapshotRepo, events repository.EventRepo) *GeneratorService {
	return &GeneratorService{
		rng:       rand.New(src),
		now:       time.Now,
		snapshots: snapshots,
		events:    events,
	}
}

// NewSource returns a PCG source; seed 0 seeds from the clock.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// GenerateOne samples a single record and stamps its binary status.
func (g *GeneratorService) GenerateOne() models.TelemetryRecord {
	g.mu.Lock()
	equipment := EquipmentIDs[g.rng.IntN(len(EquipmentIDs))]
	temp := g.uniform(MinTemperatureF, MaxTemperatureF)
	vib := g.uniform(MinVibrationMMS, MaxVibrationMMS)
	psi := g.uniform(MinHydraulicPSI, MaxHydraulicPSI)
	throughput := MinThroughput + g.rng.IntN(MaxThroughput-MinThroughput+1)
	g.mu.Unlock()

	return models.TelemetryRecord{
		Timestamp:         g.now().Format(models.TimestampLayout),
		Equipment:         equipment,
		TemperatureF:      temp,
		VibrationMMS:      vib,
		HydraulicPSI:      psi,
		ThroughputPerHour: throughput,
		Status:            StatusFor(temp, vib, psi),
	}
}

// GenerateBatch produces n records in generation order and overwrites the
// snapshot file with them. A snapshot write failure is returned as is; the
// records are not usable by the caller in that case.
func (g *GeneratorService) GenerateBatch(ctx context.Context, n int) ([]models.TelemetryRecord, error) {
	if n < 0 {
		return nil, ErrInvalidBatchSize
	}
	batch := make([]models.TelemetryRecord, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, g.GenerateOne())
	}

	if err := g.snapshots.Save(ctx, batch); err != nil {
		return nil, fmt.Errorf("save initial batch: %w", err)
	}

	if g.events != nil {
		if err := g.events.Append(ctx, models.SimulationEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  g.now().UTC(),
			Type:        models.EventBootstrap,
			Description: fmt.Sprintf("Generated initial batch of %d records", n),
			Metadata:    map[string]any{"count": n},
		}); err != nil {
			return nil, fmt.Errorf("log initial batch: %w", err)
		}
	}
	return batch, nil
}

// uniform samples [lo, hi] rounded to two decimals. Caller holds g.mu.
func (g *GeneratorService) uniform(lo, hi float64) float64 {
	return round2(lo + g.rng.Float64()*(hi-lo))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
