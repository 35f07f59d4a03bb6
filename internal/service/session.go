package service

import (
	"sync"
	"time"

	"process_control_sim/internal/models"
)

// Session owns the record collection and the running flag. The simulator
// goroutine is the only writer; HTTP handlers read copies.
type Session struct {
	mu        sync.RWMutex
	records   []models.TelemetryRecord // newest first
	running   bool
	ticks     uint64
	startedAt time.Time
	updatedAt time.Time
	now       func() time.Time
}

// NewSession returns an empty, stopped session.
func NewSession() *Session {
	return &Session{now: time.Now}
}

// Seed replaces the collection with records (kept in the given order) and
// classifies them.
func (s *Session) Seed(records []models.TelemetryRecord) {
	cp := append([]models.TelemetryRecord(nil), records...)
	classifyAll(cp)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = cp
	s.updatedAt = s.now().UTC()
}

// Prepend puts r at index 0, reclassifies the whole collection and returns
// the classified copy of r.
func (s *Session) Prepend(r models.TelemetryRecord) models.TelemetryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.TelemetryRecord, 0, len(s.records)+1)
	next = append(next, r)
	next = append(next, s.records...)
	classifyAll(next)

	s.records = next
	s.ticks++
	s.updatedAt = s.now().UTC()
	return next[0]
}

// SetRunning flips the flag and reports whether it changed.
func (s *Session) SetRunning(running bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running == running {
		return false
	}
	s.running = running
	now := s.now().UTC()
	if running {
		s.startedAt = now
	}
	s.updatedAt = now
	return true
}

func (s *Session) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Records returns a copy of the whole collection, newest first.
func (s *Session) Records() []models.TelemetryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TelemetryRecord(nil), s.records...)
}

// Head returns a copy of at most n newest records.
func (s *Session) Head(n int) []models.TelemetryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return head(s.records, n)
}

// State returns the control read model.
func (s *Session) State() models.SimulationState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.SimulationState{
		IsRunning:   s.running,
		Ticks:       s.ticks,
		RecordCount: len(s.records),
		StartedAt:   s.startedAt,
		UpdatedAt:   s.updatedAt,
	}
}

// View builds a consistent dashboard frame under one lock: the newest limit
// records, every non-OK record and per-tier counts.
func (s *Session) View(limit int) models.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.DashboardSnapshot{
		Running:        s.running,
		Records:        head(s.records, limit),
		Alerts:         make([]models.TelemetryRecord, 0),
		Total:          len(s.records),
		SeverityCounts: make(map[models.Severity]int, len(models.Severities)),
	}
	for _, sev := range models.Severities {
		snap.SeverityCounts[sev] = 0
	}
	for _, r := range s.records {
		snap.SeverityCounts[r.Severity]++
		if r.Severity != models.SeverityOK {
			snap.Alerts = append(snap.Alerts, r)
		}
	}
	if len(s.records) > 0 {
		latest := s.records[0]
		snap.Latest = &latest
	}
	return snap
}

func head(records []models.TelemetryRecord, n int) []models.TelemetryRecord {
	if n < 0 {
		n = 0
	}
	if n > len(records) {
		n = len(records)
	}
	return append(make([]models.TelemetryRecord, 0, n), records[:n]...)
}
