package service

import (
	"testing"
	"time"

	"process_control_sim/internal/models"
)

func rec(equipment string, temp, vib, psi float64) models.TelemetryRecord {
	return models.TelemetryRecord{
		Timestamp:         "2025-01-01 00:00:00",
		Equipment:         equipment,
		TemperatureF:      temp,
		VibrationMMS:      vib,
		HydraulicPSI:      psi,
		ThroughputPerHour: 100,
		Status:            StatusFor(temp, vib, psi),
	}
}

func newTestSession() *Session {
	s := NewSession()
	s.now = func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSession_SeedClassifiesAndKeepsOrder(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	in := []models.TelemetryRecord{rec("A", 130, 1, 2000), rec("B", 90, 1, 2000)}
	s.Seed(in)

	got := s.Records()
	if len(got) != 2 || got[0].Equipment != "A" || got[1].Equipment != "B" {
		t.Fatalf("order not preserved: %+v", got)
	}
	if got[0].Severity != models.SeverityEmergency || got[1].Severity != models.SeverityOK {
		t.Fatalf("not classified: %s, %s", got[0].Severity, got[1].Severity)
	}
	if in[0].Severity != "" {
		t.Fatalf("Seed must not mutate the caller's slice")
	}
	if st := s.State(); st.Ticks != 0 || st.RecordCount != 2 {
		t.Fatalf("seed should not count as a tick: %+v", st)
	}
}

func TestSession_PrependNewestFirst(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	s.Seed([]models.TelemetryRecord{rec("OLD", 90, 1, 2000)})

	got := s.Prepend(rec("NEW", 112, 1, 2000))
	if got.Severity != models.SeverityCritical {
		t.Fatalf("returned record not classified: %s", got.Severity)
	}

	all := s.Records()
	if len(all) != 2 || all[0].Equipment != "NEW" || all[1].Equipment != "OLD" {
		t.Fatalf("expected NEW at index 0: %+v", all)
	}
	for _, r := range all {
		if r.Severity == "" {
			t.Fatalf("record %s left unclassified", r.Equipment)
		}
	}
	if st := s.State(); st.Ticks != 1 || st.RecordCount != 2 {
		t.Fatalf("state: %+v", st)
	}
}

func TestSession_RecordsReturnsCopy(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	s.Seed([]models.TelemetryRecord{rec("A", 90, 1, 2000)})
	out := s.Records()
	out[0].Equipment = "MUTATED"
	if s.Records()[0].Equipment != "A" {
		t.Fatalf("caller mutation leaked into the session")
	}
}

func TestSession_Head(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	for i := 0; i < 40; i++ {
		s.Prepend(rec("X", 90, 1, 2000))
	}

	tests := []struct {
		n    int
		want int
	}{
		{n: 30, want: 30},
		{n: 100, want: 40},
		{n: 0, want: 0},
		{n: -5, want: 0},
	}
	for _, tc := range tests {
		if got := len(s.Head(tc.n)); got != tc.want {
			t.Errorf("Head(%d): got %d; want %d", tc.n, got, tc.want)
		}
	}
}

func TestSession_SetRunning(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	if s.Running() {
		t.Fatalf("new session must be stopped")
	}
	if !s.SetRunning(true) {
		t.Fatalf("first start should change state")
	}
	if s.SetRunning(true) {
		t.Fatalf("second start should be a no-op")
	}
	st := s.State()
	if !st.IsRunning || st.StartedAt.IsZero() {
		t.Fatalf("state after start: %+v", st)
	}
	if !s.SetRunning(false) || s.Running() {
		t.Fatalf("stop should change state")
	}
}

func TestSession_View(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	s.Seed([]models.TelemetryRecord{
		rec("A", 90, 1, 2000),   // OK
		rec("B", 90, 1, 1600),   // WARNING
		rec("C", 115, 1, 2000),  // CRITICAL
		rec("D", 128, 1, 2000),  // EMERGENCY
		rec("E", 95, 1.2, 2500), // OK
	})

	v := s.View(2)
	if len(v.Records) != 2 || v.Records[0].Equipment != "A" {
		t.Fatalf("records: %+v", v.Records)
	}
	if v.Total != 5 {
		t.Fatalf("total: got %d", v.Total)
	}
	if len(v.Alerts) != 3 {
		t.Fatalf("alerts: got %d, want 3", len(v.Alerts))
	}
	if v.Latest == nil || v.Latest.Equipment != "A" {
		t.Fatalf("latest: %+v", v.Latest)
	}
	want := map[models.Severity]int{
		models.SeverityOK:        2,
		models.SeverityWarning:   1,
		models.SeverityCritical:  1,
		models.SeverityEmergency: 1,
	}
	for sev, n := range want {
		if v.SeverityCounts[sev] != n {
			t.Errorf("count %s: got %d; want %d", sev, v.SeverityCounts[sev], n)
		}
	}
}

func TestSession_ViewEmpty(t *testing.T) {
	t.Parallel()

	v := newTestSession().View(30)
	if v.Latest != nil || v.Total != 0 || len(v.Records) != 0 {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.Alerts == nil {
		t.Fatalf("alerts should be an empty slice, not nil")
	}
	if len(v.SeverityCounts) != len(models.Severities) {
		t.Fatalf("every tier should be present: %v", v.SeverityCounts)
	}
}
