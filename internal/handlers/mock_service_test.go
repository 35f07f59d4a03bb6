package handlers

import (
	"context"
	"io"
	"testing"
	"time"

	"process_control_sim/internal/dashboard"
	"process_control_sim/internal/models"
	"process_control_sim/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockSimulation struct {
	state       models.SimulationState
	stateErr    error
	startErr    error
	stopErr     error
	startCalled int
	stopCalled  int
}

func (m *mockSimulation) Start(ctx context.Context) error {
	m.startCalled++
	if m.startErr == nil {
		m.state.IsRunning = true
	}
	return m.startErr
}
func (m *mockSimulation) Stop(ctx context.Context) error {
	m.stopCalled++
	if m.stopErr == nil {
		m.state.IsRunning = false
	}
	return m.stopErr
}
func (m *mockSimulation) State(ctx context.Context) (models.SimulationState, error) {
	return m.state, m.stateErr
}

type mockMonitoring struct {
	snap      models.DashboardSnapshot
	err       error
	lastLimit int
}

func (m *mockMonitoring) Snapshot(ctx context.Context, limit int) (models.DashboardSnapshot, error) {
	m.lastLimit = limit
	return m.snap, m.err
}

type mockEventLog struct {
	resp     []models.SimulationEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.SimulationEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockExport struct {
	body string
	rows int
	err  error
}

func (m *mockExport) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	_, err := io.WriteString(w, m.body)
	return m.rows, err
}

// ---- Shared Test Helpers ----

func newTestRenderer(t *testing.T) *dashboard.Renderer {
	t.Helper()
	view, err := dashboard.NewRenderer(defaultDisplayLimit, dashboard.Links{
		StartURL:     StartPath,
		StopURL:      StopPath,
		StreamPath:   StreamPath,
		DownloadURL:  ExportPath,
		DownloadName: defaultDownloadName,
	})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return view
}

func newTestHandler(t *testing.T, s *service.Service, opts Options) *Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, newTestRenderer(t), nil, opts)
	t.Cleanup(h.Close)
	return h
}

func newTestRouter(t *testing.T, s *service.Service) *gin.Engine {
	return newTestHandler(t, s, Options{}).InitRoutes()
}

func sampleRecord(sev models.Severity) models.TelemetryRecord {
	status := models.StatusOK
	if sev != models.SeverityOK {
		status = models.StatusAlert
	}
	return models.TelemetryRecord{
		Timestamp:         "2025-01-01 10:00:00",
		Equipment:         "JD-MILL-003",
		TemperatureF:      111.5,
		VibrationMMS:      1.2,
		HydraulicPSI:      2200,
		ThroughputPerHour: 150,
		Status:            status,
		Severity:          sev,
	}
}
