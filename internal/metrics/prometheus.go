package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "process_sim"

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RecordsGenerated counts synthetic telemetry records by equipment.
	RecordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_generated_total",
			Help:      "Total number of generated telemetry records",
		},
		[]string{"equipment"},
	)

	// SeverityTotal counts classified new records per tier.
	SeverityTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_by_severity_total",
			Help:      "Generated records by severity tier",
		},
		[]string{"severity", "equipment"},
	)

	TicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_ticks_total",
			Help:      "Total number of simulation ticks that produced a record",
		},
	)

	SimulationRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "simulation_running",
			Help:      "1 while the simulation is running, 0 when stopped",
		},
	)

	CollectionSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_records",
			Help:      "Number of records held in the session collection",
		},
	)

	// LatestReading exposes the newest record's measurements.
	LatestReading = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "latest_reading",
			Help:      "Most recent measurement per equipment and metric",
		},
		[]string{"equipment", "metric"},
	)

	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_streams",
			Help:      "Number of open dashboard WebSocket streams",
		},
	)
)

// SetRunning mirrors the session flag into the gauge.
func SetRunning(running bool) {
	if running {
		SimulationRunning.Set(1)
		return
	}
	SimulationRunning.Set(0)
}
