package models

// Binary status stamped on a record at generation time.
const (
	StatusOK    = "OK"
	StatusAlert = "ALERT"
)

// Severity is the urgency tier derived from a record's measurements.
type Severity string

const (
	SeverityOK        Severity = "OK"
	SeverityWarning   Severity = "WARNING"
	SeverityCritical  Severity = "CRITICAL"
	SeverityEmergency Severity = "EMERGENCY"
)

// Severities lists every tier from least to most urgent.
var Severities = []Severity{SeverityOK, SeverityWarning, SeverityCritical, SeverityEmergency}

// TimestampLayout is the local-time format stamped on generated records.
const TimestampLayout = "2006-01-02 15:04:05"

// TelemetryRecord is one simulated reading for one equipment unit.
type TelemetryRecord struct {
	Timestamp         string   `json:"timestamp"`
	Equipment         string   `json:"equipment"`
	TemperatureF      float64  `json:"temperature_f"`          // °F
	VibrationMMS      float64  `json:"vibration_mm_s"`         // mm/s
	HydraulicPSI      float64  `json:"hydraulic_pressure_psi"` // psi
	ThroughputPerHour int      `json:"throughput_units_hr"`    // units/hr
	Status            string   `json:"status"`                 // OK | ALERT
	Severity          Severity `json:"severity,omitempty"`     // set by the session on every mutation
}
