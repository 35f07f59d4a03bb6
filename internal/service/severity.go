package service

import "process_control_sim/internal/models"

// Threshold table shared by the generator's binary status and the severity
// classifier. The two rules overlap but are not identical: status ignores the
// emergency tier, severity ranks pressure below temperature and vibration.
const (
	EmergencyTempF  = 125.0
	EmergencyVibMMS = 3.2
	CriticalTempF   = 110.0
	CriticalVibMMS  = 2.5
	LowPressurePSI  = 1700.0
)

// Classify ranks a record. First match wins:
// EMERGENCY, then CRITICAL, then WARNING (low pressure), else OK.
func Classify(r models.TelemetryRecord) models.Severity {
	switch {
	case r.TemperatureF > EmergencyTempF || r.VibrationMMS > EmergencyVibMMS:
		return models.SeverityEmergency
	case r.TemperatureF > CriticalTempF || r.VibrationMMS > CriticalVibMMS:
		return models.SeverityCritical
	case r.HydraulicPSI < LowPressurePSI:
		return models.SeverityWarning
	default:
		return models.SeverityOK
	}
}

// StatusFor is the binary status stamped at generation time.
func StatusFor(tempF, vibMMS, pressurePSI float64) string {
	if tempF > CriticalTempF || vibMMS > CriticalVibMMS || pressurePSI < LowPressurePSI {
		return models.StatusAlert
	}
	return models.StatusOK
}

// classifyAll recomputes Severity for every record in place.
func classifyAll(records []models.TelemetryRecord) {
	for i := range records {
		records[i].Severity = Classify(records[i])
	}
}
