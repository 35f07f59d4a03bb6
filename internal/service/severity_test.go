package service

import (
	"testing"

	"process_control_sim/internal/models"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		temp float64
		vib  float64
		psi  float64
		want models.Severity
	}{
		{name: "nominal", temp: 100, vib: 1.0, psi: 2000, want: models.SeverityOK},
		{name: "temperature just over emergency", temp: 125.01, vib: 1.0, psi: 2000, want: models.SeverityEmergency},
		{name: "temperature at emergency boundary is critical", temp: 125, vib: 1.0, psi: 2000, want: models.SeverityCritical},
		{name: "vibration over emergency", temp: 80, vib: 3.21, psi: 2000, want: models.SeverityEmergency},
		{name: "temperature just over critical", temp: 110.01, vib: 0, psi: 2000, want: models.SeverityCritical},
		{name: "temperature at critical boundary is ok", temp: 110, vib: 1.0, psi: 2000, want: models.SeverityOK},
		{name: "vibration over critical", temp: 80, vib: 2.51, psi: 2000, want: models.SeverityCritical},
		{name: "low pressure", temp: 100, vib: 1.0, psi: 1699.99, want: models.SeverityWarning},
		{name: "pressure at boundary is ok", temp: 100, vib: 1.0, psi: 1700, want: models.SeverityOK},
		{name: "emergency outranks low pressure", temp: 126, vib: 1.0, psi: 1500, want: models.SeverityEmergency},
		{name: "critical outranks low pressure", temp: 80, vib: 2.6, psi: 1500, want: models.SeverityCritical},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := models.TelemetryRecord{TemperatureF: tc.temp, VibrationMMS: tc.vib, HydraulicPSI: tc.psi}
			if got := Classify(r); got != tc.want {
				t.Fatalf("Classify(%v/%v/%v) = %s; want %s", tc.temp, tc.vib, tc.psi, got, tc.want)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		temp, vib, psi float64
		want           string
	}{
		{100, 1.0, 2000, models.StatusOK},
		{110, 2.5, 1700, models.StatusOK},
		{110.01, 1.0, 2000, models.StatusAlert},
		{100, 2.51, 2000, models.StatusAlert},
		{100, 1.0, 1699.99, models.StatusAlert},
	}
	for _, tc := range tests {
		if got := StatusFor(tc.temp, tc.vib, tc.psi); got != tc.want {
			t.Errorf("StatusFor(%v, %v, %v) = %s; want %s", tc.temp, tc.vib, tc.psi, got, tc.want)
		}
	}
}

func TestClassifyAll_Overwrites(t *testing.T) {
	t.Parallel()

	records := []models.TelemetryRecord{
		{TemperatureF: 130, VibrationMMS: 1, HydraulicPSI: 2000, Severity: models.SeverityOK},
		{TemperatureF: 90, VibrationMMS: 1, HydraulicPSI: 2000, Severity: models.SeverityEmergency},
	}
	classifyAll(records)
	if records[0].Severity != models.SeverityEmergency || records[1].Severity != models.SeverityOK {
		t.Fatalf("unexpected severities: %s, %s", records[0].Severity, records[1].Severity)
	}
}
