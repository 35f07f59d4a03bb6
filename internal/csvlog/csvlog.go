// Package csvlog encodes telemetry records in the simulation log CSV layout.
package csvlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"process_control_sim/internal/models"
)

// Column names, in file order.
const (
	ColTimestamp   = "Timestamp"
	ColEquipment   = "Equipment"
	ColTemperature = "Temperature (°F)"
	ColVibration   = "Vibration (mm/s)"
	ColPressure    = "Hydraulic Pressure (psi)"
	ColThroughput  = "Throughput (units/hr)"
	ColStatus      = "Status"
	ColSeverity    = "Severity"

	// LegacyColTemperature is the UTF-8 degree sign read back as Latin-1, as
	// found in snapshot files written by the earlier generator.
	LegacyColTemperature = "Temperature (Â°F)"
)

// Options selects the optional parts of the layout.
type Options struct {
	// WithSeverity appends the derived Severity column.
	WithSeverity bool
	// LegacyHeader swaps in LegacyColTemperature.
	LegacyHeader bool
}

// Header returns the header row for opts.
func Header(opts Options) []string {
	temp := ColTemperature
	if opts.LegacyHeader {
		temp = LegacyColTemperature
	}
	h := []string{ColTimestamp, ColEquipment, temp, ColVibration, ColPressure, ColThroughput, ColStatus}
	if opts.WithSeverity {
		h = append(h, ColSeverity)
	}
	return h
}

// Row converts a record into its CSV fields.
func Row(r models.TelemetryRecord, opts Options) []string {
	row := []string{
		r.Timestamp,
		r.Equipment,
		formatFloat(r.TemperatureF),
		formatFloat(r.VibrationMMS),
		formatFloat(r.HydraulicPSI),
		strconv.Itoa(r.ThroughputPerHour),
		r.Status,
	}
	if opts.WithSeverity {
		row = append(row, string(r.Severity))
	}
	return row
}

// Encode writes the header followed by one row per record.
func Encode(w io.Writer, records []models.TelemetryRecord, opts Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(opts)); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(Row(r, opts)); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// formatFloat uses the shortest representation that round-trips, so 72.5
// stays "72.5" rather than "72.50".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
