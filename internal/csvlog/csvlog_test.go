package csvlog

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"process_control_sim/internal/models"
)

func sampleRecords() []models.TelemetryRecord {
	return []models.TelemetryRecord{
		{
			Timestamp: "2025-08-01 10:00:02", Equipment: "JD-MILL-003",
			TemperatureF: 126.5, VibrationMMS: 1.2, HydraulicPSI: 2100.25, ThroughputPerHour: 180,
			Status: models.StatusAlert, Severity: models.SeverityEmergency,
		},
		{
			Timestamp: "2025-08-01 10:00:00", Equipment: "JD-LATHE-001",
			TemperatureF: 72, VibrationMMS: 0.9, HydraulicPSI: 2400, ThroughputPerHour: 95,
			Status: models.StatusOK, Severity: models.SeverityOK,
		},
	}
}

func TestHeader(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "snapshot",
			opts: Options{},
			want: []string{"Timestamp", "Equipment", "Temperature (°F)", "Vibration (mm/s)", "Hydraulic Pressure (psi)", "Throughput (units/hr)", "Status"},
		},
		{
			name: "download",
			opts: Options{WithSeverity: true},
			want: []string{"Timestamp", "Equipment", "Temperature (°F)", "Vibration (mm/s)", "Hydraulic Pressure (psi)", "Throughput (units/hr)", "Status", "Severity"},
		},
		{
			name: "legacy snapshot",
			opts: Options{LegacyHeader: true},
			want: []string{"Timestamp", "Equipment", "Temperature (Â°F)", "Vibration (mm/s)", "Hydraulic Pressure (psi)", "Throughput (units/hr)", "Status"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Header(tc.opts); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Header() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncode_OneRowPerRecordPlusHeader(t *testing.T) {
	var buf bytes.Buffer
	recs := sampleRecords()
	if err := Encode(&buf, recs, Options{WithSeverity: true}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != len(recs)+1 {
		t.Fatalf("rows: got %d, want %d", len(rows), len(recs)+1)
	}
	if rows[0][len(rows[0])-1] != ColSeverity {
		t.Fatalf("last header column: got %q", rows[0][len(rows[0])-1])
	}
	want := []string{"2025-08-01 10:00:02", "JD-MILL-003", "126.5", "1.2", "2100.25", "180", "ALERT", "EMERGENCY"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("row 1: got %q, want %q", rows[1], want)
	}
	if rows[2][2] != "72" || rows[2][4] != "2400" {
		t.Fatalf("whole floats should print without decimals, got %q", rows[2])
	}
}

func TestEncode_EmptyCollectionWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, Options{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 1 || len(rows[0]) != 7 {
		t.Fatalf("expected a single 7-column header row, got %q", rows)
	}
}
