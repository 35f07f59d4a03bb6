package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.Simulation.Tick != 2*time.Second {
		t.Errorf("tick: got %v", cfg.Simulation.Tick)
	}
	if cfg.Simulation.InitialBatch != 25 {
		t.Errorf("initial_batch: got %d", cfg.Simulation.InitialBatch)
	}
	if cfg.Display.Limit != 30 {
		t.Errorf("display.limit: got %d", cfg.Display.Limit)
	}
	if cfg.Export.SnapshotPath != "data/simulation_logs.csv" || cfg.Export.DownloadName != "simulation_logs.csv" {
		t.Errorf("export: got %+v", cfg.Export)
	}
	if cfg.Export.LegacyHeader {
		t.Errorf("legacy header should default to false")
	}
	if cfg.DB.Path != ":memory:" {
		t.Errorf("db.path: got %q", cfg.DB.Path)
	}
}

func TestLoad_FileValues(t *testing.T) {
	dir := writeConfig(t, `
port: "9000"
simulation:
  tick: 500ms
  initial_batch: 5
display:
  limit: 10
  stream_interval: 1s
export:
  snapshot_path: out/logs.csv
  legacy_header: true
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.Simulation.Tick != 500*time.Millisecond || cfg.Simulation.InitialBatch != 5 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Display.Limit != 10 || cfg.Display.StreamInterval != time.Second {
		t.Fatalf("unexpected display config: %+v", cfg.Display)
	}
	if cfg.Export.SnapshotPath != "out/logs.csv" || !cfg.Export.LegacyHeader {
		t.Fatalf("unexpected export config: %+v", cfg.Export)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "port: \"9000\"\n")
	t.Setenv("PCS_PORT", "7070")
	t.Setenv("PCS_SIMULATION_TICK", "3s")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("port: got %q, want 7070", cfg.Port)
	}
	if cfg.Simulation.Tick != 3*time.Second {
		t.Fatalf("tick: got %v, want 3s", cfg.Simulation.Tick)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := writeConfig(t, "port: [unterminated\n")
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Simulation: SimulationConfig{Tick: time.Second, InitialBatch: 1},
			Display:    DisplayConfig{Limit: 30},
			Export:     ExportConfig{SnapshotPath: "x.csv"},
			RateLimit:  RateLimitConfig{RPS: 1, Burst: 1},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "ok", mutate: func(*Config) {}, want: nil},
		{name: "zero tick", mutate: func(c *Config) { c.Simulation.Tick = 0 }, want: errInvalidTick},
		{name: "empty batch", mutate: func(c *Config) { c.Simulation.InitialBatch = 0 }, want: errInvalidBatch},
		{name: "zero limit", mutate: func(c *Config) { c.Display.Limit = 0 }, want: errInvalidLimit},
		{name: "zero rps", mutate: func(c *Config) { c.RateLimit.RPS = 0 }, want: errInvalidRateLimit},
		{name: "blank snapshot path", mutate: func(c *Config) { c.Export.SnapshotPath = "  " }, want: errEmptySnapshot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidate_StreamIntervalFallsBackToTick(t *testing.T) {
	cfg := Config{
		Simulation: SimulationConfig{Tick: 4 * time.Second, InitialBatch: 1},
		Display:    DisplayConfig{Limit: 30},
		Export:     ExportConfig{SnapshotPath: "x.csv"},
		RateLimit:  RateLimitConfig{RPS: 1, Burst: 1},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Display.StreamInterval != 4*time.Second {
		t.Fatalf("stream interval: got %v, want 4s", cfg.Display.StreamInterval)
	}
}
