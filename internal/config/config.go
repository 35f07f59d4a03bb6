// Package config loads the simulator configuration from configs/config.yml
// and PCS_* environment variables using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PCS_SIMULATION_TICK.
const EnvPrefix = "PCS"

// Config is the full application configuration.
type Config struct {
	Port       string           `mapstructure:"port"`
	Log        LogConfig        `mapstructure:"log"`
	DB         DBConfig         `mapstructure:"db"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Display    DisplayConfig    `mapstructure:"display"`
	Export     ExportConfig     `mapstructure:"export"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // console | json
}

// DBConfig points at the SQLite event store. The default in-memory DSN keeps
// the event log for the lifetime of the process only.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
}

type SimulationConfig struct {
	Tick         time.Duration `mapstructure:"tick"`
	InitialBatch int           `mapstructure:"initial_batch"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed uint64 `mapstructure:"seed"`
}

type DisplayConfig struct {
	Limit          int           `mapstructure:"limit"`
	StreamInterval time.Duration `mapstructure:"stream_interval"`
}

type ExportConfig struct {
	SnapshotPath string `mapstructure:"snapshot_path"`
	// LegacyHeader writes the mis-encoded "Temperature (Â°F)" header into the
	// startup snapshot, byte for byte with the historical file.
	LegacyHeader bool   `mapstructure:"legacy_header"`
	DownloadName string `mapstructure:"download_name"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

var (
	errInvalidTick      = errors.New("simulation.tick must be > 0")
	errInvalidBatch     = errors.New("simulation.initial_batch must be >= 1")
	errInvalidLimit     = errors.New("display.limit must be >= 1")
	errInvalidRateLimit = errors.New("rate_limit.rps and rate_limit.burst must be > 0")
	errEmptySnapshot    = errors.New("export.snapshot_path must not be empty")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", ":memory:")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("simulation.tick", 2*time.Second)
	v.SetDefault("simulation.initial_batch", 25)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("display.limit", 30)
	v.SetDefault("display.stream_interval", 2*time.Second)
	v.SetDefault("export.snapshot_path", "data/simulation_logs.csv")
	v.SetDefault("export.legacy_header", false)
	v.SetDefault("export.download_name", "simulation_logs.csv")
	v.SetDefault("rate_limit.rps", 10)
	v.SetDefault("rate_limit.burst", 20)
}

// Load reads config.yml from dir (if present), applies env overrides and
// validates the result. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config in %q: %w", dir, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the knobs the simulator cannot run without.
func (c *Config) Validate() error {
	switch {
	case c.Simulation.Tick <= 0:
		return errInvalidTick
	case c.Simulation.InitialBatch < 1:
		return errInvalidBatch
	case c.Display.Limit < 1:
		return errInvalidLimit
	case c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0:
		return errInvalidRateLimit
	case strings.TrimSpace(c.Export.SnapshotPath) == "":
		return errEmptySnapshot
	}
	if c.Display.StreamInterval <= 0 {
		c.Display.StreamInterval = c.Simulation.Tick
	}
	return nil
}
