// Package daemon manages the pacer daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all daemon configuration.
type Config struct {
	Timer     TimerConfig     `toml:"timer"`
	API       APIConfig       `toml:"api"`
	Storage   StorageConfig   `toml:"storage"`
	Logging   LoggingConfig   `toml:"logging"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// TimerConfig controls the clock driver.
type TimerConfig struct {
	Interval string `toml:"interval"` // tick cadence, e.g. "1s"
}

// APIConfig controls the local HTTP API server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig controls where task state lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level    string `toml:"level"`
	Encoding string `toml:"encoding"` // "console" or "json"
}

// TelemetryConfig controls the optional /metrics endpoint.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Timer: TimerConfig{
			Interval: "1s",
		},
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 7312,
		},
		Storage: StorageConfig{
			Dir: pacerHome(),
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
	}
}

// LoadConfig reads config from ~/.pacer/config.toml, falling back to
// defaults. A .env file in the working directory and PACER_* environment
// variables override individual fields.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // no .env file is fine

	cfg := DefaultConfig()
	path := filepath.Join(pacerHome(), "config.toml")

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// SaveConfig writes the config to ~/.pacer/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(pacerHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// TickInterval parses the configured cadence, falling back to one second.
// Elapsed time is accounted in whole seconds, so the cadence is rounded to
// the nearest second with a one-second floor — the clock driver and the
// store's per-tick accrual must agree on the same value.
func (c Config) TickInterval() time.Duration {
	d, err := time.ParseDuration(c.Timer.Interval)
	if err != nil || d <= 0 {
		return time.Second
	}
	d = d.Round(time.Second)
	if d < time.Second {
		return time.Second
	}
	return d
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PACER_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("PACER_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.API.Port = port
		}
	}
	if v := os.Getenv("PACER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// pacerHome returns the pacer data directory.
func pacerHome() string {
	if env := os.Getenv("PACER_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pacer")
}
