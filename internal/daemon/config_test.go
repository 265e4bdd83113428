package daemon

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 7312 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 7312)
	}
	if cfg.Timer.Interval != "1s" {
		t.Errorf("Timer.Interval = %q, want %q", cfg.Timer.Interval, "1s")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestConfig_TickInterval(t *testing.T) {
	tests := []struct {
		interval string
		want     time.Duration
	}{
		{"1s", time.Second},
		{"2s", 2 * time.Second},
		{"500ms", time.Second},      // sub-second rounds up to the floor
		{"1500ms", 2 * time.Second}, // non-whole rounds to nearest second
		{"", time.Second},           // missing falls back
		{"garbage", time.Second},    // unparseable falls back
		{"-3s", time.Second},        // non-positive falls back
	}
	for _, tt := range tests {
		t.Run(tt.interval, func(t *testing.T) {
			cfg := Config{Timer: TimerConfig{Interval: tt.interval}}
			if got := cfg.TickInterval(); got != tt.want {
				t.Errorf("TickInterval(%q) = %v, want %v", tt.interval, got, tt.want)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PACER_API_HOST", "0.0.0.0")
	t.Setenv("PACER_API_PORT", "9999")
	t.Setenv("PACER_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	applyEnvOverrides(&cfg)

	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host = %q, want overridden", cfg.API.Host)
	}
	if cfg.API.Port != 9999 {
		t.Errorf("API.Port = %d, want 9999", cfg.API.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("PACER_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 4242
	cfg.Telemetry.Prometheus = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if got.API.Port != 4242 {
		t.Errorf("API.Port = %d, want 4242", got.API.Port)
	}
	if !got.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus = false, want true")
	}
}
