package config

import (
	"errors"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"TIMELINE_LOG_FILE", "TIMELINE_LOG_LEVEL", "TIMELINE_THEME", "TIMELINE_YEAR", "TIMELINE_MONTH", "TIMELINE_SEED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "DEBUG"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.Theme != ThemeAuto {
		t.Errorf("Theme = %q, want auto", cfg.Theme)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.ServiceName != "timelinedeck" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.TracingEnabled() {
		t.Error("tracing should be disabled without endpoint")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TIMELINE_THEME", "dark")
	t.Setenv("TIMELINE_YEAR", "2025")
	t.Setenv("TIMELINE_MONTH", "3")
	t.Setenv("TIMELINE_SEED", "board.json")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	t.Setenv("DEBUG", "true")

	cfg := Load()
	if cfg.Theme != ThemeDark || cfg.Year != 2025 || cfg.Month != 3 || cfg.Seed != "board.json" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("DEBUG=true should force debug, got %q", cfg.LogLevel)
	}
	if !cfg.TracingEnabled() {
		t.Error("tracing should be enabled with endpoint")
	}
}

func TestLoad_BadNumberIgnored(t *testing.T) {
	t.Setenv("TIMELINE_MONTH", "oct")
	if got := Load().Month; got != 0 {
		t.Errorf("Month = %d, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Theme: ThemeAuto, LogLevel: "info"}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		fails   bool
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "bad theme", mutate: func(c *Config) { c.Theme = "solarized" }, wantErr: ErrInvalidTheme, fails: true},
		{name: "bad month", mutate: func(c *Config) { c.Year, c.Month = 2024, 13 }, wantErr: ErrInvalidMonth, fails: true},
		{name: "month without year", mutate: func(c *Config) { c.Month = 4 }, fails: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, fails: true},
		{name: "year only", mutate: func(c *Config) { c.Year = 2030 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.fails {
				t.Fatalf("Validate() = %v, fails %v", err, tt.fails)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
