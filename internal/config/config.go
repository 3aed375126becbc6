// Package config resolves runtime settings from the environment.
// Command-line flags override these values in internal/cli.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Theme modes.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	// ErrInvalidTheme is returned for theme modes other than auto, light and dark.
	ErrInvalidTheme = errors.New("theme must be auto, light or dark")
	// ErrInvalidMonth is returned for months outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// Config holds settings for the editor and its ambient services.
type Config struct {
	LogFile  string
	LogLevel string
	Theme    string
	// Year and Month select the initial visible month. Zero means "from the board".
	Year  int
	Month int
	Seed  string

	OTLPEndpoint string
	ServiceName  string
}

// Load reads TIMELINE_* variables (plus the standard OTEL_* ones) with defaults.
// Numeric variables that fail to parse are ignored with a warning.
func Load() Config {
	cfg := Config{
		LogFile:      envOr("TIMELINE_LOG_FILE", ""),
		LogLevel:     envOr("TIMELINE_LOG_LEVEL", "info"),
		Theme:        envOr("TIMELINE_THEME", ThemeAuto),
		Year:         envInt("TIMELINE_YEAR"),
		Month:        envInt("TIMELINE_MONTH"),
		Seed:         envOr("TIMELINE_SEED", ""),
		OTLPEndpoint: envOr("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  envOr("OTEL_SERVICE_NAME", "timelinedeck"),
	}
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		cfg.LogLevel = "debug"
	}
	return cfg
}

// Validate rejects values the editor cannot start with.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("theme %q: %w", c.Theme, ErrInvalidTheme)
	}
	if c.Month != 0 && (c.Month < 1 || c.Month > 12) {
		return fmt.Errorf("month %d: %w", c.Month, ErrInvalidMonth)
	}
	if c.Month != 0 && c.Year == 0 {
		return errors.New("month requires a year")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// TracingEnabled reports whether spans should be exported.
func (c Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.WithField("var", key).Warnf("ignoring non-numeric value %q", v)
		return 0
	}
	return n
}
