// Package cli wires configuration, logging and tracing around the timeline
// editor and exposes its scriptable subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"timelinedeck/internal/config"
	"timelinedeck/internal/logging"
	"timelinedeck/internal/telemetry"
	"timelinedeck/internal/timeline"
	"timelinedeck/internal/ui"
)

// Output formats for scriptable commands.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidFormat is returned for --format values other than text and json.
var ErrInvalidFormat = errors.New("format must be text or json")

// App carries settings shared by all commands.
type App struct {
	Config config.Config
	Format string

	logCloser io.Closer
}

// NewRootCmd builds the timelinedeck command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{Config: config.Load()})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "timelinedeck",
		Short:        "Keyboard-driven project timeline editor",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the editor on the demo board
  timelinedeck

  # Start on a seed file, two months later, logging to a file
  timelinedeck --seed board.json --year 2024 --month 12 --log-file /tmp/timeline.log

  # List tasks in navigation order
  timelinedeck tasks --format json

  # Replay navigation keys without a terminal
  timelinedeck nav --items a,b,c --focus b ArrowDown End Enter
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.closeLog()
			return runTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := app.Config.Validate(); err != nil {
			return err
		}
		switch app.Format {
		case FormatText, FormatJSON:
		default:
			return fmt.Errorf("format %q: %w", app.Format, ErrInvalidFormat)
		}
		closer, err := logging.Setup(app.Config.LogFile, app.Config.LogLevel)
		if err != nil {
			return err
		}
		app.logCloser = closer
		log.WithField("command", cmd.CommandPath()).Debug("starting")
		return nil
	}

	c := &app.Config
	pf := cmd.PersistentFlags()
	pf.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file (default: discard)")
	pf.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug|info|warn|error)")
	pf.StringVar(&c.Theme, "theme", c.Theme, "Color theme (auto|light|dark)")
	pf.IntVar(&c.Year, "year", c.Year, "Initial year (default: from the board)")
	pf.IntVar(&c.Month, "month", c.Month, "Initial month 1-12 (requires --year)")
	pf.StringVar(&c.Seed, "seed", c.Seed, "Load the board from a JSON seed file instead of the demo board")
	pf.StringVar(&c.OTLPEndpoint, "otlp-endpoint", c.OTLPEndpoint, "OTLP/HTTP endpoint for traces (default: tracing off)")
	pf.StringVar(&c.ServiceName, "service-name", c.ServiceName, "Service name reported with traces")
	pf.StringVar(&app.Format, "format", FormatText, "Output format for scriptable commands (text|json)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newNavCmd(app))

	return cmd
}

func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	board, month, err := loadBoard(app.Config)
	if err != nil {
		return err
	}

	tp, err := newTracer(ctx, app.Config)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.WithError(err).Warn("trace shutdown failed")
		}
	}()

	ui.ApplyColorProfile()
	_, err = ui.Run(ctx, ui.Options{
		Board:  board,
		Month:  month,
		Dark:   ui.ResolveDark(app.Config.Theme),
		Tracer: tp.Tracer(),
	}, ui.RunOptions{AltScreen: true})
	return err
}

// closeLog releases the log file opened in PersistentPreRunE. Every RunE
// defers it because cobra skips post-run hooks when RunE fails.
func (app *App) closeLog() {
	if app.logCloser == nil {
		return
	}
	c := app.logCloser
	app.logCloser = nil
	log.SetOutput(io.Discard)
	_ = c.Close()
}

func newTracer(ctx context.Context, cfg config.Config) (*telemetry.Provider, error) {
	if !cfg.TracingEnabled() {
		log.Debug("tracing off: no OTLP endpoint")
		return telemetry.New(ctx, "", cfg.ServiceName)
	}
	log.WithFields(log.Fields{"endpoint": cfg.OTLPEndpoint, "service": cfg.ServiceName}).Info("exporting traces")
	return telemetry.New(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
}

// loadBoard returns the seed board (or the demo board) and the initial month.
// --year and --month override the month named by the seed.
func loadBoard(cfg config.Config) (*timeline.Board, timeline.Month, error) {
	board := timeline.DemoBoard()
	month := timeline.DemoMonth
	if cfg.Seed != "" {
		b, m, err := timeline.LoadSeed(cfg.Seed)
		if err != nil {
			return nil, timeline.Month{}, fmt.Errorf("load seed %s: %w", cfg.Seed, err)
		}
		board = b
		if m != nil {
			month = *m
		}
		log.WithFields(log.Fields{"seed": cfg.Seed, "tasks": len(b.Tasks)}).Info("seed loaded")
	}

	if cfg.Year != 0 {
		mm := int(month.Month)
		if cfg.Month != 0 {
			mm = cfg.Month
		}
		m, err := timeline.NewMonth(cfg.Year, mm)
		if err != nil {
			return nil, timeline.Month{}, err
		}
		month = m
	}
	return board, month, nil
}
