package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
)

// RunOptions control how the editor program is attached to a terminal.
type RunOptions struct {
	Input     io.Reader // nil = stdin
	Output    io.Writer // nil = stdout
	AltScreen bool
}

// Run starts the editor and blocks until the user quits or ctx is cancelled.
// It returns the final model so callers can inspect the board and focus.
func Run(ctx context.Context, opts Options, ro RunOptions) (*AppModel, error) {
	app := NewAppModel(opts)
	defer app.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if ro.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if ro.Input != nil {
		progOpts = append(progOpts, tea.WithInput(ro.Input))
	}
	if ro.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(ro.Output))
	}

	log.WithFields(log.Fields{
		"month": app.Month.Label(),
		"tasks": len(app.Board.Tasks),
	}).Info("editor starting")

	p := tea.NewProgram(app.AsTeaModel(), progOpts...)
	if _, err := p.Run(); err != nil {
		return app, fmt.Errorf("run editor: %w", err)
	}
	log.WithField("focused", app.FocusedID()).Info("editor exited")
	return app, nil
}
