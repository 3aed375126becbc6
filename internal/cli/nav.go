package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"timelinedeck/internal/jsonutil"
	"timelinedeck/internal/keynav"
)

// navKeyAliases lets shells pass keys that are awkward to quote.
var navKeyAliases = map[string]string{
	"Space": keynav.KeySpace,
}

// navStep is the state after one replayed key.
type navStep struct {
	Key       string `json:"key"`
	Focused   string `json:"focused"`
	HasFocus  bool   `json:"hasFocus"`
	Prevented bool   `json:"prevented"`
	Selected  string `json:"selected,omitempty"`
}

func newNavCmd(app *App) *cobra.Command {
	var (
		items    []string
		focus    string
		noSelect bool
	)
	cmd := &cobra.Command{
		Use:   "nav KEY...",
		Short: "Replay navigation keys over a list of ids and print each step",
		Long: `Replay navigation keys over a list of ids without a terminal.

Keys are ArrowUp, ArrowDown, ArrowLeft, ArrowRight, Home, End, Enter and
Space. Any other name is dispatched unchanged and ignored by the controller.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.closeLog()
			if len(items) == 0 {
				log.Debug("nav with no items; every key is ignored")
			}
			var focused *string
			if cmd.Flags().Changed("focus") {
				f := focus
				focused = &f
			}
			steps := replayNav(items, focused, !noSelect, args)

			out := cmd.OutOrStdout()
			if app.Format == FormatJSON {
				data, err := jsonutil.MarshalIndent(steps)
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = out.Write(data)
				return err
			}
			for _, s := range steps {
				name := s.Key
				if name == keynav.KeySpace {
					name = "Space"
				}
				f := "-"
				if s.HasFocus {
					f = s.Focused
				}
				line := fmt.Sprintf("%-10s focus=%s prevented=%t", name, f, s.Prevented)
				if s.Selected != "" {
					line += " selected=" + s.Selected
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&items, "items", nil, "Comma-separated ids in navigation order")
	cmd.Flags().StringVar(&focus, "focus", "", "Initially focused id (default: no focus)")
	cmd.Flags().BoolVar(&noSelect, "no-select", false, "Replay without a selection handler")
	return cmd
}

// replayNav dispatches keys one at a time through a controller attached to a
// fresh bus, re-syncing after each key the way the editor does.
func replayNav(items []string, focused *string, selectable bool, keys []string) []navStep {
	bus := keynav.NewBus()
	nav := keynav.NewController[string](bus)
	defer nav.Close()

	var selected string
	opts := keynav.Options[string]{
		Items:      items,
		Focused:    focused,
		SetFocused: func(id string) { focused = &id },
	}
	if selectable {
		opts.OnSelect = func(id string) { selected = id }
	}

	steps := make([]navStep, 0, len(keys))
	for _, k := range keys {
		if alias, ok := navKeyAliases[k]; ok {
			k = alias
		}
		opts.Focused = focused
		nav.Sync(opts)
		selected = ""

		ev := bus.Dispatch(k)
		step := navStep{Key: k, Prevented: ev.DefaultPrevented(), Selected: selected}
		if focused != nil {
			step.HasFocus = true
			step.Focused = *focused
		}
		steps = append(steps, step)
	}
	return steps
}
