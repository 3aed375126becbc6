package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"timelinedeck/internal/keynav"
	"timelinedeck/internal/telemetry"
	"timelinedeck/internal/timeline"
)

// Options configure a new AppModel.
type Options struct {
	Board  *timeline.Board
	Month  timeline.Month
	Dark   bool
	Tracer oteltrace.Tracer // nil = no-op
}

// AppModel is the root model of the timeline editor.
//
// Focus lives here. Navigation keys are dispatched on KeyBus, where Nav holds
// the only subscription; Nav is re-synced after every update so it always sees
// the current task order and focus.
type AppModel struct {
	Board     *timeline.Board
	Month     timeline.Month
	Focused   *string
	Theme     Theme
	Timeline  *TimelineView
	Overlays  OverlayStack
	Status    string
	StatusErr bool // Status reports a failure

	KeyBus     *keynav.Bus
	Nav        *keynav.Controller[string]
	KeyHandler *KeyHandler
	Tracer     oteltrace.Tracer

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model and attaches keyboard navigation.
func NewAppModel(opts Options) *AppModel {
	board := opts.Board
	if board == nil {
		board = timeline.NewBoard(nil, nil)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	th := NewTheme(opts.Dark)
	bus := keynav.NewBus()

	a := &AppModel{
		Board:      board,
		Month:      opts.Month,
		Theme:      th,
		Timeline:   NewTimelineView(board, opts.Month, th),
		KeyBus:     bus,
		Nav:        keynav.NewController[string](bus),
		KeyHandler: NewKeyHandler(newRegistry()),
		Tracer:     tracer,
	}
	a.syncNav()
	return a
}

// newRegistry binds the editor commands. Navigation keys are not bound here.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("a", msg(AddTaskMsg{}), "add task")
	reg.BindWithDesc("t", msg(ToggleThemeMsg{}), "theme")
	reg.BindWithDesc("?", msg(ShowHelpMsg{}), "help")
	reg.BindWithDesc("[", msg(ChangeMonthMsg{Delta: -1}), "prev month")
	reg.BindWithDesc("]", msg(ChangeMonthMsg{Delta: 1}), "next month")
	reg.BindWithDesc("shift+left", msg(ShiftTaskMsg{Days: -1}), "move task earlier")
	reg.BindWithDesc("shift+right", msg(ShiftTaskMsg{Days: 1}), "move task later")
	reg.BindWithDesc("g p", msg(ChangeMonthMsg{Delta: -1}), "prev month")
	reg.BindWithDesc("g n", msg(ChangeMonthMsg{Delta: 1}), "next month")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Close releases the navigation subscription.
func (a *AppModel) Close() {
	a.Nav.Close()
}

// FocusedID returns the focused task id, or "" when nothing is focused.
func (a *AppModel) FocusedID() string {
	if a.Focused == nil {
		return ""
	}
	return *a.Focused
}

// syncNav re-attaches the navigation controller with the current inputs.
func (a *AppModel) syncNav() {
	a.Nav.Sync(keynav.Options[string]{
		Items:      a.Board.OrderedTaskIDs(),
		Focused:    a.Focused,
		SetFocused: a.setFocused,
		OnSelect:   a.selectTask,
	})
}

func (a *AppModel) setFocused(id string) {
	a.Focused = &id
	log.WithField("task", id).Debug("focus moved")
}

func (a *AppModel) selectTask(id string) {
	task, ok := a.Board.Task(id)
	if !ok {
		return
	}
	log.WithField("task", id).Debug("task selected")
	a.openDetail(task)
}

func (a *AppModel) openDetail(task timeline.Task) {
	rowLabel := task.RowID
	if row := a.Board.Row(task.RowID); row != nil {
		rowLabel = row.Label
	}
	a.Overlays.Push(Overlay{
		View:    NewTaskDetailView(task, rowLabel, a.Theme, a.width, a.height),
		Dismiss: []string{"esc"},
	})
}

// span starts a span for a board mutation; call the returned func to end it.
func (a *AppModel) span(name string, attrs map[string]string) func() {
	_, span := a.Tracer.Start(context.Background(), name)
	span.SetAttributes(telemetry.Attrs(attrs)...)
	return func() { span.End() }
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Timeline.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.syncNav()
	a.refreshTimeline()
	return a, cmd
}

func (a *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Timeline.Update(msg)
		return a.Overlays.Broadcast(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case DismissOverlayMsg:
		a.Overlays.Pop()
	case AddTaskMsg:
		a.addTask()
	case ShiftTaskMsg:
		a.shiftFocused(msg.Days)
	case ChangeMonthMsg:
		a.changeMonth(msg.Delta)
	case ToggleThemeMsg:
		a.Theme = NewTheme(!a.Theme.Dark)
		log.WithField("dark", a.Theme.Dark).Debug("theme toggled")
	case ShowHelpMsg:
		a.Overlays.Push(Overlay{
			View:    NewHelpView(a.KeyHandler.Registry, a.Theme, a.width, a.height),
			Dismiss: []string{"esc", "?"},
		})
	}
	return nil
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}

	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(s) {
			return func() tea.Msg { return DismissOverlayMsg{} }
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}

	ev := a.KeyBus.Dispatch(keynav.KeyName(msg))
	if ev.DefaultPrevented() {
		a.setStatus("")
		log.WithFields(log.Fields{"key": ev.Key, "focused": a.FocusedID()}).Debug("navigation key handled")
	}
	return nil
}

func (a *AppModel) addTask() {
	task, err := a.Board.AddTask(a.Month)
	if err != nil {
		a.setError(fmt.Sprintf("add task: %v", err))
		log.WithError(err).Warn("add task failed")
		return
	}
	defer a.span("board.add_task", map[string]string{"task_id": task.ID, "row_id": task.RowID})()
	a.setFocused(task.ID)
	a.openDetail(task)
	a.setStatus("Added " + task.ID)
}

func (a *AppModel) shiftFocused(days int) {
	if a.Focused == nil {
		a.setError("No task focused")
		return
	}
	id := *a.Focused
	task, err := a.Board.ShiftTask(id, days)
	if err != nil {
		a.setError(fmt.Sprintf("move task: %v", err))
		log.WithError(err).Warn("move task failed")
		return
	}
	defer a.span("board.move_task", map[string]string{"task_id": id, "days": fmt.Sprintf("%d", days)})()
	a.setStatus(fmt.Sprintf("%s starts %s", id, task.StartDate.Format(dateFormat)))
}

func (a *AppModel) changeMonth(delta int) {
	for ; delta > 0; delta-- {
		a.Month = a.Month.Next()
	}
	for ; delta < 0; delta++ {
		a.Month = a.Month.Prev()
	}
	defer a.span("timeline.change_month", map[string]string{"month": a.Month.Label()})()
	log.WithField("month", a.Month.Label()).Debug("month changed")
}

func (a *AppModel) setStatus(s string) {
	a.Status, a.StatusErr = s, false
}

func (a *AppModel) setError(s string) {
	a.Status, a.StatusErr = s, true
}

func (a *AppModel) refreshTimeline() {
	a.Timeline.Board = a.Board
	a.Timeline.Month = a.Month
	a.Timeline.Focused = a.Focused
	a.Timeline.Theme = a.Theme
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		popup := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, popup)
		}
		return popup
	}

	base := a.Timeline.View()
	if hint := RenderKeybindHelp(a.KeyHandler, a.Theme); hint != "" {
		return base + "\n" + hint
	}
	footer := RenderHintBar(a.KeyHandler.Registry, a.Theme, a.width)
	if a.Status != "" {
		style := a.Theme.Muted
		if a.StatusErr {
			style = a.Theme.Error
		}
		footer = style.Render(a.Status) + "\n" + footer
	}
	return base + "\n\n" + footer
}
