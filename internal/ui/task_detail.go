package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"timelinedeck/internal/timeline"
)

const dateFormat = "Mon Jan 2, 2006"

// TaskDetailView is the read-only popup opened by selecting a task.
type TaskDetailView struct {
	Task     timeline.Task
	RowLabel string
	theme    Theme
	viewport viewport.Model
}

// Ensure TaskDetailView implements View.
var _ View = (*TaskDetailView)(nil)

// NewTaskDetailView creates a detail popup sized for a width x height terminal.
func NewTaskDetailView(task timeline.Task, rowLabel string, th Theme, width, height int) *TaskDetailView {
	v := &TaskDetailView{Task: task, RowLabel: rowLabel, theme: th}
	v.resize(width, height)
	return v
}

// Markdown returns the task as a markdown document.
func (v *TaskDetailView) Markdown() string {
	t := v.Task
	title := t.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	deps := "none"
	if len(t.Dependencies) > 0 {
		deps = strings.Join(t.Dependencies, ", ")
	}
	milestone := "no"
	if t.IsMilestone {
		milestone = "yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| ID | `%s` |\n", t.ID)
	fmt.Fprintf(&b, "| Row | %s |\n", v.RowLabel)
	fmt.Fprintf(&b, "| Start | %s |\n", t.StartDate.Format(dateFormat))
	fmt.Fprintf(&b, "| End | %s |\n", t.EndDate.Format(dateFormat))
	fmt.Fprintf(&b, "| Progress | %d%% |\n", t.Progress)
	fmt.Fprintf(&b, "| Assignee | %s |\n", t.Assignee)
	fmt.Fprintf(&b, "| Milestone | %s |\n", milestone)
	fmt.Fprintf(&b, "| Depends on | %s |\n", deps)
	return b.String()
}

func (v *TaskDetailView) resize(width, height int) {
	w, h := overlaySize(width, height)
	v.viewport = viewport.New(w, h)
	v.viewport.SetContent(renderMarkdown(v.Markdown(), w, v.theme.Dark))
}

// Init implements View.
func (v *TaskDetailView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *TaskDetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		v.resize(ws.Width, ws.Height)
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *TaskDetailView) View() string {
	return v.theme.Box.Render(v.viewport.View() + "\n" + v.theme.Hint.Render("↑/↓ scroll  esc close"))
}

// overlaySize returns the inner size of a popup for a terminal of width x height.
// Zero dimensions (before the first WindowSizeMsg) fall back to 80x24.
func overlaySize(width, height int) (int, int) {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	w := width*2/3 - 6
	h := height*2/3 - 5
	if w < 30 {
		w = 30
	}
	if h < 6 {
		h = 6
	}
	return w, h
}
