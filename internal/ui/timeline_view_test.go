package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"timelinedeck/internal/timeline"
	"timelinedeck/internal/ui/textutil"
)

func TestTimelineView_RendersRowsAndTasks(t *testing.T) {
	v := NewTimelineView(timeline.DemoBoard(), timeline.DemoMonth, NewTheme(true))
	out := v.View()

	for _, want := range []string{
		"Project Timeline",
		"October 2024",
		"Frontend Team",
		"Backend Team",
		"Design Team",
		"UI Component Development",
		"API Integration",
		"90%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "▸") {
		t.Error("no task should be marked without focus")
	}
}

func TestTimelineView_FocusMarker(t *testing.T) {
	v := NewTimelineView(timeline.DemoBoard(), timeline.DemoMonth, NewTheme(true))
	id := "task-3"
	v.Focused = &id

	out := v.View()
	if strings.Count(out, "▸") != 1 {
		t.Fatalf("expected exactly one focus marker:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "▸") && !strings.Contains(line, "API Integration") {
			t.Errorf("marker on wrong line: %q", line)
		}
	}
}

func TestTimelineView_BarCoversTaskDays(t *testing.T) {
	board := timeline.NewBoard(
		[]timeline.Row{{ID: "r", Label: "Row", Tasks: []string{"t"}}},
		[]timeline.Task{{
			ID: "t", Title: "Short", RowID: "r",
			StartDate: timeline.DemoMonth.Day(3),
			EndDate:   timeline.DemoMonth.Day(5),
		}},
	)
	v := NewTimelineView(board, timeline.DemoMonth, NewTheme(true))
	task, _ := board.Task("t")
	bar := v.bar(task)

	if got := strings.Count(bar, barGlyph); got != 3 {
		t.Errorf("bar glyphs = %d, want 3: %q", got, bar)
	}
	if got := textutil.VisualWidthStyled(bar); got != 31 {
		t.Errorf("bar width = %d, want 31", got)
	}
}

func TestTimelineView_TaskOutsideMonthIsTrackOnly(t *testing.T) {
	board := timeline.DemoBoard()
	nov := timeline.Month{Year: 2024, Month: time.November}
	v := NewTimelineView(board, nov, NewTheme(false))
	task, _ := board.Task("task-1")

	bar := v.bar(task)
	if strings.Contains(bar, barGlyph) {
		t.Errorf("task outside month should not draw a bar: %q", bar)
	}
	if got := textutil.VisualWidthStyled(bar); got != 30 {
		t.Errorf("bar width = %d, want 30", got)
	}
}

func TestTimelineView_UntitledAndEmpty(t *testing.T) {
	board := timeline.NewBoard(
		[]timeline.Row{
			{ID: "r1", Label: "Busy", Tasks: []string{"t"}},
			{ID: "r2", Label: "Idle"},
		},
		[]timeline.Task{{ID: "t", RowID: "r1", StartDate: timeline.DemoMonth.Day(1), EndDate: timeline.DemoMonth.Day(1)}},
	)
	out := NewTimelineView(board, timeline.DemoMonth, NewTheme(true)).View()
	if !strings.Contains(out, "(untitled)") {
		t.Errorf("expected untitled placeholder:\n%s", out)
	}
	if !strings.Contains(out, "no tasks") {
		t.Errorf("expected empty row placeholder:\n%s", out)
	}

	empty := NewTimelineView(timeline.NewBoard(nil, nil), timeline.DemoMonth, NewTheme(true)).View()
	if !strings.Contains(empty, "No rows") {
		t.Errorf("expected empty board message:\n%s", empty)
	}
}

func TestTimelineView_TruncatesToWidth(t *testing.T) {
	v := NewTimelineView(timeline.DemoBoard(), timeline.DemoMonth, NewTheme(true))
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	for _, line := range strings.Split(v.View(), "\n") {
		if !strings.Contains(line, "%") {
			continue
		}
		if w := textutil.VisualWidthStyled(line); w > 40 {
			t.Errorf("task line width %d exceeds 40: %q", w, line)
		}
	}
}
