package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"timelinedeck/internal/timeline"
	"timelinedeck/internal/ui/textutil"
)

const (
	labelWidth     = 28
	progressWidth  = 5
	barGlyph       = "█"
	trackGlyph     = "·"
	milestoneGlyph = "◆"
)

// TimelineView renders the board for one month. It holds no editor state of
// its own; AppModel refreshes Board, Month, Focused and Theme before drawing.
type TimelineView struct {
	Board   *timeline.Board
	Month   timeline.Month
	Focused *string
	Theme   Theme

	width int
}

// Ensure TimelineView implements View.
var _ View = (*TimelineView)(nil)

// NewTimelineView creates a view over board.
func NewTimelineView(board *timeline.Board, month timeline.Month, th Theme) *TimelineView {
	return &TimelineView{Board: board, Month: month, Theme: th}
}

// Init implements View.
func (v *TimelineView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *TimelineView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = ws.Width
	}
	return v, nil
}

// View implements View.
func (v *TimelineView) View() string {
	th := v.Theme
	var b strings.Builder

	b.WriteString(th.Title.Render("Project Timeline") + th.Subtitle.Render(" / Dashboard") + "\n")
	b.WriteString(th.Subtitle.Render("Add, edit & manage tasks visually") + "\n\n")
	b.WriteString(th.Muted.Render("[ ◀") + th.Month.Render(v.Month.Label()) + th.Muted.Render("▶ ]") + "\n\n")

	if v.Board == nil || len(v.Board.Rows) == 0 {
		b.WriteString(th.Empty.Render("No rows on this board."))
		return b.String()
	}

	b.WriteString(strings.Repeat(" ", labelWidth) + th.Muted.Render(v.dayRuler()) + "\n")
	for _, row := range v.Board.Rows {
		b.WriteString(th.Row.Render(row.Label) + "\n")
		if len(row.Tasks) == 0 {
			b.WriteString("  " + th.Empty.Render("no tasks") + "\n")
			continue
		}
		for _, id := range row.Tasks {
			task, ok := v.Board.Task(id)
			if !ok {
				continue
			}
			b.WriteString(v.taskLine(task) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// dayRuler returns the last digit of each day number, one column per day.
func (v *TimelineView) dayRuler() string {
	var b strings.Builder
	for d := 1; d <= v.Month.Days(); d++ {
		b.WriteString(fmt.Sprintf("%d", d%10))
	}
	return b.String()
}

func (v *TimelineView) taskLine(task timeline.Task) string {
	th := v.Theme
	focused := v.Focused != nil && *v.Focused == task.ID

	title := task.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	marker := "  "
	labelStyle := th.Task
	if focused {
		marker = "▸ "
		labelStyle = th.Focused
	}
	label := labelStyle.Render(textutil.PadRightVisual(marker+title, labelWidth-1)) + " "

	line := label + v.bar(task) + " " + th.Muted.Render(fmt.Sprintf("%*d%%", progressWidth-1, task.Progress))
	if v.width > 0 {
		line = textutil.TruncateStyled(line, v.width)
	}
	return line
}

// bar draws one cell per day of the month: the task's days in its color,
// other days as a dim track. Milestones draw a single glyph on their start day.
func (v *TimelineView) bar(task timeline.Task) string {
	days := v.Month.Days()
	first, last, ok := v.Month.Span(task)
	if !ok {
		return v.Theme.Track.Render(strings.Repeat(trackGlyph, days))
	}
	if task.IsMilestone {
		last = first
	}
	glyph := barGlyph
	if task.IsMilestone {
		glyph = milestoneGlyph
	}

	var b strings.Builder
	if first > 1 {
		b.WriteString(v.Theme.Track.Render(strings.Repeat(trackGlyph, first-1)))
	}
	b.WriteString(v.Theme.Bar(task.Color).Render(strings.Repeat(glyph, last-first+1)))
	if last < days {
		b.WriteString(v.Theme.Track.Render(strings.Repeat(trackGlyph, days-last)))
	}
	return b.String()
}
