// Package timeline holds the project-timeline data model: rows of tasks laid
// out over dates, and the board operations the editor performs on them.
package timeline

import (
	"errors"
	"time"
)

var (
	// ErrTaskNotFound is returned when an operation names an unknown task id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrRowNotFound is returned when a task references an unknown row id.
	ErrRowNotFound = errors.New("row not found")
	// ErrNoRows is returned when a task is added to a board without rows.
	ErrNoRows = errors.New("board has no rows")
	// ErrInvalidRange is returned when a task starts after it ends.
	ErrInvalidRange = errors.New("task starts after it ends")
)

// Task is one bar on the timeline.
type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Progress     int       `json:"progress"` // 0-100
	Assignee     string    `json:"assignee"`
	RowID        string    `json:"rowId"`
	Dependencies []string  `json:"dependencies"`
	Color        string    `json:"color"`
	IsMilestone  bool      `json:"isMilestone"`
}

// Duration returns the time between start and end.
func (t Task) Duration() time.Duration {
	return t.EndDate.Sub(t.StartDate)
}

// Row is a swimlane holding an ordered list of task ids.
type Row struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Tasks []string `json:"tasks"`
}

// Patch carries optional field updates for a task. Nil fields are left alone.
type Patch struct {
	Title       *string
	StartDate   *time.Time
	EndDate     *time.Time
	Progress    *int
	Assignee    *string
	Color       *string
	IsMilestone *bool
}

func (p Patch) apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = *p.EndDate
	}
	if p.Progress != nil {
		t.Progress = clampProgress(*p.Progress)
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.IsMilestone != nil {
		t.IsMilestone = *p.IsMilestone
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
