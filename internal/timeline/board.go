package timeline

import (
	"fmt"
	"time"
)

// Defaults for tasks created with AddTask.
const (
	DefaultRowID    = "row-1"
	DefaultAssignee = "Frontend Team"
	DefaultColor    = "#6366f1"
	newTaskStartDay = 10
	newTaskEndDay   = 15
)

// Board holds ordered rows and the tasks they reference.
// It is not safe for concurrent use; the editor mutates it from its update loop.
type Board struct {
	Rows  []Row
	Tasks map[string]*Task
}

// NewBoard creates a board from rows and tasks. Tasks are copied.
func NewBoard(rows []Row, tasks []Task) *Board {
	b := &Board{
		Rows:  make([]Row, len(rows)),
		Tasks: make(map[string]*Task, len(tasks)),
	}
	for i, r := range rows {
		r.Tasks = append([]string(nil), r.Tasks...)
		b.Rows[i] = r
	}
	for i := range tasks {
		t := tasks[i]
		t.Dependencies = append([]string(nil), t.Dependencies...)
		b.Tasks[t.ID] = &t
	}
	return b
}

// OrderedTaskIDs returns task ids in navigation order: rows top to bottom,
// then tasks in row order. Ids without a task entry are skipped.
func (b *Board) OrderedTaskIDs() []string {
	var ids []string
	for _, r := range b.Rows {
		for _, id := range r.Tasks {
			if _, ok := b.Tasks[id]; ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Task returns a copy of the task with the given id.
func (b *Board) Task(id string) (Task, bool) {
	t, ok := b.Tasks[id]
	if !ok {
		return Task{}, false
	}
	return *t, true
}

// Row returns a pointer to the row with the given id, or nil.
func (b *Board) Row(id string) *Row {
	for i := range b.Rows {
		if b.Rows[i].ID == id {
			return &b.Rows[i]
		}
	}
	return nil
}

// AddTask creates an untitled task in the default row, scheduled on days
// 10-15 of the visible month, and returns it.
func (b *Board) AddTask(m Month) (Task, error) {
	if len(b.Rows) == 0 {
		return Task{}, ErrNoRows
	}
	row := b.Row(DefaultRowID)
	if row == nil {
		row = &b.Rows[0]
	}

	n := len(b.Tasks) + 1
	id := fmt.Sprintf("task-%d", n)
	for b.Tasks[id] != nil {
		n++
		id = fmt.Sprintf("task-%d", n)
	}

	t := &Task{
		ID:           id,
		StartDate:    m.Day(newTaskStartDay),
		EndDate:      m.Day(newTaskEndDay),
		Assignee:     DefaultAssignee,
		RowID:        row.ID,
		Dependencies: []string{},
		Color:        DefaultColor,
	}
	b.Tasks[id] = t
	row.Tasks = append(row.Tasks, id)
	return *t, nil
}

// UpdateTask applies p to the task with the given id.
func (b *Board) UpdateTask(id string, p Patch) (Task, error) {
	t, ok := b.Tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("update %s: %w", id, ErrTaskNotFound)
	}
	p.apply(t)
	return *t, nil
}

// MoveTask reschedules a task to start at newStart, keeping its duration.
func (b *Board) MoveTask(id string, newStart time.Time) (Task, error) {
	t, ok := b.Tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("move %s: %w", id, ErrTaskNotFound)
	}
	d := t.Duration()
	t.StartDate = newStart
	t.EndDate = newStart.Add(d)
	return *t, nil
}

// ShiftTask moves a task by whole days, keeping its duration.
func (b *Board) ShiftTask(id string, days int) (Task, error) {
	t, ok := b.Tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("shift %s: %w", id, ErrTaskNotFound)
	}
	return b.MoveTask(id, t.StartDate.AddDate(0, 0, days))
}

// Validate checks that rows and tasks reference each other consistently.
func (b *Board) Validate() error {
	for _, r := range b.Rows {
		for _, id := range r.Tasks {
			if _, ok := b.Tasks[id]; !ok {
				return fmt.Errorf("row %s references %s: %w", r.ID, id, ErrTaskNotFound)
			}
		}
	}
	for id, t := range b.Tasks {
		if b.Row(t.RowID) == nil {
			return fmt.Errorf("task %s references %s: %w", id, t.RowID, ErrRowNotFound)
		}
		if t.StartDate.After(t.EndDate) {
			return fmt.Errorf("task %s: %w", id, ErrInvalidRange)
		}
	}
	return nil
}
