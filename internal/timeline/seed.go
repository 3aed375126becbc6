package timeline

import (
	"fmt"
	"time"

	"timelinedeck/internal/jsonutil"
)

// dateLayout is the date format used in seed files.
const dateLayout = "2006-01-02"

// Seed is the on-disk JSON shape of a board fixture.
//
//	{
//	  "month": "2024-10",
//	  "rows":  [{"id": "row-1", "label": "Frontend Team", "tasks": ["task-1"]}],
//	  "tasks": [{"id": "task-1", "title": "...", "start": "2024-10-01", "end": "2024-10-06", ...}]
//	}
type Seed struct {
	Month string     `json:"month,omitempty"` // YYYY-MM, optional
	Rows  []Row      `json:"rows"`
	Tasks []SeedTask `json:"tasks"`
}

// SeedTask is a task with plain calendar dates.
type SeedTask struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Progress     int      `json:"progress"`
	Assignee     string   `json:"assignee"`
	RowID        string   `json:"rowId"`
	Dependencies []string `json:"dependencies,omitempty"`
	Color        string   `json:"color,omitempty"`
	IsMilestone  bool     `json:"isMilestone,omitempty"`
}

// LoadSeed reads a seed file and returns the validated board and, when the
// seed names one, its initial month.
func LoadSeed(path string) (*Board, *Month, error) {
	seed, err := jsonutil.UnmarshalFile[Seed](path)
	if err != nil {
		return nil, nil, err
	}
	return seed.Board()
}

// Board converts the seed into a validated board.
func (s Seed) Board() (*Board, *Month, error) {
	tasks := make([]Task, 0, len(s.Tasks))
	for _, st := range s.Tasks {
		start, err := time.ParseInLocation(dateLayout, st.Start, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("task %s start: %w", st.ID, err)
		}
		end, err := time.ParseInLocation(dateLayout, st.End, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("task %s end: %w", st.ID, err)
		}
		tasks = append(tasks, Task{
			ID:           st.ID,
			Title:        st.Title,
			StartDate:    start,
			EndDate:      end,
			Progress:     clampProgress(st.Progress),
			Assignee:     st.Assignee,
			RowID:        st.RowID,
			Dependencies: st.Dependencies,
			Color:        st.Color,
			IsMilestone:  st.IsMilestone,
		})
	}
	b := NewBoard(s.Rows, tasks)
	if err := b.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid seed: %w", err)
	}

	if s.Month == "" {
		return b, nil, nil
	}
	t, err := time.ParseInLocation("2006-01", s.Month, time.Local)
	if err != nil {
		return nil, nil, fmt.Errorf("seed month %q: %w", s.Month, err)
	}
	m := MonthOf(t)
	return b, &m, nil
}
