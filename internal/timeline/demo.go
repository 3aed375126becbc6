package timeline

import "time"

// DemoMonth is the month the demo board is scheduled in.
var DemoMonth = Month{Year: 2024, Month: time.October}

// DemoBoard returns the three-team sample board shown when no seed is given.
func DemoBoard() *Board {
	day := func(d int) time.Time { return DemoMonth.Day(d) }
	rows := []Row{
		{ID: "row-1", Label: "Frontend Team", Tasks: []string{"task-1", "task-2"}},
		{ID: "row-2", Label: "Backend Team", Tasks: []string{"task-3"}},
		{ID: "row-3", Label: "Design Team", Tasks: []string{"task-4"}},
	}
	tasks := []Task{
		{ID: "task-1", Title: "UI Component Development", StartDate: day(1), EndDate: day(6), Progress: 50, Assignee: "Frontend Team", RowID: "row-1", Color: "#3b82f6"},
		{ID: "task-2", Title: "State Management Setup", StartDate: day(7), EndDate: day(12), Progress: 30, Assignee: "Frontend Team", RowID: "row-1", Color: "#06b6d4"},
		{ID: "task-3", Title: "API Integration", StartDate: day(3), EndDate: day(14), Progress: 65, Assignee: "Backend Team", RowID: "row-2", Color: "#10b981"},
		{ID: "task-4", Title: "Design Review", StartDate: day(10), EndDate: day(13), Progress: 90, Assignee: "Design Team", RowID: "row-3", Color: "#f59e0b"},
	}
	return NewBoard(rows, tasks)
}
