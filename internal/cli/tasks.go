package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"timelinedeck/internal/jsonutil"
	"timelinedeck/internal/timeline"
)

const listDateFormat = "2006-01-02"

func newTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the board's tasks in navigation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.closeLog()
			board, _, err := loadBoard(app.Config)
			if err != nil {
				return writeErr(cmd, err)
			}
			tasks := orderedTasks(board)

			out := cmd.OutOrStdout()
			if app.Format == FormatJSON {
				data, err := jsonutil.MarshalIndent(tasks)
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = out.Write(data)
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "ROW", "TITLE", "START", "END", "PROGRESS")
			for _, task := range tasks {
				row := task.RowID
				if r := board.Row(task.RowID); r != nil {
					row = r.Label
				}
				t.Row(
					task.ID,
					row,
					task.Title,
					task.StartDate.Format(listDateFormat),
					task.EndDate.Format(listDateFormat),
					strconv.Itoa(task.Progress)+"%",
				)
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}
}

func orderedTasks(b *timeline.Board) []timeline.Task {
	ids := b.OrderedTaskIDs()
	tasks := make([]timeline.Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := b.Task(id); ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
