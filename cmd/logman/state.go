package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"log-manager/pkg/appstate"
	"log-manager/pkg/schedule"
	"log-manager/pkg/task"
	"log-manager/pkg/timer"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle     = lipgloss.NewStyle().Faint(true)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (c *cli) stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print every task, schedule and timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.svc.GetAppState()
			if err != nil {
				return err
			}
			if c.short() {
				printShortState(cmd.OutOrStdout(), st)
				return nil
			}
			return printJSON(cmd.OutOrStdout(), st)
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return idStyle.Render(id)
}

func printShortState(w io.Writer, st appstate.State) {
	tasks := sortedValues(st.Tasks, func(a, b task.Task) int { return a.CreatedAt.Compare(b.CreatedAt) })
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Tasks (%d)", len(tasks))))
	for _, t := range tasks {
		fmt.Fprintln(w, "  "+formatTask(t))
	}

	schedules := sortedValues(st.Schedules, func(a, b schedule.Schedule) int { return a.StartTime.Compare(b.StartTime.Time) })
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Schedules (%d)", len(schedules))))
	for _, s := range schedules {
		fmt.Fprintln(w, "  "+formatSchedule(s))
	}

	timers := sortedValues(st.Timers, func(a, b timer.Timer) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Timers (%d)", len(timers))))
	for _, t := range timers {
		fmt.Fprintln(w, "  "+formatTimer(t))
	}
}

func formatTask(t task.Task) string {
	box, title := "[ ]", t.Title
	if t.Completed {
		box, title = "[x]", doneStyle.Render(t.Title)
	}
	line := fmt.Sprintf("%s %s  %s", box, shortID(t.ID), title)
	if t.DueDate != nil {
		line += "  due " + t.DueDate.String()
	}
	return line
}

func formatSchedule(s schedule.Schedule) string {
	when := s.StartTime.String()
	if s.EndTime != nil {
		when += " - " + s.EndTime.String()
	}
	line := fmt.Sprintf("%s  %s  %s", shortID(s.ID), when, s.Title)
	if s.IsReminder {
		line += "  (reminder)"
	}
	return line
}

func formatTimer(t timer.Timer) string {
	line := fmt.Sprintf("%s  %s  %s/%s", shortID(t.ID), t.Name, timer.Clock(t.Elapsed), timer.Clock(t.Duration))
	if t.IsRunning {
		line += "  " + activeStyle.Render("running")
	}
	if t.IsPomodoro {
		line += "  pomodoro"
	}
	return line
}

func sortedValues[T any](m map[string]T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, cmp)
	return out
}
