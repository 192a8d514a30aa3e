package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rnwolfe/studyplan/internal/planner"
	"github.com/rnwolfe/studyplan/internal/task"
	"github.com/rnwolfe/studyplan/internal/ui"
)

// renderTask formats one task line for list and plan output.
func renderTask(t task.Task, subjects map[int]string, now time.Time) string {
	marker := " "
	title := t.Title
	if t.Completed {
		marker = ui.Success.Render("✓")
		title = ui.Muted.Render(title)
	}

	line := fmt.Sprintf("  %s %s %s %s", marker, ui.Muted.Render(fmt.Sprintf("#%-3d", t.ID)), t.Priority.Icon(), title)
	if name, ok := subjects[t.SubjectID]; ok {
		line += " " + ui.Tag.Render(name)
	}
	if t.Recurring {
		line += " " + ui.IconRepeat
	}
	if !t.Completed {
		line += dueLabel(t.Due, now)
	}
	return line
}

// dueLabel describes a due instant relative to now.
func dueLabel(due, now time.Time) string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
	switch {
	case due.Before(now):
		return ui.Error.Render(fmt.Sprintf(" (overdue: %s)", due.Format("Jan 2")))
	case dueDay.Equal(today):
		return ui.Warning.Render(fmt.Sprintf(" (due today %s)", due.Format("15:04")))
	case dueDay.Before(today.AddDate(0, 0, 7)):
		return ui.Muted.Render(fmt.Sprintf(" (due %s)", due.Format("Mon 15:04")))
	default:
		return ui.Muted.Render(fmt.Sprintf(" (due %s)", due.Format("Jan 2")))
	}
}

// printDayPlan prints a scheduled day with its budget usage.
func printDayPlan(plan planner.DayPlan, subjects map[int]string, now time.Time) {
	ui.Header(fmt.Sprintf("%s%s", ui.IconPlan, plan.Date.Format("Monday, Jan 2")))
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %s: %s", plan.Strategy, plan.Strategy.Describe())))
	fmt.Println()

	if len(plan.Tasks) == 0 {
		fmt.Println(ui.Muted.Render("  Nothing scheduled."))
		fmt.Println()
		return
	}

	used := 0
	for _, t := range plan.Tasks {
		used += planner.EstimateMinutes(t)
		fmt.Println(renderTask(t, subjects, now))
	}
	fmt.Println()
	fmt.Printf("  %s %s\n", ui.IconClock, ui.Muted.Render(fmt.Sprintf("%s of %s", ui.Minutes(used), ui.Minutes(plan.Budget))))
	fmt.Println()
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("#%d", id)
	}
	return strings.Join(parts, ", ")
}
