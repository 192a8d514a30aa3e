package planner

import "github.com/rnwolfe/studyplan/internal/task"

// DefaultTaskMinutes is the time every task is assumed to take. There is no
// per-task duration model yet; EstimateMinutes is the single place to add one.
const DefaultTaskMinutes = 60

// EstimateMinutes returns the time budgeted for one task.
func EstimateMinutes(task.Task) int {
	return DefaultTaskMinutes
}

// SelectWithinBudget walks ordered and keeps each task whose estimate still
// fits the remaining minutes. It never reorders; tasks that do not fit are
// skipped, and the walk stops as soon as the budget is used up.
func SelectWithinBudget(ordered []task.Task, availableMinutes int) []task.Task {
	var selected []task.Task
	remaining := availableMinutes

	for _, t := range ordered {
		if remaining <= 0 {
			break
		}
		est := EstimateMinutes(t)
		if est <= remaining {
			selected = append(selected, t)
			remaining -= est
		}
	}
	return selected
}
