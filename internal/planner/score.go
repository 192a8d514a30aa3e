package planner

import (
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

// ScoredTask pairs a task with its urgency score in [0,100].
// It only lives for the duration of one strategy call.
type ScoredTask struct {
	Task  task.Task
	Score int
}

// PriorityScore maps a priority level onto the 0-100 urgency scale.
func PriorityScore(p task.Priority) int {
	switch p {
	case task.PrioHigh:
		return 100
	case task.PrioMedium:
		return 60
	case task.PrioLow:
		return 30
	default:
		return 0
	}
}

// DaysUntil returns the number of whole 24h periods from now until due,
// truncated toward zero. It is negative once a task is more than a day late.
func DaysUntil(due, now time.Time) int {
	return int(due.Sub(now) / (24 * time.Hour))
}

// DeadlineScore maps deadline proximity onto the 0-100 urgency scale.
func DeadlineScore(due, now time.Time) int {
	d := DaysUntil(due, now)
	switch {
	case d < 0:
		return 100
	case d == 0:
		return 90
	case d <= 1:
		return 80
	case d <= 3:
		return 70
	case d <= 7:
		return 50
	case d <= 14:
		return 30
	default:
		return 10
	}
}

// UrgencyScore combines priority and deadline proximity. Higher is more urgent.
func UrgencyScore(t task.Task, now time.Time) int {
	return (PriorityScore(t.Priority) + DeadlineScore(t.Due, now)) / 2
}

// ScoreTasks scores every task against now, preserving input order.
func ScoreTasks(tasks []task.Task, now time.Time) []ScoredTask {
	scored := make([]ScoredTask, len(tasks))
	for i, t := range tasks {
		scored[i] = ScoredTask{Task: t, Score: UrgencyScore(t, now)}
	}
	return scored
}
