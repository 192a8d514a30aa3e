package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

// Strategy is a scheduling policy. The set is closed; dispatch is a switch.
type Strategy int

const (
	// Balanced orders by combined priority + deadline urgency. It is the default.
	Balanced Strategy = iota
	// DeadlineFirst keeps tasks due within three days of the target date, soonest first.
	DeadlineFirst
	// PriorityFirst orders by priority weight, then by due date.
	PriorityFirst
	// OverdueFirst puts every overdue task ahead of every upcoming one.
	OverdueFirst
)

// deadlineWindowDays is how far past the target date DeadlineFirst looks.
const deadlineWindowDays = 3

// Strategies lists every strategy.
func Strategies() []Strategy {
	return []Strategy{Balanced, DeadlineFirst, PriorityFirst, OverdueFirst}
}

// ParseStrategy resolves a case-insensitive strategy name. Anything it does
// not recognise, including the empty string, resolves to Balanced.
func ParseStrategy(name string) Strategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "deadline":
		return DeadlineFirst
	case "priority":
		return PriorityFirst
	case "overdue":
		return OverdueFirst
	default:
		return Balanced
	}
}

// String returns the strategy's canonical name.
func (s Strategy) String() string {
	switch s {
	case DeadlineFirst:
		return "deadline"
	case PriorityFirst:
		return "priority"
	case OverdueFirst:
		return "overdue"
	default:
		return "balanced"
	}
}

// Describe returns a one-line explanation of the strategy.
func (s Strategy) Describe() string {
	switch s {
	case DeadlineFirst:
		return "tasks due within 3 days of the target date, soonest first"
	case PriorityFirst:
		return "highest priority first, then soonest due"
	case OverdueFirst:
		return "overdue tasks first, then upcoming, each soonest first"
	default:
		return "combined priority and deadline urgency"
	}
}

// Order returns the candidate ordering for target. Completed tasks are always
// dropped. Urgency and overdue checks use now, not target.
func (s Strategy) Order(tasks []task.Task, target, now time.Time) []task.Task {
	pending := incomplete(tasks)

	switch s {
	case DeadlineFirst:
		cutoff := startOfDay(target).AddDate(0, 0, deadlineWindowDays+1).Add(-time.Second)
		var eligible []task.Task
		for _, t := range pending {
			if t.Due.Before(cutoff) {
				eligible = append(eligible, t)
			}
		}
		sortStable(eligible, byDue)
		return eligible

	case PriorityFirst:
		sortStable(pending, then(reverse(byPriority), byDue))
		return pending

	case OverdueFirst:
		var overdue, upcoming []task.Task
		for _, t := range pending {
			if t.Due.Before(now) {
				overdue = append(overdue, t)
			} else {
				upcoming = append(upcoming, t)
			}
		}
		sortStable(overdue, byDue)
		sortStable(upcoming, byDue)
		return append(overdue, upcoming...)

	default:
		scored := ScoreTasks(pending, now)
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Score > scored[j].Score
		})
		ordered := make([]task.Task, len(scored))
		for i, st := range scored {
			ordered[i] = st.Task
		}
		return ordered
	}
}

// Schedule orders tasks for target and truncates the result to availableMinutes.
func (s Strategy) Schedule(tasks []task.Task, target time.Time, availableMinutes int, now time.Time) []task.Task {
	return SelectWithinBudget(s.Order(tasks, target, now), availableMinutes)
}

// incomplete returns a fresh slice of the tasks that are not completed, so
// callers can sort it without touching the snapshot.
func incomplete(tasks []task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
