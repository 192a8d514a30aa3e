package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

// Compare returns a negative number when a sorts before b, a positive number
// when b sorts before a, and zero when they are equivalent.
type Compare func(a, b task.Task) int

// Order names a total ordering over tasks.
type Order string

// Supported orders.
const (
	OrderDueAsc          Order = "due_date_asc"
	OrderDueDesc         Order = "due_date_desc"
	OrderPriorityDesc    Order = "priority_desc"
	OrderPriorityAsc     Order = "priority_asc"
	OrderCompletedFirst  Order = "completed_first"
	OrderIncompleteFirst Order = "incomplete_first"
	OrderCreatedDesc     Order = "created_desc"
	OrderCreatedAsc      Order = "created_asc"
	OrderSmart           Order = "smart"
)

// Orders lists every supported order in display order.
func Orders() []Order {
	return []Order{
		OrderSmart,
		OrderDueAsc, OrderDueDesc,
		OrderPriorityDesc, OrderPriorityAsc,
		OrderCompletedFirst, OrderIncompleteFirst,
		OrderCreatedAsc, OrderCreatedDesc,
	}
}

// ParseOrder resolves a case-insensitive order name.
func ParseOrder(name string) (Order, error) {
	o := Order(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Orders() {
		if o == known {
			return o, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownSortKey)
}

// Compare returns the comparison function for the order. now is the reference
// instant for overdue checks and only matters for OrderSmart.
func (o Order) Compare(now time.Time) Compare {
	switch o {
	case OrderDueAsc:
		return byDue
	case OrderDueDesc:
		return reverse(byDue)
	case OrderPriorityDesc:
		return reverse(byPriority)
	case OrderPriorityAsc:
		return byPriority
	case OrderCompletedFirst:
		return reverse(byCompleted)
	case OrderIncompleteFirst:
		return byCompleted
	case OrderCreatedDesc:
		return reverse(byCreated)
	case OrderCreatedAsc:
		return byCreated
	case OrderSmart:
		return smartCompare(now)
	default:
		return func(task.Task, task.Task) int { return 0 }
	}
}

// SortTasks stably sorts tasks in place by the named order. An unknown name
// leaves tasks untouched and returns ErrUnknownSortKey; callers treat that as
// "no sort applied".
func SortTasks(tasks []task.Task, name string, now time.Time) error {
	o, err := ParseOrder(name)
	if err != nil {
		return err
	}
	sortStable(tasks, o.Compare(now))
	return nil
}

func sortStable(tasks []task.Task, cmp Compare) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return cmp(tasks[i], tasks[j]) < 0
	})
}

func byDue(a, b task.Task) int {
	return a.Due.Compare(b.Due)
}

func byPriority(a, b task.Task) int {
	return a.Priority.Weight() - b.Priority.Weight()
}

// byCompleted puts incomplete (false) before completed (true).
func byCompleted(a, b task.Task) int {
	return boolRank(a.Completed) - boolRank(b.Completed)
}

func byCreated(a, b task.Task) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

func reverse(cmp Compare) Compare {
	return func(a, b task.Task) int { return cmp(b, a) }
}

// then chains comparators: later ones only break ties left by earlier ones.
func then(cmps ...Compare) Compare {
	return func(a, b task.Task) int {
		for _, c := range cmps {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// smartCompare: incomplete before completed; among incomplete tasks overdue
// before not overdue; then priority weight descending; then due ascending.
func smartCompare(now time.Time) Compare {
	overdueFirst := func(a, b task.Task) int {
		if a.Completed || b.Completed {
			return 0
		}
		return boolRank(!a.Due.Before(now)) - boolRank(!b.Due.Before(now))
	}
	return then(byCompleted, overdueFirst, reverse(byPriority), byDue)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
