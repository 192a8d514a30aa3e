package planner

import (
	"fmt"

	"github.com/rnwolfe/studyplan/internal/task"
)

// ExpandRecurrence generates the occurrences of a recurring template after its
// own due instant. Occurrences are spaced by the frequency's fixed day interval
// (a month is 30 days) and stop once the next one would fall after the end
// instant. Each occurrence is an independent, incomplete, non-recurring copy.
func ExpandRecurrence(tmpl task.Task) ([]task.Task, error) {
	if !tmpl.Recurring {
		return nil, fmt.Errorf("task #%d: %w", tmpl.ID, ErrNotRecurring)
	}
	interval := tmpl.Frequency.DaysInterval()
	if interval <= 0 {
		return nil, fmt.Errorf("task #%d has no recurrence frequency: %w", tmpl.ID, ErrNotRecurring)
	}
	if tmpl.RecurrenceEnd == nil {
		return nil, fmt.Errorf("task #%d has no end date: %w", tmpl.ID, ErrInvalidRecurrenceEndDate)
	}
	end := *tmpl.RecurrenceEnd
	if !end.After(tmpl.Due) {
		return nil, fmt.Errorf("task #%d ends %s, not after its due date %s: %w",
			tmpl.ID, end.Format(task.DueFormat), tmpl.Due.Format(task.DueFormat), ErrInvalidRecurrenceEndDate)
	}

	var occurrences []task.Task
	next := tmpl.Due
	for {
		next = next.AddDate(0, 0, interval)
		if next.After(end) {
			break
		}
		occurrences = append(occurrences, task.Task{
			UserID:      tmpl.UserID,
			SubjectID:   tmpl.SubjectID,
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Due:         next,
			Priority:    tmpl.Priority,
		})
	}
	return occurrences, nil
}
