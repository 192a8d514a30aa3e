package planner

import "errors"

// Sentinel errors for the planner package.
// Use errors.Is to check: errors.Is(err, planner.ErrUnknownSortKey)
var (
	ErrUnknownSortKey           = errors.New("planner: unknown sort key")
	ErrInvalidRecurrenceEndDate = errors.New("planner: invalid recurrence end date")
	ErrNotRecurring             = errors.New("planner: task is not recurring")
	ErrAccessDenied             = errors.New("planner: access denied")
)
