// Package planner is the study scheduling and prioritization engine.
//
// It turns a user's pending tasks and a daily time budget into an ordered
// agenda. A Strategy orders the candidates, SelectWithinBudget truncates them
// to what fits, and Engine wires both to a read-only task snapshot. The engine
// keeps no state between calls and never writes, except that ExpandRecurrence
// hands generated occurrences back to the task source for creation.
package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rnwolfe/studyplan/internal/analytics"
	"github.com/rnwolfe/studyplan/internal/task"
)

// Request defaults and limits.
const (
	DefaultMaxHours        = 8
	MaxHoursPerDay         = 16
	DefaultSuggestLimit    = 5
	DefaultTasksPerSubject = 2
	DaysPerWeek            = 7
)

// TaskSource is the store the engine reads task snapshots from.
type TaskSource interface {
	Pending(ctx context.Context, userID string) ([]task.Task, error)
	All(ctx context.Context, userID string) ([]task.Task, error)
	Get(ctx context.Context, id int) (*task.Task, error)
	Add(ctx context.Context, t task.Task) (int, error)
}

// ProgressSource supplies the distinct days a user studied on.
type ProgressSource interface {
	StudyDates(ctx context.Context, userID string) ([]time.Time, error)
}

// Engine answers scheduling and analytics queries for one user at a time.
type Engine struct {
	Tasks    TaskSource
	Progress ProgressSource
	// Now is the clock used for urgency and overdue checks. Defaults to time.Now.
	Now func() time.Time
}

// New creates an Engine over the given sources.
func New(tasks TaskSource, progress ProgressSource) *Engine {
	return &Engine{Tasks: tasks, Progress: progress, Now: time.Now}
}

// ScheduleRequest describes one scheduling call.
type ScheduleRequest struct {
	// Date is the day to plan (the first day for weekly plans). Zero means today.
	Date time.Time
	// Strategy is a strategy name; unknown or empty names mean "balanced".
	Strategy string
	// MaxHours is the daily budget. Values <= 0 mean DefaultMaxHours; values
	// above MaxHoursPerDay are clamped.
	MaxHours int
}

// DayPlan is the ordered selection for one day.
type DayPlan struct {
	Date     time.Time
	Strategy Strategy
	Budget   int // minutes
	Tasks    []task.Task
}

// IDs returns the task IDs of the plan in order.
func (p DayPlan) IDs() []int {
	return IDs(p.Tasks)
}

// ClampHours applies the daily budget default and ceiling.
func ClampHours(h int) int {
	switch {
	case h <= 0:
		return DefaultMaxHours
	case h > MaxHoursPerDay:
		return MaxHoursPerDay
	default:
		return h
	}
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// DailySchedule plans a single day from the user's pending tasks.
func (e *Engine) DailySchedule(ctx context.Context, userID string, req ScheduleRequest) (DayPlan, error) {
	now := e.now()
	pending, err := e.Tasks.Pending(ctx, userID)
	if err != nil {
		return DayPlan{}, fmt.Errorf("loading pending tasks: %w", err)
	}
	date := req.Date
	if date.IsZero() {
		date = now
	}
	return planDay(pending, startOfDay(date), ParseStrategy(req.Strategy), ClampHours(req.MaxHours)*60, now), nil
}

// WeeklySchedule plans seven consecutive days starting at req.Date. The
// snapshot is read once and every day is planned independently from the full
// pool, so a task can show up on more than one day.
func (e *Engine) WeeklySchedule(ctx context.Context, userID string, req ScheduleRequest) ([DaysPerWeek]DayPlan, error) {
	var week [DaysPerWeek]DayPlan

	now := e.now()
	pending, err := e.Tasks.Pending(ctx, userID)
	if err != nil {
		return week, fmt.Errorf("loading pending tasks: %w", err)
	}
	start := req.Date
	if start.IsZero() {
		start = now
	}
	start = startOfDay(start)
	strategy := ParseStrategy(req.Strategy)
	budget := ClampHours(req.MaxHours) * 60

	var wg sync.WaitGroup
	for i := 0; i < DaysPerWeek; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			week[i] = planDay(pending, start.AddDate(0, 0, i), strategy, budget, now)
		}(i)
	}
	wg.Wait()

	return week, nil
}

// planDay never mutates pending; strategies copy before sorting.
func planDay(pending []task.Task, date time.Time, s Strategy, budget int, now time.Time) DayPlan {
	return DayPlan{
		Date:     date,
		Strategy: s,
		Budget:   budget,
		Tasks:    s.Schedule(pending, date, budget, now),
	}
}

// ExpandRecurrence creates the future occurrences of one of the user's
// recurring tasks and returns the new task IDs. On a partial failure the IDs
// created so far are returned alongside the error.
func (e *Engine) ExpandRecurrence(ctx context.Context, userID string, taskID int) ([]int, error) {
	tmpl, err := e.Tasks.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if tmpl.UserID != userID {
		return nil, fmt.Errorf("task #%d: %w", taskID, ErrAccessDenied)
	}

	occurrences, err := ExpandRecurrence(*tmpl)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(occurrences))
	for _, occ := range occurrences {
		id, err := e.Tasks.Add(ctx, occ)
		if err != nil {
			return ids, fmt.Errorf("creating occurrence due %s: %w", occ.Due.Format(task.DueFormat), err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SuggestPriorityTasks returns the top pending tasks: overdue first, then
// priority descending, then soonest due. limit <= 0 means DefaultSuggestLimit.
func (e *Engine) SuggestPriorityTasks(ctx context.Context, userID string, limit int) ([]task.Task, error) {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	pending, err := e.Tasks.Pending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading pending tasks: %w", err)
	}

	ranked := incomplete(pending)
	sortStable(ranked, OrderSmart.Compare(e.now()))
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// BalanceLoad spreads attention across subjects: it takes up to perSubject of
// the soonest-due pending tasks from each subject and merges them by due date.
// perSubject <= 0 means DefaultTasksPerSubject.
func (e *Engine) BalanceLoad(ctx context.Context, userID string, perSubject int) ([]task.Task, error) {
	if perSubject <= 0 {
		perSubject = DefaultTasksPerSubject
	}
	pending, err := e.Tasks.Pending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading pending tasks: %w", err)
	}

	var order []int
	bySubject := make(map[int][]task.Task)
	for _, t := range incomplete(pending) {
		if _, seen := bySubject[t.SubjectID]; !seen {
			order = append(order, t.SubjectID)
		}
		bySubject[t.SubjectID] = append(bySubject[t.SubjectID], t)
	}

	var balanced []task.Task
	for _, sid := range order {
		group := bySubject[sid]
		sortStable(group, byDue)
		if len(group) > perSubject {
			group = group[:perSubject]
		}
		balanced = append(balanced, group...)
	}
	sortStable(balanced, byDue)
	return balanced, nil
}

// Streak returns the user's current study streak in days.
func (e *Engine) Streak(ctx context.Context, userID string) (int, error) {
	dates, err := e.Progress.StudyDates(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("loading study dates: %w", err)
	}
	return analytics.Streak(dates, e.now()), nil
}

// ProductivityScore returns the user's productivity score in [0,100].
func (e *Engine) ProductivityScore(ctx context.Context, userID string) (float64, error) {
	now := e.now()
	all, err := e.Tasks.All(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("loading tasks: %w", err)
	}
	dates, err := e.Progress.StudyDates(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("loading study dates: %w", err)
	}

	stats := analytics.Completion(all, nil, now)
	streak := analytics.Streak(dates, now)
	return analytics.ProductivityScore(stats.CompletionRate, streak, stats.Overdue, stats.Total), nil
}

// IDs returns the IDs of tasks in order.
func IDs(tasks []task.Task) []int {
	ids := make([]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
