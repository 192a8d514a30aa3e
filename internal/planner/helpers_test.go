package planner

import (
	"context"
	"errors"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

// now is a fixed reference time for deterministic tests.
var now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func hoursFromNow(h int) time.Time {
	return now.Add(time.Duration(h) * time.Hour)
}

func mk(id int, prio task.Priority, dueInHours int) task.Task {
	return task.Task{
		ID:        id,
		UserID:    "u1",
		SubjectID: 1,
		Title:     "task",
		Priority:  prio,
		Due:       hoursFromNow(dueInHours),
		CreatedAt: now.Add(-time.Duration(100-id) * time.Minute),
	}
}

func sameIDs(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// fakeTasks is an in-memory TaskSource.
type fakeTasks struct {
	tasks  []task.Task
	nextID int
	err    error
	added  []task.Task
}

func (f *fakeTasks) Pending(_ context.Context, userID string) ([]task.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []task.Task
	for _, t := range f.tasks {
		if t.UserID == userID && !t.Completed {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasks) All(_ context.Context, userID string) ([]task.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []task.Task
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasks) Get(_ context.Context, id int) (*task.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, task.ErrNotFound
}

func (f *fakeTasks) Add(_ context.Context, t task.Task) (int, error) {
	if f.nextID == 0 {
		f.nextID = 100
	}
	f.nextID++
	t.ID = f.nextID
	f.added = append(f.added, t)
	f.tasks = append(f.tasks, t)
	return t.ID, nil
}

// fakeProgress is an in-memory ProgressSource.
type fakeProgress struct {
	dates []time.Time
}

func (f *fakeProgress) StudyDates(context.Context, string) ([]time.Time, error) {
	return f.dates, nil
}

var errBoom = errors.New("boom")

func newTestEngine(tasks ...task.Task) (*Engine, *fakeTasks, *fakeProgress) {
	ft := &fakeTasks{tasks: tasks}
	fp := &fakeProgress{}
	e := New(ft, fp)
	e.Now = func() time.Time { return now }
	return e, ft, fp
}
