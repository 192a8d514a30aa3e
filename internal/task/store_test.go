package task

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rnwolfe/studyplan/internal/store"
)

const (
	testUser  = "0b6c3a52-8d6e-4f5b-9f1e-2f7c9f0f4a11"
	otherUser = "9d1f0c1e-3b2a-4c8e-8a55-6f7e2d1c0b99"
)

// setupStore opens a fresh database with two users and one subject each.
func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := store.OpenAt(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	seed := []string{
		`INSERT INTO users (id, name, created_at) VALUES ('` + testUser + `', 'tester', '2024-01-01 00:00:00')`,
		`INSERT INTO users (id, name, created_at) VALUES ('` + otherUser + `', 'other', '2024-01-01 00:00:00')`,
		`INSERT INTO subjects (id, user_id, name, priority, created_at) VALUES (1, '` + testUser + `', 'Math', 'HIGH', '2024-01-01 00:00:00')`,
		`INSERT INTO subjects (id, user_id, name, priority, created_at) VALUES (2, '` + otherUser + `', 'Art', 'LOW', '2024-01-01 00:00:00')`,
	}
	for _, q := range seed {
		if _, err := db.Conn().Exec(q); err != nil {
			t.Fatalf("seeding: %v", err)
		}
	}
	return NewStore(db.Conn())
}

func due(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAddAndGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, Task{
		UserID:      testUser,
		SubjectID:   1,
		Title:       "derivatives",
		Description: "chapter 4 exercises",
		Due:         due("2024-02-01 18:00"),
		Priority:    PrioHigh,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "derivatives" || got.Description != "chapter 4 exercises" {
		t.Fatalf("unexpected task: %+v", got)
	}
	if !got.Due.Equal(due("2024-02-01 18:00")) {
		t.Fatalf("due = %v", got.Due)
	}
	if got.Priority != PrioHigh || got.Completed || got.Recurring {
		t.Fatalf("unexpected flags: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestAdd_DefaultsPriority(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, Task{UserID: testUser, SubjectID: 1, Title: "x", Due: due("2024-02-01 10:00")})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, _ := s.Get(ctx, id)
	if got.Priority != PrioMedium {
		t.Fatalf("expected MEDIUM default, got %v", got.Priority)
	}
}

func TestAdd_Recurrence(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	end := due("2024-01-20 23:59")

	id, err := s.Add(ctx, Task{
		UserID: testUser, SubjectID: 1, Title: "weekly quiz",
		Due: due("2024-01-01 10:00"), Recurring: true, Frequency: FreqWeekly, RecurrenceEnd: &end,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, _ := s.Get(ctx, id)
	if !got.Recurring || got.Frequency != FreqWeekly {
		t.Fatalf("recurrence not stored: %+v", got)
	}
	if got.RecurrenceEnd == nil || !got.RecurrenceEnd.Equal(end) {
		t.Fatalf("recurrence end = %v", got.RecurrenceEnd)
	}

	invalid := []Task{
		{UserID: testUser, SubjectID: 1, Title: "no freq", Due: due("2024-01-01 10:00"), Recurring: true},
		{UserID: testUser, SubjectID: 1, Title: "end first", Due: due("2024-01-21 10:00"), Recurring: true, Frequency: FreqDaily, RecurrenceEnd: &end},
	}
	for _, tk := range invalid {
		if _, err := s.Add(ctx, tk); !errors.Is(err, ErrInvalidRecurrence) {
			t.Errorf("%s: expected ErrInvalidRecurrence, got %v", tk.Title, err)
		}
	}
}

func TestAdd_NonRecurringDropsRecurrenceFields(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	end := due("2024-03-01 10:00")

	id, err := s.Add(ctx, Task{
		UserID: testUser, SubjectID: 1, Title: "one-off",
		Due: due("2024-01-01 10:00"), Frequency: FreqDaily, RecurrenceEnd: &end,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, _ := s.Get(ctx, id)
	if got.Frequency != FreqNone || got.RecurrenceEnd != nil {
		t.Fatalf("non-recurring task kept recurrence fields: %+v", got)
	}
}

func TestListScopedAndFiltered(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	add := func(user string, subject int, title string, done bool) int {
		id, err := s.Add(ctx, Task{UserID: user, SubjectID: subject, Title: title, Due: due("2024-02-01 10:00"), Completed: done})
		if err != nil {
			t.Fatalf("Add(%s): %v", title, err)
		}
		return id
	}
	add(testUser, 1, "a", false)
	add(testUser, 1, "b", true)
	add(otherUser, 2, "c", false)

	pending, err := s.Pending(ctx, testUser)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 || pending[0].Title != "a" {
		t.Fatalf("Pending = %+v", pending)
	}

	all, err := s.All(ctx, testUser)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(all))
	}

	bySubject, err := s.List(ctx, testUser, ListOptions{ShowDone: true, SubjectID: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bySubject) != 0 {
		t.Fatalf("another user's subject must not leak: %+v", bySubject)
	}
}

func TestSetCompletedAndDelete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, Task{UserID: testUser, SubjectID: 1, Title: "essay", Due: due("2024-02-01 10:00")})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := s.SetCompleted(ctx, otherUser, id, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
	if err := s.SetCompleted(ctx, testUser, id, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	got, _ := s.Get(ctx, id)
	if !got.Completed {
		t.Fatal("expected completed")
	}
	if err := s.SetCompleted(ctx, testUser, id, false); err != nil {
		t.Fatalf("SetCompleted(false): %v", err)
	}
	got, _ = s.Get(ctx, id)
	if got.Completed {
		t.Fatal("expected reopened")
	}

	if err := s.Delete(ctx, otherUser, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting as other user, got %v", err)
	}
	if err := s.Delete(ctx, testUser, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
