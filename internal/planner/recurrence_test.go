package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

func recurring(freq task.Frequency, due, end time.Time) task.Task {
	return task.Task{
		ID: 1, UserID: "u1", SubjectID: 2, Title: "quiz", Description: "unit review",
		Priority: task.PrioHigh, Due: due, Recurring: true, Frequency: freq, RecurrenceEnd: &end,
	}
}

func TestExpandRecurrence_Weekly(t *testing.T) {
	due := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	got, err := ExpandRecurrence(recurring(task.FreqWeekly, due, end))
	if err != nil {
		t.Fatalf("ExpandRecurrence: %v", err)
	}
	want := []time.Time{
		time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d occurrences, got %d", len(want), len(got))
	}
	for i, occ := range got {
		if !occ.Due.Equal(want[i]) {
			t.Errorf("occurrence %d due %v, want %v", i, occ.Due, want[i])
		}
		if occ.ID != 0 || occ.Recurring || occ.Completed || occ.RecurrenceEnd != nil {
			t.Errorf("occurrence %d should be a fresh one-off task: %+v", i, occ)
		}
		if occ.UserID != "u1" || occ.SubjectID != 2 || occ.Title != "quiz" || occ.Description != "unit review" || occ.Priority != task.PrioHigh {
			t.Errorf("occurrence %d did not copy template fields: %+v", i, occ)
		}
	}
}

func TestExpandRecurrence_Intervals(t *testing.T) {
	due := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		freq task.Frequency
		end  time.Time
		want int
	}{
		{task.FreqDaily, time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), 4},
		{task.FreqBiweekly, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 2},
		{task.FreqMonthly, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), 2},
		{task.FreqWeekly, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		got, err := ExpandRecurrence(recurring(tt.freq, due, tt.end))
		if err != nil {
			t.Errorf("%s: %v", tt.freq, err)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("%s until %s: %d occurrences, want %d", tt.freq, tt.end.Format(task.DateFormat), len(got), tt.want)
		}
		for i := 1; i < len(got); i++ {
			if gap := got[i].Due.Sub(got[i-1].Due); gap != time.Duration(tt.freq.DaysInterval())*24*time.Hour {
				t.Errorf("%s: gap %v between occurrences", tt.freq, gap)
			}
		}
	}
}

func TestExpandRecurrence_Monthly30Days(t *testing.T) {
	due := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	got, err := ExpandRecurrence(recurring(task.FreqMonthly, due, due.AddDate(0, 0, 31)))
	if err != nil {
		t.Fatalf("ExpandRecurrence: %v", err)
	}
	if len(got) != 1 || !got[0].Due.Equal(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected one occurrence on Mar 1, got %+v", got)
	}
}

func TestExpandRecurrence_Errors(t *testing.T) {
	due := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	notRecurring := recurring(task.FreqWeekly, due, due.AddDate(0, 1, 0))
	notRecurring.Recurring = false
	if _, err := ExpandRecurrence(notRecurring); !errors.Is(err, ErrNotRecurring) {
		t.Errorf("expected ErrNotRecurring, got %v", err)
	}

	noFreq := recurring(task.FreqNone, due, due.AddDate(0, 1, 0))
	if _, err := ExpandRecurrence(noFreq); !errors.Is(err, ErrNotRecurring) {
		t.Errorf("expected ErrNotRecurring for missing frequency, got %v", err)
	}

	noEnd := recurring(task.FreqWeekly, due, due)
	noEnd.RecurrenceEnd = nil
	if _, err := ExpandRecurrence(noEnd); !errors.Is(err, ErrInvalidRecurrenceEndDate) {
		t.Errorf("expected ErrInvalidRecurrenceEndDate for nil end, got %v", err)
	}

	for _, end := range []time.Time{due, due.AddDate(0, 0, -1)} {
		if _, err := ExpandRecurrence(recurring(task.FreqDaily, due, end)); !errors.Is(err, ErrInvalidRecurrenceEndDate) {
			t.Errorf("end %v: expected ErrInvalidRecurrenceEndDate, got %v", end, err)
		}
	}
}
