package planner

import (
	"testing"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

func TestPriorityScore(t *testing.T) {
	tests := []struct {
		p    task.Priority
		want int
	}{
		{task.PrioHigh, 100},
		{task.PrioMedium, 60},
		{task.PrioLow, 30},
		{task.Priority(0), 0},
	}
	for _, tt := range tests {
		if got := PriorityScore(tt.p); got != tt.want {
			t.Errorf("PriorityScore(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestDeadlineScore(t *testing.T) {
	tests := []struct {
		name  string
		hours int
		want  int
	}{
		{"two days late", -48, 100},
		{"one hour late", -1, 90},
		{"later today", 5, 90},
		{"tomorrow", 24, 80},
		{"in three days", 72, 70},
		{"in five days", 120, 50},
		{"in a week", 168, 50},
		{"in ten days", 240, 30},
		{"in two weeks", 336, 30},
		{"in a month", 720, 10},
	}
	for _, tt := range tests {
		if got := DeadlineScore(hoursFromNow(tt.hours), now); got != tt.want {
			t.Errorf("%s: DeadlineScore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestDaysUntil_TruncatesTowardZero(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{47 * time.Hour, 1},
		{-47 * time.Hour, -1},
		{-23 * time.Hour, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := DaysUntil(now.Add(tt.d), now); got != tt.want {
			t.Errorf("DaysUntil(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestUrgencyScore(t *testing.T) {
	tests := []struct {
		name string
		task task.Task
		want int
	}{
		{"high due tomorrow", mk(1, task.PrioHigh, 24), 90},
		{"low in a month", mk(2, task.PrioLow, 720), 20},
		{"medium overdue", mk(3, task.PrioMedium, -72), 80},
	}
	for _, tt := range tests {
		if got := UrgencyScore(tt.task, now); got != tt.want {
			t.Errorf("%s: UrgencyScore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestScoreTasks_PreservesOrder(t *testing.T) {
	in := []task.Task{mk(3, task.PrioLow, 10), mk(1, task.PrioHigh, 10)}
	scored := ScoreTasks(in, now)
	if len(scored) != 2 || scored[0].Task.ID != 3 || scored[1].Task.ID != 1 {
		t.Fatalf("ScoreTasks reordered input: %+v", scored)
	}
	if scored[1].Score <= scored[0].Score {
		t.Fatalf("high priority should score higher: %+v", scored)
	}
}
