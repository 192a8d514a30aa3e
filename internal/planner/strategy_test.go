package planner

import (
	"testing"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"balanced", Balanced},
		{"deadline", DeadlineFirst},
		{"Priority", PriorityFirst},
		{" overdue ", OverdueFirst},
		{"foo", Balanced},
		{"", Balanced},
	}
	for _, tt := range tests {
		if got := ParseStrategy(tt.in); got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, s := range Strategies() {
		if ParseStrategy(s.String()) != s {
			t.Errorf("%v does not round-trip through its name", s)
		}
		if s.Describe() == "" {
			t.Errorf("%v has no description", s)
		}
	}
}

func TestStrategyOrder(t *testing.T) {
	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		mk(1, task.PrioLow, 24*10),    // Jan 25
		mk(2, task.PrioHigh, 24*6),    // Jan 21
		mk(3, task.PrioMedium, -24*2), // Jan 13, overdue
		mk(4, task.PrioLow, 24*2),     // Jan 17
		mk(5, task.PrioHigh, 24*3),    // Jan 18
	}
	done := mk(6, task.PrioHigh, -24*5)
	done.Completed = true
	tasks = append(tasks, done)

	tests := []struct {
		s    Strategy
		want []int
	}{
		// scores: 1=(30+30)/2=30 2=(100+50)/2=75 3=(60+100)/2=80 4=(30+70)/2=50 5=(100+70)/2=85
		{Balanced, []int{5, 3, 2, 4, 1}},
		// window ends Jan 18 23:59:59
		{DeadlineFirst, []int{3, 4, 5}},
		{PriorityFirst, []int{5, 2, 3, 4, 1}},
		{OverdueFirst, []int{3, 4, 5, 2, 1}},
	}
	for _, tt := range tests {
		got := IDs(tt.s.Order(tasks, today, now))
		if !sameIDs(got, tt.want) {
			t.Errorf("%v.Order = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestStrategyOrder_DoesNotMutateInput(t *testing.T) {
	tasks := []task.Task{mk(1, task.PrioLow, 1), mk(2, task.PrioHigh, 2)}
	for _, s := range Strategies() {
		s.Order(tasks, now, now)
	}
	if got := IDs(tasks); !sameIDs(got, []int{1, 2}) {
		t.Fatalf("input reordered: %v", got)
	}
}

func TestDeadlineFirst_WindowFollowsTarget(t *testing.T) {
	tasks := []task.Task{mk(1, task.PrioLow, 24*9)} // Jan 24 12:00
	if got := DeadlineFirst.Order(tasks, now, now); len(got) != 0 {
		t.Fatalf("Jan 24 is outside a Jan 15 window, got %v", IDs(got))
	}
	target := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)
	if got := DeadlineFirst.Order(tasks, target, now); len(got) != 1 {
		t.Fatal("Jan 24 is inside a Jan 21 window")
	}
}

func TestStrategySchedule_Budget(t *testing.T) {
	var tasks []task.Task
	for i := 1; i <= 10; i++ {
		tasks = append(tasks, mk(i, task.PrioMedium, i*24))
	}
	for _, s := range Strategies() {
		for _, minutes := range []int{0, 60, 150, 480} {
			got := s.Schedule(tasks, now, minutes, now)
			if len(got) > minutes/DefaultTaskMinutes {
				t.Errorf("%v with %d minutes scheduled %d tasks", s, minutes, len(got))
			}
			for _, tk := range got {
				if tk.Completed {
					t.Errorf("%v scheduled a completed task", s)
				}
			}
		}
	}
}
