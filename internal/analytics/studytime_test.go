package analytics

import (
	"math"
	"testing"

	"github.com/rnwolfe/studyplan/internal/progress"
)

func TestStudyTime(t *testing.T) {
	daily := []progress.DayTotal{
		{Date: mustDate("2024-03-09"), Minutes: 90},
		{Date: mustDate("2024-03-10"), Minutes: 30},
	}
	bySubject := []progress.SubjectTotal{
		{SubjectID: 1, Name: "Math", Minutes: 90},
		{SubjectID: 2, Name: "Art", Minutes: 30},
	}

	stats := StudyTime(120, daily, bySubject)
	if stats.TotalMinutes != 120 {
		t.Errorf("total = %d, want 120", stats.TotalMinutes)
	}
	if len(stats.Daily) != 2 {
		t.Errorf("daily rows = %d, want 2", len(stats.Daily))
	}
	if len(stats.BySubject) != 2 {
		t.Fatalf("subject rows = %d, want 2", len(stats.BySubject))
	}
	if math.Abs(stats.BySubject[0].Percent-75) > 1e-9 || math.Abs(stats.BySubject[1].Percent-25) > 1e-9 {
		t.Errorf("percents = %v, %v", stats.BySubject[0].Percent, stats.BySubject[1].Percent)
	}
}

func TestStudyTime_ZeroTotal(t *testing.T) {
	stats := StudyTime(0, nil, []progress.SubjectTotal{{SubjectID: 1, Name: "Math"}})
	if stats.BySubject[0].Percent != 0 {
		t.Errorf("percent = %v, want 0", stats.BySubject[0].Percent)
	}
}
