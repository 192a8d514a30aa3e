package tips

import (
	"strings"
	"testing"
	"time"
)

func TestAll_WellFormed(t *testing.T) {
	all := All()
	if len(all) < 10 {
		t.Fatalf("All() returned %d tips, want at least 10", len(all))
	}
	for i, tip := range all {
		if !strings.HasPrefix(tip, "`studyplan ") {
			t.Errorf("All()[%d] does not start with a studyplan command: %q", i, tip)
		}
	}
}

func TestDaily_Deterministic(t *testing.T) {
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	if Daily(day) != Daily(day2) {
		t.Error("Daily() returned different tips for the same day")
	}
}

func TestDaily_DifferentDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		seen[Daily(start.AddDate(0, 0, i))] = true
	}
	if len(seen) < 2 {
		t.Error("Daily() returned the same tip for 10 consecutive days")
	}
}
