package analytics

import (
	"sort"
	"time"
)

const dayKey = "2006-01-02"

// StreakInfo holds current and longest streak values.
type StreakInfo struct {
	Current int
	Longest int
}

// Streak counts consecutive study days ending today. Today must have an entry
// for the streak to be alive: a user who last studied yesterday has a streak
// of 0, not 1. From today it walks back one calendar day at a time and stops
// at the first day with no entry.
//
// dates may contain duplicates and need not be sorted; only their calendar
// day matters.
func Streak(dates []time.Time, now time.Time) int {
	days := daySet(dates)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !days[today.Format(dayKey)] {
		return 0
	}

	streak := 1
	for d := today.AddDate(0, 0, -1); days[d.Format(dayKey)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive study days anywhere in dates.
func LongestStreak(dates []time.Time) int {
	days := daySet(dates)
	if len(days) == 0 {
		return 0
	}

	asc := make([]string, 0, len(days))
	for d := range days {
		asc = append(asc, d)
	}
	sort.Strings(asc)

	longest, run := 1, 1
	for i := 1; i < len(asc); i++ {
		prev, _ := time.Parse(dayKey, asc[i-1])
		if prev.AddDate(0, 0, 1).Format(dayKey) == asc[i] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// ComputeStreak returns both the current and the longest streak.
func ComputeStreak(dates []time.Time, now time.Time) StreakInfo {
	info := StreakInfo{
		Current: Streak(dates, now),
		Longest: LongestStreak(dates),
	}
	if info.Current > info.Longest {
		info.Longest = info.Current
	}
	return info
}

func daySet(dates []time.Time) map[string]bool {
	days := make(map[string]bool, len(dates))
	for _, d := range dates {
		days[d.Format(dayKey)] = true
	}
	return days
}
