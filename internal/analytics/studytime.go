package analytics

import "github.com/rnwolfe/studyplan/internal/progress"

// StudyTimeStats summarizes logged study time.
type StudyTimeStats struct {
	TotalMinutes int
	Daily        []progress.DayTotal
	BySubject    []SubjectTime
}

// SubjectTime is one subject's share of all logged study time.
type SubjectTime struct {
	Name    string
	Minutes int
	Percent float64
}

// StudyTime assembles study-time statistics from store aggregates. Subject
// percentages are relative to total; all zero when total is zero.
func StudyTime(total int, daily []progress.DayTotal, bySubject []progress.SubjectTotal) StudyTimeStats {
	stats := StudyTimeStats{TotalMinutes: total, Daily: daily}
	for _, st := range bySubject {
		stats.BySubject = append(stats.BySubject, SubjectTime{
			Name:    st.Name,
			Minutes: st.Minutes,
			Percent: percent(st.Minutes, total),
		})
	}
	return stats
}
