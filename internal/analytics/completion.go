package analytics

import (
	"sort"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

// CompletionStats summarizes how much of a user's work is done.
type CompletionStats struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	CompletionRate float64 // percentage, 0 when Total is 0
	BySubject      []SubjectCompletion
}

// SubjectCompletion is the completion breakdown for one subject.
type SubjectCompletion struct {
	SubjectID      int
	Name           string
	Total          int
	Completed      int
	CompletionRate float64
}

// Completion computes completion statistics over all of a user's tasks.
// Subjects with no tasks are left out of the breakdown, which is sorted by
// completion rate ascending so the most neglected subject comes first.
func Completion(tasks []task.Task, subjects []task.Subject, now time.Time) CompletionStats {
	stats := CompletionStats{Total: len(tasks)}

	type counts struct{ total, completed int }
	perSubject := make(map[int]*counts)

	for _, t := range tasks {
		c, ok := perSubject[t.SubjectID]
		if !ok {
			c = &counts{}
			perSubject[t.SubjectID] = c
		}
		c.total++
		if t.Completed {
			stats.Completed++
			c.completed++
		} else if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	stats.CompletionRate = percent(stats.Completed, stats.Total)

	for _, sub := range subjects {
		c, ok := perSubject[sub.ID]
		if !ok || c.total == 0 {
			continue
		}
		stats.BySubject = append(stats.BySubject, SubjectCompletion{
			SubjectID:      sub.ID,
			Name:           sub.Name,
			Total:          c.total,
			Completed:      c.completed,
			CompletionRate: percent(c.completed, c.total),
		})
	}
	sort.SliceStable(stats.BySubject, func(i, j int) bool {
		return stats.BySubject[i].CompletionRate < stats.BySubject[j].CompletionRate
	})

	return stats
}

func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) * 100 / float64(whole)
}
