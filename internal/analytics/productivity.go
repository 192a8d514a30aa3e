package analytics

import "math"

// Productivity score weights.
const (
	completionWeight  = 0.5
	pointsPerDay      = 5
	maxStreakPoints   = 30
	maxOverduePenalty = 20
)

// ProductivityScore combines completion rate (a percentage), study streak and
// the share of overdue tasks into a score clamped to [0,100]:
//
//	completionRate*0.5 + min(streak*5, 30) - (overdue/total)*20
//
// With zero tasks the overdue penalty is zero.
func ProductivityScore(completionRate float64, streak, overdue, total int) float64 {
	streakPoints := math.Min(float64(streak*pointsPerDay), maxStreakPoints)

	var penalty float64
	if total > 0 {
		penalty = float64(overdue) / float64(total) * maxOverduePenalty
	}

	score := completionRate*completionWeight + streakPoints - penalty
	return math.Max(0, math.Min(100, score))
}
