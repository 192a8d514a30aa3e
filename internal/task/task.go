package task

import (
	"fmt"
	"strings"
	"time"
)

// Priority is a task's importance level. The numeric value is its sort weight.
type Priority int

// Priority levels.
const (
	PrioLow    Priority = 1
	PrioMedium Priority = 2
	PrioHigh   Priority = 3
)

// Weight returns the integer weight used for ranking (HIGH=3 > MEDIUM=2 > LOW=1).
func (p Priority) Weight() int {
	switch p {
	case PrioLow, PrioMedium, PrioHigh:
		return int(p)
	default:
		return 0
	}
}

// String returns the canonical upper-case name stored in the database.
func (p Priority) String() string {
	switch p {
	case PrioHigh:
		return "HIGH"
	case PrioMedium:
		return "MEDIUM"
	case PrioLow:
		return "LOW"
	default:
		return "?"
	}
}

// Label returns a short human-readable priority string.
func (p Priority) Label() string {
	switch p {
	case PrioHigh:
		return "high"
	case PrioMedium:
		return "med"
	case PrioLow:
		return "low"
	default:
		return "?"
	}
}

// Icon returns a colored icon for the priority.
func (p Priority) Icon() string {
	switch p {
	case PrioHigh:
		return "🟠"
	case PrioMedium:
		return "🟡"
	case PrioLow:
		return "🟢"
	default:
		return "⚪"
	}
}

// ParsePriority validates and normalizes a priority string.
// Accepts full names and short aliases: l/low, m/med/medium, h/high.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return PrioLow, nil
	case "m", "med", "medium", "":
		return PrioMedium, nil
	case "h", "high":
		return PrioHigh, nil
	default:
		return 0, fmt.Errorf("invalid priority %q — valid values: low (l), medium (m), high (h)", s)
	}
}

// Frequency is how often a recurring task repeats.
type Frequency string

// Valid recurrence frequencies.
const (
	FreqNone     Frequency = ""
	FreqDaily    Frequency = "DAILY"
	FreqWeekly   Frequency = "WEEKLY"
	FreqBiweekly Frequency = "BIWEEKLY"
	FreqMonthly  Frequency = "MONTHLY"
)

// DaysInterval returns the fixed number of days between occurrences.
// A month is approximated as 30 days.
func (f Frequency) DaysInterval() int {
	switch f {
	case FreqDaily:
		return 1
	case FreqWeekly:
		return 7
	case FreqBiweekly:
		return 14
	case FreqMonthly:
		return 30
	default:
		return 0
	}
}

// Label returns a short display label for the frequency.
func (f Frequency) Label() string {
	switch f {
	case FreqDaily:
		return "daily"
	case FreqWeekly:
		return "weekly"
	case FreqBiweekly:
		return "bi-weekly"
	case FreqMonthly:
		return "monthly"
	default:
		return ""
	}
}

// ParseFrequency validates and normalizes a frequency string.
// Accepts short aliases: d/day/daily, w/week/weekly, bw/biweekly, m/month/monthly.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "day", "daily":
		return FreqDaily, nil
	case "w", "week", "weekly":
		return FreqWeekly, nil
	case "bw", "biweekly", "bi-weekly":
		return FreqBiweekly, nil
	case "m", "month", "monthly":
		return FreqMonthly, nil
	default:
		return FreqNone, fmt.Errorf("invalid frequency %q — valid values: day (d), week (w), biweekly (bw), month (m)", s)
	}
}

// Task is a single unit of study work owned by one user.
type Task struct {
	ID          int
	UserID      string
	SubjectID   int
	Title       string
	Description string
	Due         time.Time
	Completed   bool
	Priority    Priority
	Recurring   bool
	// Frequency and RecurrenceEnd are only meaningful when Recurring is true.
	Frequency     Frequency
	RecurrenceEnd *time.Time
	CreatedAt     time.Time
}

// IsOverdue reports whether an incomplete task's due instant is before now.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Due.Before(now)
}

// Subject groups related tasks (a course, an exam, a topic).
type Subject struct {
	ID       int
	UserID   string
	Name     string
	Priority Priority
}

// Progress is one logged study session against a task.
type Progress struct {
	ID        int
	UserID    string
	TaskID    int
	Date      time.Time // calendar date, time component zeroed
	Minutes   int
	Note      string
	CreatedAt time.Time
}

// DateFormat is the on-disk and CLI format for calendar dates.
const DateFormat = "2006-01-02"

// DueFormat is the on-disk format for due instants.
const DueFormat = "2006-01-02 15:04:05"

// ParseDue parses a user-supplied due instant. Accepts a bare date (due at
// 23:59 local time) or a date with an HH:MM time.
func ParseDue(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, loc); err == nil {
		return t, nil
	}
	d, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q — use YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"", s)
	}
	return d.Add(23*time.Hour + 59*time.Minute), nil
}
