package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

// DayTotal is the study time logged on one calendar day.
type DayTotal struct {
	Date    time.Time
	Minutes int
}

// SubjectTotal is the study time logged against one subject.
type SubjectTotal struct {
	SubjectID int
	Name      string
	Minutes   int
}

// Store provides persistence for progress entries.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Log records a study session against one of the user's tasks.
// The date is truncated to a calendar day in its own location.
func (s *Store) Log(ctx context.Context, userID string, taskID int, minutes int, date time.Time, note string) (int, error) {
	if minutes <= 0 {
		return 0, fmt.Errorf("minutes must be positive, got %d", minutes)
	}

	var owner string
	err := s.db.QueryRowContext(ctx, `SELECT user_id FROM tasks WHERE id = ?`, taskID).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("task #%d: %w", taskID, task.ErrNotFound)
	}
	if err != nil {
		return 0, err
	}
	if owner != userID {
		return 0, fmt.Errorf("task #%d: %w", taskID, task.ErrNotFound)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO progress (user_id, task_id, date, minutes, note, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		userID, taskID, date.Format(task.DateFormat), minutes, note, time.Now().UTC().Format(task.DueFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("recording progress: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// List returns the user's progress entries, newest first.
func (s *Store) List(ctx context.Context, userID string) ([]task.Progress, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, task_id, date, minutes, note, created_at FROM progress
		 WHERE user_id = ? ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []task.Progress
	for rows.Next() {
		var p task.Progress
		var date, created string
		if err := rows.Scan(&p.ID, &p.UserID, &p.TaskID, &date, &p.Minutes, &p.Note, &created); err != nil {
			return nil, err
		}
		p.Date, err = time.ParseInLocation(task.DateFormat, date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing progress date %q: %w", date, err)
		}
		p.CreatedAt, _ = time.Parse(task.DueFormat, created)
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

// StudyDates returns the distinct calendar days the user logged progress on,
// most recent first, as local-midnight times.
func (s *Store) StudyDates(ctx context.Context, userID string) ([]time.Time, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT date FROM progress WHERE user_id = ? ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		parsed, err := time.ParseInLocation(task.DateFormat, d, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing study date %q: %w", d, err)
		}
		dates = append(dates, parsed)
	}
	return dates, rows.Err()
}

// TotalMinutes returns the minutes logged between from and to, inclusive.
func (s *Store) TotalMinutes(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(minutes), 0) FROM progress WHERE user_id = ? AND date BETWEEN ? AND ?`,
		userID, from.Format(task.DateFormat), to.Format(task.DateFormat),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing study time: %w", err)
	}
	return total, nil
}

// DailyMinutes returns per-day totals from `from` onward, oldest first.
func (s *Store) DailyMinutes(ctx context.Context, userID string, from time.Time) ([]DayTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, SUM(minutes) FROM progress WHERE user_id = ? AND date >= ?
		 GROUP BY date ORDER BY date ASC`,
		userID, from.Format(task.DateFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching daily study time: %w", err)
	}
	defer rows.Close()

	var result []DayTotal
	for rows.Next() {
		var d string
		var dt DayTotal
		if err := rows.Scan(&d, &dt.Minutes); err != nil {
			return nil, err
		}
		dt.Date, err = time.ParseInLocation(task.DateFormat, d, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing study date %q: %w", d, err)
		}
		result = append(result, dt)
	}
	return result, rows.Err()
}

// SubjectMinutes returns study minutes between from and to, inclusive,
// grouped by subject, largest first.
func (s *Store) SubjectMinutes(ctx context.Context, userID string, from, to time.Time) ([]SubjectTotal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sub.id, sub.name, SUM(p.minutes) AS mins
		 FROM progress p
		 JOIN tasks t ON p.task_id = t.id
		 JOIN subjects sub ON t.subject_id = sub.id
		 WHERE p.user_id = ? AND p.date BETWEEN ? AND ?
		 GROUP BY sub.id, sub.name
		 ORDER BY mins DESC, sub.name ASC`,
		userID, from.Format(task.DateFormat), to.Format(task.DateFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching subject study time: %w", err)
	}
	defer rows.Close()

	var result []SubjectTotal
	for rows.Next() {
		var st SubjectTotal
		if err := rows.Scan(&st.SubjectID, &st.Name, &st.Minutes); err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

// MinutesByTask returns total minutes spent per task.
// Only tasks with at least one entry are present in the result.
func (s *Store) MinutesByTask(ctx context.Context, userID string) (map[int]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT task_id, SUM(minutes) FROM progress WHERE user_id = ? GROUP BY task_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching per-task study time: %w", err)
	}
	defer rows.Close()

	result := make(map[int]int)
	for rows.Next() {
		var id, mins int
		if err := rows.Scan(&id, &mins); err != nil {
			return nil, err
		}
		if mins > 0 {
			result[id] = mins
		}
	}
	return result, rows.Err()
}
