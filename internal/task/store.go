package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a task id does not exist.
var ErrNotFound = errors.New("task: not found")

// ErrInvalidRecurrence is returned when a task's recurrence fields are inconsistent.
var ErrInvalidRecurrence = errors.New("task: invalid recurrence")

// Store handles task persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new task store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListOptions configures which tasks List returns.
type ListOptions struct {
	// ShowDone includes completed tasks in the result.
	ShowDone bool
	// SubjectID restricts the result to one subject. Zero means all subjects.
	SubjectID int
}

const taskColumns = `id, user_id, subject_id, title, description, due_at, completed, priority, recurring, frequency, recurrence_end, created_at`

// Add creates a new task and returns its ID. A non-recurring task never
// carries a frequency or end instant; a recurring task needs a frequency and,
// when an end instant is given, it must fall after the due instant.
func (s *Store) Add(ctx context.Context, t Task) (int, error) {
	if t.Priority.Weight() == 0 {
		t.Priority = PrioMedium
	}
	var freq, end any
	if t.Recurring {
		if t.Frequency.DaysInterval() == 0 {
			return 0, fmt.Errorf("recurring task needs a frequency: %w", ErrInvalidRecurrence)
		}
		freq = string(t.Frequency)
		if t.RecurrenceEnd != nil {
			if !t.RecurrenceEnd.After(t.Due) {
				return 0, fmt.Errorf("recurrence end must be after the due date: %w", ErrInvalidRecurrence)
			}
			end = t.RecurrenceEnd.Format(DueFormat)
		}
	}

	recurring := 0
	if t.Recurring {
		recurring = 1
	}
	completed := 0
	if t.Completed {
		completed = 1
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, subject_id, title, description, due_at, completed, priority, recurring, frequency, recurrence_end, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.UserID, t.SubjectID, t.Title, t.Description, t.Due.Format(DueFormat), completed,
		t.Priority.String(), recurring, freq, end, time.Now().UTC().Format(DueFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting task: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// Get returns a single task by ID regardless of owner. Ownership checks are
// the caller's job.
func (s *Store) Get(ctx context.Context, id int) (*Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns a user's tasks in insertion order.
func (s *Store) List(ctx context.Context, userID string, opts ListOptions) ([]Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if !opts.ShowDone {
		query += ` AND completed = 0`
	}
	if opts.SubjectID != 0 {
		query += ` AND subject_id = ?`
		args = append(args, opts.SubjectID)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// Pending returns the user's incomplete tasks.
func (s *Store) Pending(ctx context.Context, userID string) ([]Task, error) {
	return s.List(ctx, userID, ListOptions{})
}

// All returns every task the user owns, complete or not.
func (s *Store) All(ctx context.Context, userID string) ([]Task, error) {
	return s.List(ctx, userID, ListOptions{ShowDone: true})
}

// SetCompleted marks a user's task done or not done.
func (s *Store) SetCompleted(ctx context.Context, userID string, id int, done bool) error {
	var res sql.Result
	var err error
	if done {
		res, err = s.db.ExecContext(ctx,
			`UPDATE tasks SET completed = 1, completed_at = ? WHERE id = ? AND user_id = ?`,
			time.Now().UTC().Format(DueFormat), id, userID,
		)
	} else {
		res, err = s.db.ExecContext(ctx,
			`UPDATE tasks SET completed = 0, completed_at = NULL WHERE id = ? AND user_id = ?`,
			id, userID,
		)
	}
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a user's task.
func (s *Store) Delete(ctx context.Context, userID string, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(r rowScanner) (*Task, error) {
	var t Task
	var due, prio, created string
	var completed, recurring int
	var freq, end sql.NullString

	if err := r.Scan(&t.ID, &t.UserID, &t.SubjectID, &t.Title, &t.Description, &due,
		&completed, &prio, &recurring, &freq, &end, &created); err != nil {
		return nil, err
	}

	var err error
	t.Due, err = time.ParseInLocation(DueFormat, due, time.Local)
	if err != nil {
		return nil, fmt.Errorf("parsing due date of task #%d: %w", t.ID, err)
	}
	t.Completed = completed == 1
	t.Recurring = recurring == 1
	if p, err := ParsePriority(prio); err == nil {
		t.Priority = p
	} else {
		t.Priority = PrioMedium
	}
	if t.Recurring {
		if freq.Valid {
			t.Frequency = Frequency(freq.String)
		}
		if end.Valid && end.String != "" {
			if parsed, err := time.ParseInLocation(DueFormat, end.String, time.Local); err == nil {
				t.RecurrenceEnd = &parsed
			}
		}
	}
	t.CreatedAt, _ = time.Parse(DueFormat, created)
	return &t, nil
}
