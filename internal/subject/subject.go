package subject

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
)

// ErrNotFound is returned when a subject does not exist for the requesting user.
var ErrNotFound = errors.New("subject: not found")

// Store handles subject persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new subject store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Add creates a subject for userID and returns its ID.
func (s *Store) Add(ctx context.Context, userID, name string, priority task.Priority) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("subject name cannot be empty")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO subjects (user_id, name, priority, created_at) VALUES (?, ?, ?, ?)`,
		userID, name, priority.String(), time.Now().UTC().Format(task.DueFormat),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("subject %q already exists", name)
		}
		return 0, err
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// Get returns a subject by ID, scoped to userID.
func (s *Store) Get(ctx context.Context, userID string, id int) (*task.Subject, error) {
	var sub task.Subject
	var prio string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, priority FROM subjects WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&sub.ID, &sub.UserID, &sub.Name, &prio)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("subject #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	sub.Priority = priorityFromDB(prio)
	return &sub, nil
}

// Resolve finds a subject by numeric ID or by case-insensitive name.
func (s *Store) Resolve(ctx context.Context, userID, ref string) (*task.Subject, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return s.Get(ctx, userID, id)
	}

	var sub task.Subject
	var prio string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, priority FROM subjects WHERE user_id = ? AND name = ? COLLATE NOCASE`,
		userID, ref,
	).Scan(&sub.ID, &sub.UserID, &sub.Name, &prio)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("subject %q: %w", ref, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	sub.Priority = priorityFromDB(prio)
	return &sub, nil
}

// List returns all subjects for userID ordered by name.
func (s *Store) List(ctx context.Context, userID string) ([]task.Subject, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, priority FROM subjects WHERE user_id = ? ORDER BY name COLLATE NOCASE ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []task.Subject
	for rows.Next() {
		var sub task.Subject
		var prio string
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.Name, &prio); err != nil {
			return nil, err
		}
		sub.Priority = priorityFromDB(prio)
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}

// Names returns a map of subject ID to name for userID.
func (s *Store) Names(ctx context.Context, userID string) (map[int]string, error) {
	subjects, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(subjects))
	for _, sub := range subjects {
		names[sub.ID] = sub.Name
	}
	return names, nil
}

func priorityFromDB(s string) task.Priority {
	p, err := task.ParsePriority(s)
	if err != nil {
		return task.PrioMedium
	}
	return p
}
