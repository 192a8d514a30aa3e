// Package user manages local study profiles. Every task, subject and progress
// entry belongs to exactly one profile.
package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a profile id does not exist.
var ErrNotFound = errors.New("user: not found")

// User is a local study profile.
type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Store handles profile persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new profile store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Add creates a profile with a fresh random id.
func (s *Store) Add(ctx context.Context, name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("profile name cannot be empty")
	}
	u := &User{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)`,
		u.ID, u.Name, u.CreatedAt.Format("2006-01-02 15:04:05"),
	); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	return u, nil
}

// Get returns a profile by id.
func (s *Store) Get(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	var u User
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", created)
	return &u, nil
}

// List returns all profiles, oldest first.
func (s *Store) List(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM users ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		var created string
		if err := rows.Scan(&u.ID, &u.Name, &created); err != nil {
			return nil, err
		}
		u.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", created)
		users = append(users, u)
	}
	return users, rows.Err()
}
