package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rnwolfe/studyplan/internal/config"
	"github.com/rnwolfe/studyplan/internal/planner"
	"github.com/rnwolfe/studyplan/internal/progress"
	"github.com/rnwolfe/studyplan/internal/store"
	"github.com/rnwolfe/studyplan/internal/subject"
	"github.com/rnwolfe/studyplan/internal/task"
	"github.com/rnwolfe/studyplan/internal/ui"
	"github.com/rnwolfe/studyplan/internal/user"
)

var errNotInitialized = errors.New("no study profile yet")

// session bundles the open database, the loaded config and the active user.
type session struct {
	db       *store.DB
	cfg      *config.Config
	userID   string
	tasks    *task.Store
	subjects *subject.Store
	progress *progress.Store
}

// openSession loads config, opens the store and verifies the profile exists.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.User.ID == "" {
		return nil, fmt.Errorf("%w — run %s first", errNotInitialized, ui.Accent.Render("studyplan init"))
	}

	db, err := store.Open()
	if err != nil {
		return nil, err
	}

	if _, err := user.NewStore(db.Conn()).Get(ctx, cfg.User.ID); err != nil {
		db.Close()
		if errors.Is(err, user.ErrNotFound) {
			return nil, fmt.Errorf("profile %s is missing from the database — run %s to create a new one",
				cfg.User.ID, ui.Accent.Render("studyplan init --force"))
		}
		return nil, err
	}

	return &session{
		db:       db,
		cfg:      cfg,
		userID:   cfg.User.ID,
		tasks:    task.NewStore(db.Conn()),
		subjects: subject.NewStore(db.Conn()),
		progress: progress.NewStore(db.Conn()),
	}, nil
}

func (s *session) Close() error {
	return s.db.Close()
}

func (s *session) engine() *planner.Engine {
	return planner.New(s.tasks, s.progress)
}

// ownedTask loads a task by ID and hides tasks of other users.
func (s *session) ownedTask(ctx context.Context, id int) (*task.Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != s.userID {
		return nil, fmt.Errorf("task #%d: %w", id, task.ErrNotFound)
	}
	return t, nil
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid task ID — use %s to see IDs", arg, ui.Accent.Render("studyplan task list"))
	}
	return id, nil
}
