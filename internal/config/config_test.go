package config

import (
	"os"
	"testing"
)

func TestGetPaths(t *testing.T) {
	paths := GetPaths()

	if paths.ConfigDir == "" {
		t.Fatal("ConfigDir should not be empty")
	}
	if paths.DataDir == "" {
		t.Fatal("DataDir should not be empty")
	}
	if paths.ConfigFile == "" {
		t.Fatal("ConfigFile should not be empty")
	}
	if paths.DBFile == "" {
		t.Fatal("DBFile should not be empty")
	}
}

func TestGetPathsRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/testxdg/config")
	t.Setenv("XDG_DATA_HOME", "/tmp/testxdg/data")

	paths := GetPaths()

	if paths.ConfigDir != "/tmp/testxdg/config/studyplan" {
		t.Fatalf("expected /tmp/testxdg/config/studyplan, got %s", paths.ConfigDir)
	}
	if paths.DBFile != "/tmp/testxdg/data/studyplan/studyplan.db" {
		t.Fatalf("expected /tmp/testxdg/data/studyplan/studyplan.db, got %s", paths.DBFile)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Schedule.Strategy != DefaultStrategy {
		t.Fatalf("expected strategy %q, got %q", DefaultStrategy, cfg.Schedule.Strategy)
	}
	if got := cfg.Schedule.MaxHoursOrDefault(); got != DefaultMaxHours {
		t.Fatalf("expected max hours %d, got %d", DefaultMaxHours, got)
	}
	if got := cfg.Schedule.TasksPerSubjectOrDefault(); got != DefaultTasksPerSubject {
		t.Fatalf("expected tasks per subject %d, got %d", DefaultTasksPerSubject, got)
	}
	if got := cfg.Schedule.SuggestLimitOrDefault(); got != DefaultSuggestLimit {
		t.Fatalf("expected suggest limit %d, got %d", DefaultSuggestLimit, got)
	}
}

func TestScheduleExplicitValues(t *testing.T) {
	s := ScheduleConfig{MaxHours: IntPtr(3), SuggestLimit: IntPtr(10)}
	if got := s.MaxHoursOrDefault(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := s.SuggestLimitOrDefault(); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := s.StrategyOrDefault(); got != DefaultStrategy {
		t.Fatalf("expected default strategy for empty value, got %q", got)
	}
}

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")

	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs failed: %v", err)
	}

	for _, dir := range []string{paths.ConfigDir, paths.DataDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("dir %s not created: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", dir)
		}
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")

	if Initialized() {
		t.Fatal("expected fresh dir to be uninitialized")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Schedule.Strategy != DefaultStrategy {
		t.Fatalf("expected default strategy, got %q", cfg.Schedule.Strategy)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")

	cfg := &Config{
		User:     UserConfig{Name: "Alice", ID: "0b6c3a52-8d6e-4f5b-9f1e-2f7c9f0f4a11"},
		Schedule: ScheduleConfig{Strategy: "deadline", MaxHours: IntPtr(4)},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Initialized() {
		t.Fatal("expected Initialized after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User != cfg.User {
		t.Fatalf("user mismatch: got %+v, want %+v", loaded.User, cfg.User)
	}
	if loaded.Schedule.Strategy != "deadline" {
		t.Fatalf("expected strategy deadline, got %q", loaded.Schedule.Strategy)
	}
	if loaded.Schedule.MaxHours == nil || *loaded.Schedule.MaxHours != 4 {
		t.Fatalf("expected max_hours 4, got %v", loaded.Schedule.MaxHours)
	}
	if loaded.Schedule.SuggestLimit != nil {
		t.Fatalf("expected unset suggest_limit, got %v", *loaded.Schedule.SuggestLimit)
	}
}
