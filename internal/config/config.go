package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level studyplan configuration.
type Config struct {
	User     UserConfig     `toml:"user"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// UserConfig identifies the active local profile.
type UserConfig struct {
	Name string `toml:"name"`
	// ID is the profile id created by `studyplan init`.
	ID string `toml:"id"`
}

// ScheduleConfig holds planning defaults. Nil pointers mean "use the
// built-in default", which keeps an explicit 0 distinguishable from unset.
type ScheduleConfig struct {
	Strategy        string `toml:"strategy,omitempty"`
	MaxHours        *int   `toml:"max_hours,omitempty"`
	TasksPerSubject *int   `toml:"tasks_per_subject,omitempty"`
	SuggestLimit    *int   `toml:"suggest_limit,omitempty"`
}

// Built-in schedule defaults.
const (
	DefaultStrategy        = "balanced"
	DefaultMaxHours        = 8
	DefaultTasksPerSubject = 2
	DefaultSuggestLimit    = 5
)

// StrategyOrDefault returns the configured strategy name or the default.
func (s ScheduleConfig) StrategyOrDefault() string {
	if s.Strategy == "" {
		return DefaultStrategy
	}
	return s.Strategy
}

// MaxHoursOrDefault returns the configured daily budget in hours or the default.
func (s ScheduleConfig) MaxHoursOrDefault() int {
	return intOr(s.MaxHours, DefaultMaxHours)
}

// TasksPerSubjectOrDefault returns the configured balance width or the default.
func (s ScheduleConfig) TasksPerSubjectOrDefault() int {
	return intOr(s.TasksPerSubject, DefaultTasksPerSubject)
}

// SuggestLimitOrDefault returns the configured suggestion count or the default.
func (s ScheduleConfig) SuggestLimitOrDefault() int {
	return intOr(s.SuggestLimit, DefaultSuggestLimit)
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	appConfig := filepath.Join(configDir, "studyplan")
	appData := filepath.Join(dataDir, "studyplan")

	return Paths{
		ConfigDir:  appConfig,
		DataDir:    appData,
		ConfigFile: filepath.Join(appConfig, "config.toml"),
		DBFile:     filepath.Join(appData, "studyplan.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := &Config{}

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if a profile has been set up.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// IntPtr returns a pointer to an int value.
func IntPtr(v int) *int {
	return &v
}

func defaultConfig() *Config {
	return &Config{
		Schedule: ScheduleConfig{Strategy: DefaultStrategy},
	}
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
