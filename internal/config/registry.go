package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeInt    KeyType = "int"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	// Type is the value's data type.
	Type KeyType
	// Desc is a human-readable description shown in `studyplan config list`.
	Desc string
	// DefaultStr is the string representation of the default value.
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:       KeyTypeString,
		Desc:       "Display name",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.User.Name },
		set:        func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset:      func(cfg *Config) { cfg.User.Name = "" },
	},
	"schedule.strategy": {
		Type:       KeyTypeString,
		Desc:       "Default strategy (balanced, deadline, priority, overdue)",
		DefaultStr: DefaultStrategy,
		get:        func(cfg *Config) string { return cfg.Schedule.StrategyOrDefault() },
		set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			switch v {
			case "balanced", "deadline", "priority", "overdue":
				cfg.Schedule.Strategy = v
				return nil
			default:
				return fmt.Errorf("invalid strategy %q (use balanced, deadline, priority or overdue)", v)
			}
		},
		unset: func(cfg *Config) { cfg.Schedule.Strategy = DefaultStrategy },
	},
	"schedule.max_hours": intKey(
		"Daily study budget in hours (1-16)", DefaultMaxHours, 1, 16,
		func(cfg *Config) **int { return &cfg.Schedule.MaxHours },
	),
	"schedule.tasks_per_subject": intKey(
		"Tasks per subject for `plan balance`", DefaultTasksPerSubject, 1, 100,
		func(cfg *Config) **int { return &cfg.Schedule.TasksPerSubject },
	),
	"schedule.suggest_limit": intKey(
		"Number of tasks for `plan suggest`", DefaultSuggestLimit, 1, 100,
		func(cfg *Config) **int { return &cfg.Schedule.SuggestLimit },
	),
}

// intKey builds an entry for an optional bounded integer field.
func intKey(desc string, def, lo, hi int, field func(*Config) **int) *KeyEntry {
	return &KeyEntry{
		Type:       KeyTypeInt,
		Desc:       desc,
		DefaultStr: strconv.Itoa(def),
		get:        func(cfg *Config) string { return strconv.Itoa(intOr(*field(cfg), def)) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("not an integer: %q", v)
			}
			if n < lo || n > hi {
				return fmt.Errorf("value %d out of range (%d-%d)", n, lo, hi)
			}
			*field(cfg) = IntPtr(n)
			return nil
		},
		unset: func(cfg *Config) { *field(cfg) = nil },
	}
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}
