// Package version reports build metadata for the studyplan binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Full returns "version (commit) date".
func Full() string {
	return fmt.Sprintf("%s (%s) %s", Version, Commit, Date)
}

// Short returns the version alone.
func Short() string {
	return Version
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFrom(info)
	}
}

// fillFrom replaces ldflag defaults with module and VCS build info, so
// `go install` builds report something useful. Explicit ldflags win.
func fillFrom(info *debug.BuildInfo) {
	if info == nil {
		return
	}
	if v := info.Main.Version; Version == "dev" && v != "" && v != "(devel)" {
		Version = v
	}
	for _, s := range info.Settings {
		if s.Value == "" {
			continue
		}
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = shortRev(s.Value)
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}

func shortRev(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
