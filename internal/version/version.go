package version

import (
	"fmt"
	"runtime"
)

// Build metadata, overridden with -ldflags "-X pomodoro/internal/version.Version=...".
var (
	Version   = "0.1.0-dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// String renders the version line printed by the CLI and logged at startup.
func String() string {
	return fmt.Sprintf("pomodoro %s (commit %s, built %s, %s/%s)",
		Version, Commit, BuildTime, runtime.GOOS, runtime.GOARCH)
}
