// Build information is injected through ldflags, e.g.
//   go build -ldflags "-X github.com/nobletooth/primer/pkg/utils.Version=v1.2.0" ./cmd/bubblesort
// Every binary reports it through the --print_version flag.

package utils

import (
	"log/slog"
	"strconv"
	"time"
)

var (
	TestMode   string // Should be "true" when building for tests; makes invariant violations panic.
	IsTestMode bool
	Version    string
	Commit     string
	BuildTime  string
	StartTime  time.Time
)

func init() {
	StartTime = time.Now()

	// If build info is not set, make that clear; dev builds still carry a valid semantic version.
	if Version == "" {
		Version = "v0.0.0-dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
	if BuildTime == "" {
		BuildTime = "unknown"
	}
	if len(TestMode) > 0 {
		if isTestMode, err := strconv.ParseBool(TestMode); err == nil {
			IsTestMode = isTestMode
		} else {
			slog.Warn("Failed to parse TestMode build flag, defaulting to false", "error", err)
		}
	}
}

// LogBuildInfo logs the build information of the running `binary`.
func LogBuildInfo(binary string) {
	slog.Info("Build info.", "binary", binary, "version", Version, "commit", Commit, "build", BuildTime,
		"uptime", time.Since(StartTime).String())
}
