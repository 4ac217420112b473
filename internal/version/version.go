// Package version holds the DiskPrices build stamp. The variables are set
// with -ldflags "-X github.com/HerbHall/diskprices/internal/version.Version=...".
package version

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info is the one-line form printed by `diskprices version`.
func Info() string {
	return fmt.Sprintf("DiskPrices %s (commit: %s, built: %s, go: %s)",
		Version, GitCommit, BuildDate, runtime.Version())
}

// Short returns the bare version, "dev" for local builds.
func Short() string {
	return Version
}

// Map is the JSON form served by the health endpoint.
func Map() map[string]string {
	return map[string]string{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
	}
}

// Fields returns the build stamp as zap fields for the startup log line.
func Fields() []zap.Field {
	return []zap.Field{
		zap.String("version", Version),
		zap.String("commit", GitCommit),
		zap.String("built", BuildDate),
	}
}
