package version

import (
	_ "embed"
	"fmt"
)

//go:embed VERSION
var Version string

// Set at build time via -ldflags.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Get returns the current version of the application
func Get() string {
	return Version
}

// Detailed returns the version with build metadata.
func Detailed() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
