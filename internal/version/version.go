// Package version carries build metadata injected at link time.
package version

import "fmt"

var (
	// Version is the release tag, set via -ldflags.
	Version = "dev"
	// Commit is the short git hash of the build.
	Commit = "unknown"
)

// String formats the version for display.
func String() string {
	return fmt.Sprintf("famigo %s (%s)", Version, Commit)
}
