// Package version carries build metadata injected by the linker.
package version

import "fmt"

// Populated via -ldflags at build time; the defaults cover go run and tests.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns the human-readable version line.
func String() string {
	return fmt.Sprintf("minicheck %s (%s, built %s)", Version, CommitHash, BuildDate)
}
