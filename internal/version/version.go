// Package version carries the build information injected with ldflags:
// -ldflags="-X github.com/renato0307/devcon/internal/version.Version=v1.0.0 ..."
package version

import "fmt"

// Tagline is the application's tagline used in help text and the banner
const Tagline = "Device console, OTA supervisor and task watchdog"

var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("devcon %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
