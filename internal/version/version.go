// Package version carries build metadata injected via -ldflags, the
// way the teacher's internal/env package did for its CLI banner.
package version

var (
	Version    = "dev"
	CommitHash = "none"
	BuildTime  = "unknown"
)
