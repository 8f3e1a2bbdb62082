// Package buildinfo carries version metadata stamped at release build time.
package buildinfo

// Overridden via -ldflags; defaults describe a local dev build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
