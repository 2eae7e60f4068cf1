// Package build holds version information set at link time with
// -ldflags "-X github.com/moltenlabs/brand/internal/build.Version=...".
package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
