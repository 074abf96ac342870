// Package build holds the version information stamped into the courgette binary.
package build

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// ShortCommit returns the first 8 characters of Commit.
func ShortCommit() string {
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}
