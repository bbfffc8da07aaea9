// Package build holds build-time information.
package build

// These values default to development placeholders and can be overwritten
// by linker flags.
var (
	// Version is the application version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
