package version

import "fmt"

// Version and Commit are injected at build time via -ldflags; the defaults
// are development placeholders.
var (
	Version = "0.1.0"
	Commit  = "dev"
)

// Full returns the complete version string printed by the CLI.
func Full() string {
	return fmt.Sprintf("linkveil %s (%s)", Version, Commit)
}
