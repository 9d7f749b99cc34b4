package cli

import "fmt"

var (
	// Version information - typically set via ldflags at build time
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// versionTemplate renders --version output.
func versionTemplate() string {
	return fmt.Sprintf("javadecl {{.Version}}\nGit commit: %s\nBuild date: %s\n", GitCommit, BuildDate)
}
