// Package version carries the build-time version stamp, set via
// linker flags by the release build.
package version

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	version     = "dev"
	buildCommit = "none"
	buildTime   = "unknown"
)

// GetVersionString returns the standard version header printed by
// --version.
func GetVersionString() string {
	return fmt.Sprintf("%s %v (%s), built %v", filepath.Base(os.Args[0]), version, buildCommit, buildTime)
}

// GetVersion returns the semver-compatible version number.
func GetVersion() string { return version }
