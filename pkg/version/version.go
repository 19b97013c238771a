// Package version reports the build version of the selectkit binary.
//
// The values are set at link time:
//
//	go build -ldflags "-X github.com/rshade/selectkit/pkg/version.version=v1.2.3 \
//	  -X github.com/rshade/selectkit/pkg/version.gitCommit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Build information, overridden with -ldflags.
//
//nolint:gochecknoglobals // Set by the linker.
var (
	version   = "0.0.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the version string.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// IsRelease reports whether the version is a release semver without a
// prerelease suffix.
func IsRelease() bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// Full returns the version with commit and build date.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, gitCommit, buildDate)
}
