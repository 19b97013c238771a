package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentVersion is the configuration schema version this binary writes.
const CurrentVersion = "1.0.0"

// ErrUnsupportedVersion is returned for configs written by a newer major schema.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// CheckVersion accepts an empty version (treated as current) or any semver
// whose major version does not exceed CurrentVersion's.
func CheckVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version: %w", ErrUnsupportedVersion, version, err)
	}

	supported := semver.MustParse(CurrentVersion)
	if v.Major() > supported.Major() {
		return fmt.Errorf("%w: %s is newer than supported %s", ErrUnsupportedVersion, v, supported)
	}
	return nil
}
