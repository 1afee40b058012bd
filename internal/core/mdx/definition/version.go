package definition

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-version"
)

// ErrUnsupportedVersion is returned when a definition declares a format
// version this build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported definition version")

// CurrentVersion is the format version written by this build.
const CurrentVersion = "1.0"

var supportedVersions = version.MustConstraints(version.NewConstraint(">= 1.0, < 2.0"))

// CheckVersion validates a declared format version. An empty version is accepted.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}

	parsed, err := version.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, v, err)
	}
	if !supportedVersions.Check(parsed) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}
