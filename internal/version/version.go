// Package version holds the build-time version string hopscotch
// reports via its "version" subcommand.
package version

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// String is the build version, normally overridden at link time with
// -ldflags "-X github.com/1homsi/hopscotch/internal/version.String=vX.Y.Z".
var String = "dev"

// Validate rejects a build-injected version string that isn't "dev"
// and isn't a valid semantic version, so a broken release build fails
// loudly instead of printing garbage.
func Validate() error {
	if String == "dev" {
		return nil
	}
	v := String
	if v == "" || v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version %q: not \"dev\" and not a valid semantic version", String)
	}
	return nil
}
