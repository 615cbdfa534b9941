// SPDX-License-Identifier: MPL-2.0

package pkgenv

import (
	"errors"
	"fmt"

	"github.com/bitforge-eda/bitforge/pkg/semver"
)

// Sentinel errors for the three user-correctable verification failures.
// Each is wrapped by the corresponding typed error below.
var (
	ErrNotInstalled     = errors.New("package not installed")
	ErrVersionMismatch  = errors.New("package version mismatch")
	ErrDirectoryMissing = errors.New("package directory missing")
)

type (
	// NotInstalledError reports a required package absent from the profile.
	NotInstalledError struct {
		Package string
	}

	// VersionMismatchError reports an installed version that fails the
	// distribution's constraint. Installed may be a string that does not
	// even parse as a semantic version; that still counts as a mismatch.
	VersionMismatchError struct {
		Package   string
		Installed string
		Required  semver.Spec
	}

	// DirectoryMissingError reports a package that passed the version
	// check but whose installation directory is gone from disk.
	DirectoryMissingError struct {
		Package string
		Dir     string
	}
)

// Error implements the error interface.
func (e *NotInstalledError) Error() string {
	return fmt.Sprintf("package '%s' is not installed", e.Package)
}

// Unwrap returns ErrNotInstalled so callers can use errors.Is for programmatic detection.
func (e *NotInstalledError) Unwrap() error { return ErrNotInstalled }

// Error implements the error interface.
func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("package '%s' version %s does not match the requirement for version %s",
		e.Package, e.Installed, e.Required)
}

// Unwrap returns ErrVersionMismatch so callers can use errors.Is for programmatic detection.
func (e *VersionMismatchError) Unwrap() error { return ErrVersionMismatch }

// Error implements the error interface.
func (e *DirectoryMissingError) Error() string {
	return fmt.Sprintf("package '%s' is installed but missing", e.Package)
}

// Unwrap returns ErrDirectoryMissing so callers can use errors.Is for programmatic detection.
func (e *DirectoryMissingError) Unwrap() error { return ErrDirectoryMissing }
