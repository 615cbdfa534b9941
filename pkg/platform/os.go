// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ID is the catalog-facing platform identifier, e.g. "linux_x86_64".
// Package definitions list the IDs they apply to.
type ID string

// Known platform identifiers. These mirror the values used in the
// distribution catalog.
const (
	LinuxX8664   ID = "linux_x86_64"
	LinuxAarch64 ID = "linux_aarch64"
	DarwinX8664  ID = "darwin_x86_64"
	DarwinArm64  ID = "darwin_arm64"
	WindowsAmd64 ID = "windows_amd64"
)

// Host returns the platform identifier for the running host.
func Host() ID {
	switch runtime.GOOS {
	case Windows:
		return WindowsAmd64
	case Darwin:
		if runtime.GOARCH == "arm64" {
			return DarwinArm64
		}
		return DarwinX8664
	default:
		if runtime.GOARCH == "arm64" {
			return LinuxAarch64
		}
		return LinuxX8664
	}
}

// IsWindows reports whether the running host is Windows. The env dump
// emits cmd.exe syntax when true.
func IsWindows() bool {
	return runtime.GOOS == Windows
}
