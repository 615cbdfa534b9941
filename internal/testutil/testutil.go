// SPDX-License-Identifier: MPL-2.0

// Package testutil provides small helpers shared by tests.
package testutil

import (
	"runtime"
	"testing"
)

// SetHomeDir points the platform's home environment variable at dir for
// the duration of the test: USERPROFILE on Windows, HOME elsewhere.
func SetHomeDir(t testing.TB, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", dir)
	} else {
		t.Setenv("HOME", dir)
	}
}
