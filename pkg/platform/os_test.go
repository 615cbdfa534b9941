// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"strings"
	"testing"
)

func TestHost_ReturnsKnownID(t *testing.T) {
	known := map[ID]bool{
		LinuxX8664:   true,
		LinuxAarch64: true,
		DarwinX8664:  true,
		DarwinArm64:  true,
		WindowsAmd64: true,
	}

	host := Host()
	if !known[host] {
		t.Errorf("Host() = %q, not a known platform id", host)
	}

	switch runtime.GOOS {
	case Linux, Darwin, Windows:
		if !strings.HasPrefix(string(host), runtime.GOOS) {
			t.Errorf("Host() = %q, inconsistent with GOOS %q", host, runtime.GOOS)
		}
	}
}

func TestIsWindows(t *testing.T) {
	if IsWindows() != (runtime.GOOS == Windows) {
		t.Errorf("IsWindows() = %v, GOOS = %q", IsWindows(), runtime.GOOS)
	}
}
