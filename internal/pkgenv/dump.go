// SPDX-License-Identifier: MPL-2.0

package pkgenv

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// dumpNameStyle highlights variable names in the env dump.
var dumpNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D946EF"))

// Dump renders the pending mutations as shell-style assignment lines, one
// per mutation, in the syntax of the host shell. PATH lines are emitted in
// reverse collection order: each line prepends to PATH, so executing them
// top to bottom reproduces the exact PATH that Apply builds.
//
// This is a diagnostic; it performs no environment changes.
func Dump(m EnvMutations, w io.Writer, windows bool) {
	for i := len(m.Paths) - 1; i >= 0; i-- {
		name := dumpNameStyle.Render("PATH")
		if windows {
			fmt.Fprintf(w, "@set %s=%s;%%PATH%%\n", name, m.Paths[i])
		} else {
			fmt.Fprintf(w, "%s=\"%s:$PATH\"\n", name, m.Paths[i])
		}
	}

	for _, v := range m.Vars {
		name := dumpNameStyle.Render(v.Name)
		if windows {
			fmt.Fprintf(w, "@set %s=%s\n", name, v.Value)
		} else {
			fmt.Fprintf(w, "%s=\"%s\"\n", name, v.Value)
		}
	}
}
