// SPDX-License-Identifier: MPL-2.0

package pkgenv

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/bitforge-eda/bitforge/internal/catalog"
	"github.com/bitforge-eda/bitforge/pkg/platform"
)

// SetupOptions tunes Setup's diagnostics.
type SetupOptions struct {
	// Verbose dumps the pending mutations before applying them.
	Verbose bool

	// Out receives the verbose dump. Defaults to io.Discard when nil.
	Out io.Writer

	// Logger receives debug diagnostics. Defaults to a discarding logger
	// when nil.
	Logger *log.Logger
}

// Setup establishes the toolchain environment for this process: it
// composes the mutations declared by every package applicable to the
// given platform (installed or not) and applies them to env on the first
// call. Later calls recompose but skip the application, so PATH is never
// extended twice; st carries that guarantee across call sites.
func Setup(st *State, cat *catalog.Catalog, plat platform.ID, env Environ, opts SetupOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m, err := Compose(cat.PlatformPackages(plat))
	if err != nil {
		return err
	}

	if opts.Verbose {
		out := opts.Out
		if out == nil {
			out = io.Discard
		}
		Dump(m, out, platform.IsWindows())
	}

	if st.IsApplied() {
		logger.Debug("environment already set, skipping", "paths", len(m.Paths), "vars", len(m.Vars))
		return nil
	}

	Apply(m, env)
	st.MarkApplied()
	logger.Debug("environment set for packages", "paths", len(m.Paths), "vars", len(m.Vars))
	return nil
}
