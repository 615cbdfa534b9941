// SPDX-License-Identifier: MPL-2.0

package pkgenv

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitforge-eda/bitforge/internal/catalog"
	"github.com/bitforge-eda/bitforge/internal/issue"
)

type (
	// EnvMutations holds the pending additions to the process environment.
	// A value is built fresh on every composition and never mutated after
	// construction.
	//
	// Paths are in catalog declaration order; the first entry ends up with
	// the highest PATH priority. Vars are ordered (name, value) pairs and
	// are deliberately not deduplicated: when two packages assign the same
	// name, the later assignment wins by application order.
	EnvMutations struct {
		Paths []string
		Vars  []catalog.EnvVar
	}

	// Environ abstracts the ambient process environment so composition can
	// be exercised in tests without touching the real one.
	Environ interface {
		Get(key string) string
		Set(key, value string)
	}

	// osEnviron is the process-backed Environ.
	osEnviron struct{}

	// MapEnviron is a map-backed Environ for tests and dry runs.
	MapEnviron map[string]string
)

func (osEnviron) Get(key string) string { return os.Getenv(key) }
func (osEnviron) Set(key, value string) { os.Setenv(key, value) }

func (m MapEnviron) Get(key string) string { return m[key] }
func (m MapEnviron) Set(key, value string) { m[key] = value }

// OSEnviron returns the Environ backed by the real process environment.
func OSEnviron() Environ { return osEnviron{} }

// Compose collects the environment mutations declared by the given
// packages, in the order given. Callers pass the platform-applicable
// subset of the catalog, already in declaration order.
//
// A package without an env declaration is a malformed registry, not a
// user mistake: the catalog contract requires the section to be present
// even when empty, and composition aborts on the first offender.
func Compose(packages []catalog.PackageDef) (EnvMutations, error) {
	var m EnvMutations

	for _, pkg := range packages {
		if pkg.Env == nil {
			return EnvMutations{}, issue.NewInternalError(
				"compose package environment",
				fmt.Errorf("package %q has no env declaration", pkg.Name),
			).WithPage(issue.CatalogInvalidId)
		}

		m.Paths = append(m.Paths, pkg.Env.Path...)
		m.Vars = append(m.Vars, pkg.Env.Vars...)
	}

	return m, nil
}

// Apply writes the mutations into env. PATH entries are placed ahead of
// the existing PATH in declaration order, so the first-declared package
// has the highest lookup priority. Variables are assigned in collected
// order, so the last assignment to a name wins.
//
// Apply itself is safe to call repeatedly; callers use State to make sure
// PATH is not extended twice in one process.
func Apply(m EnvMutations, env Environ) {
	if len(m.Paths) > 0 {
		items := make([]string, 0, len(m.Paths)+1)
		items = append(items, m.Paths...)
		if old := env.Get("PATH"); old != "" {
			items = append(items, old)
		}
		env.Set("PATH", strings.Join(items, string(os.PathListSeparator)))
	}

	for _, v := range m.Vars {
		env.Set(v.Name, v.Value)
	}
}
