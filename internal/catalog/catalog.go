// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"path/filepath"

	"github.com/bitforge-eda/bitforge/pkg/platform"
	"github.com/bitforge-eda/bitforge/pkg/semver"
)

type (
	// EnvVar is a single name/value pair a package adds to the process
	// environment. Pairs are kept as an ordered list, not a map: when two
	// packages set the same variable, application order decides the winner.
	EnvVar struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	// EnvSection declares the environment a package needs to be invocable.
	// Every package must declare one, even if empty.
	EnvSection struct {
		Path []string `json:"path,omitempty"`
		Vars []EnvVar `json:"vars,omitempty"`
	}

	// PackageDef describes one toolchain package in the distribution.
	PackageDef struct {
		// Name is the unique package name, e.g. "oss-cad-suite".
		Name string `json:"name"`

		// Folder is the directory name under the packages root. Empty means
		// the package has no filesystem footprint of its own.
		Folder string `json:"folder,omitempty"`

		// Platforms lists the platform IDs the package applies to.
		// Empty means all platforms.
		Platforms []platform.ID `json:"platforms,omitempty"`

		// Env is the package's environment declaration. The loader rejects
		// catalogs without one; programmatically built registries may still
		// carry a nil Env, which the composer treats as a contract violation.
		Env *EnvSection `json:"env"`
	}

	// Distribution pins the version requirement for each package.
	Distribution struct {
		// Packages maps package name to a version constraint expression,
		// e.g. ">=0.0.9". A package absent from the map is unconstrained.
		Packages map[string]string `json:"packages"`
	}

	// Catalog is the full package registry for one bitforge distribution.
	// Packages holds every known package in declaration order, including
	// ones that do not apply to the current platform.
	Catalog struct {
		Packages     []PackageDef `json:"packages"`
		Distribution Distribution `json:"distribution"`

		byName map[string]*PackageDef
	}
)

// AppliesTo reports whether the package is applicable to the given platform.
func (p *PackageDef) AppliesTo(id platform.ID) bool {
	if len(p.Platforms) == 0 {
		return true
	}
	for _, pid := range p.Platforms {
		if pid == id {
			return true
		}
	}
	return false
}

// index (re)builds the name lookup table. Called by the loader and by New.
func (c *Catalog) index() {
	c.byName = make(map[string]*PackageDef, len(c.Packages))
	for i := range c.Packages {
		c.byName[c.Packages[i].Name] = &c.Packages[i]
	}
}

// New builds a Catalog from already-decoded package definitions. Intended
// for tests and for callers that assemble registries programmatically.
func New(packages []PackageDef, dist Distribution) *Catalog {
	c := &Catalog{Packages: packages, Distribution: dist}
	c.index()
	return c
}

// IsKnown reports whether name exists in the catalog at all, regardless of
// platform applicability.
func (c *Catalog) IsKnown(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Get returns the package definition for name.
func (c *Catalog) Get(name string) (*PackageDef, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// PlatformPackages returns the packages applicable to the given platform,
// preserving catalog declaration order.
func (c *Catalog) PlatformPackages(id platform.ID) []PackageDef {
	var out []PackageDef
	for _, p := range c.Packages {
		if p.AppliesTo(id) {
			out = append(out, p)
		}
	}
	return out
}

// Requirement returns the version spec required for the named package.
// A package with no distribution entry is unconstrained. A present but
// malformed constraint expression is reported as an error; it is catalog
// data the user cannot fix by reinstalling.
func (c *Catalog) Requirement(name string) (semver.Spec, error) {
	expr, ok := c.Distribution.Packages[name]
	if !ok {
		return semver.Any(), nil
	}
	return semver.ParseSpec(expr)
}

// PackageDir resolves the installation directory for the named package
// under the given packages root. The second return is false for packages
// with no filesystem footprint.
func (c *Catalog) PackageDir(root, name string) (string, bool) {
	p, ok := c.byName[name]
	if !ok || p.Folder == "" {
		return "", false
	}
	return filepath.Join(root, p.Folder), true
}
