// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"strings"
	"testing"

	"github.com/bitforge-eda/bitforge/pkg/platform"
)

const validCatalog = `
packages: [
	{
		name:   "oss-cad-suite"
		folder: "tools-oss-cad-suite"
		env: {
			path: ["%p/bin", "%p/lib"]
			vars: [
				{name: "YOSYS_DATDIR", value: "%p/share/yosys"},
			]
		}
	},
	{
		name:   "examples"
		folder: "examples"
		env: {}
	},
	{
		name:      "drivers"
		platforms: ["windows_amd64"]
		env: {
			path: ["%p/bin"]
		}
	},
]

distribution: {
	packages: {
		"oss-cad-suite": ">=0.0.9"
		"drivers":       ">=1.1.0"
	}
}
`

func parseValid(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse([]byte(validCatalog), "catalog.cue")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return c
}

func TestParse_PreservesDeclarationOrder(t *testing.T) {
	c := parseValid(t)

	wantOrder := []string{"oss-cad-suite", "examples", "drivers"}
	if len(c.Packages) != len(wantOrder) {
		t.Fatalf("Parse() packages = %d, want %d", len(c.Packages), len(wantOrder))
	}
	for i, name := range wantOrder {
		if c.Packages[i].Name != name {
			t.Errorf("Parse() packages[%d] = %q, want %q", i, c.Packages[i].Name, name)
		}
	}
}

func TestParse_EnvSectionDecoded(t *testing.T) {
	c := parseValid(t)

	pkg, ok := c.Get("oss-cad-suite")
	if !ok {
		t.Fatal("Get(oss-cad-suite) not found")
	}
	if pkg.Env == nil {
		t.Fatal("Get(oss-cad-suite).Env = nil")
	}
	if len(pkg.Env.Path) != 2 || pkg.Env.Path[0] != "%p/bin" {
		t.Errorf("Env.Path = %v, want [%%p/bin %%p/lib]", pkg.Env.Path)
	}
	if len(pkg.Env.Vars) != 1 || pkg.Env.Vars[0].Name != "YOSYS_DATDIR" {
		t.Errorf("Env.Vars = %v, want YOSYS_DATDIR entry", pkg.Env.Vars)
	}
}

func TestParse_EmptyEnvSectionIsPresent(t *testing.T) {
	c := parseValid(t)

	pkg, ok := c.Get("examples")
	if !ok {
		t.Fatal("Get(examples) not found")
	}
	if pkg.Env == nil {
		t.Error("empty env section decoded as nil; must be present")
	}
}

func TestParse_MissingEnvSectionRejected(t *testing.T) {
	src := `
packages: [
	{name: "broken"},
]
distribution: packages: {}
`
	_, err := Parse([]byte(src), "catalog.cue")
	if err == nil {
		t.Fatal("Parse() accepted a package without an env declaration")
	}
}

func TestParse_DuplicatePackageRejected(t *testing.T) {
	src := `
packages: [
	{name: "twice", env: {}},
	{name: "twice", env: {}},
]
distribution: packages: {}
`
	_, err := Parse([]byte(src), "catalog.cue")
	if err == nil || !strings.Contains(err.Error(), "twice") {
		t.Errorf("Parse() error = %v, want duplicate-package error naming 'twice'", err)
	}
}

func TestParse_UnknownPlatformRejected(t *testing.T) {
	src := `
packages: [
	{name: "pkg", platforms: ["amiga"], env: {}},
]
distribution: packages: {}
`
	if _, err := Parse([]byte(src), "catalog.cue"); err == nil {
		t.Error("Parse() accepted an unknown platform id")
	}
}

func TestParse_EmptyConstraintRejected(t *testing.T) {
	src := `
packages: [
	{name: "pkg", env: {}},
]
distribution: packages: {"pkg": ""}
`
	if _, err := Parse([]byte(src), "catalog.cue"); err == nil {
		t.Error("Parse() accepted an empty constraint expression")
	}
}

func TestPlatformPackages(t *testing.T) {
	c := parseValid(t)

	linux := c.PlatformPackages(platform.LinuxX8664)
	for _, p := range linux {
		if p.Name == "drivers" {
			t.Error("PlatformPackages(linux) includes windows-only package")
		}
	}

	windows := c.PlatformPackages(platform.WindowsAmd64)
	if len(windows) != 3 {
		t.Errorf("PlatformPackages(windows) = %d packages, want 3", len(windows))
	}
}

func TestRequirement(t *testing.T) {
	c := parseValid(t)

	spec, err := c.Requirement("oss-cad-suite")
	if err != nil {
		t.Fatalf("Requirement() error: %v", err)
	}
	if !spec.Satisfies("0.1.0") || spec.Satisfies("0.0.8") {
		t.Errorf("Requirement(oss-cad-suite) = %v, want >=0.0.9 semantics", spec)
	}

	// No distribution entry means unconstrained.
	anySpec, err := c.Requirement("examples")
	if err != nil {
		t.Fatalf("Requirement() error: %v", err)
	}
	if !anySpec.IsAny() {
		t.Errorf("Requirement(examples).IsAny() = false, want true")
	}
}

func TestPackageDir(t *testing.T) {
	c := parseValid(t)

	dir, ok := c.PackageDir("/home/user/.bitforge/packages", "oss-cad-suite")
	if !ok {
		t.Fatal("PackageDir(oss-cad-suite) ok = false, want true")
	}
	if !strings.HasSuffix(dir, "tools-oss-cad-suite") {
		t.Errorf("PackageDir() = %q, want folder suffix", dir)
	}

	// drivers has no folder: no filesystem footprint.
	if _, ok := c.PackageDir("/root-dir", "drivers"); ok {
		t.Error("PackageDir(drivers) ok = true, want false for footprint-less package")
	}
}

func TestIsKnown(t *testing.T) {
	c := parseValid(t)

	if !c.IsKnown("drivers") {
		t.Error("IsKnown(drivers) = false, want true (known even when inapplicable)")
	}
	if c.IsKnown("nonexistent") {
		t.Error("IsKnown(nonexistent) = true, want false")
	}
}
