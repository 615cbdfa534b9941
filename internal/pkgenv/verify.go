// SPDX-License-Identifier: MPL-2.0

package pkgenv

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/bitforge-eda/bitforge/internal/catalog"
	"github.com/bitforge-eda/bitforge/internal/issue"
	"github.com/bitforge-eda/bitforge/internal/profile"
	"github.com/bitforge-eda/bitforge/pkg/platform"
	"github.com/bitforge-eda/bitforge/pkg/semver"
)

// Outcome is the verification result for one package.
type Outcome int

const (
	// OutcomeSatisfied means the package is installed, version-compatible,
	// and present on disk.
	OutcomeSatisfied Outcome = iota
	// OutcomeNotInstalled means the profile has no record for the package.
	OutcomeNotInstalled
	// OutcomeVersionMismatch means the installed version fails the
	// distribution constraint (including unparsable version strings).
	OutcomeVersionMismatch
	// OutcomeDirectoryMissing means the version check passed but the
	// installation directory is absent.
	OutcomeDirectoryMissing
)

// String returns a short human-readable label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSatisfied:
		return "ok"
	case OutcomeNotInstalled:
		return "not installed"
	case OutcomeVersionMismatch:
		return "version mismatch"
	case OutcomeDirectoryMissing:
		return "missing on disk"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type (
	// Result is the full verification outcome for one package.
	// Computed per call, never persisted.
	Result struct {
		Outcome   Outcome
		Installed string      // installed version, when any record exists
		Required  semver.Spec // the distribution's requirement
		Dir       string      // resolved install dir, when the package has one
	}

	// DirExistsFunc answers whether a directory exists. Injectable so the
	// decision ladder is testable without a real filesystem layout.
	DirExistsFunc func(path string) bool

	// Verifier gates toolchain invocations: it checks that every package an
	// operation requires is usable on this machine.
	Verifier struct {
		Catalog     *catalog.Catalog
		Profile     *profile.Profile
		Platform    platform.ID
		PackagesDir string // root directory that installed packages live under

		// DirExists defaults to an os.Stat-backed check when nil.
		DirExists DirExistsFunc

		// Logger receives debug diagnostics. Defaults to discarding when nil.
		Logger *log.Logger
	}
)

// CheckOne applies the verification decision ladder for a single package:
// installed at all, then version against requirement, then directory on
// disk. The order matters: directory existence is only meaningful once the
// version is known to be valid. dir is the resolved installation directory,
// or empty for packages with no filesystem footprint (the directory check
// is skipped for those).
func CheckOne(installed string, isInstalled bool, required semver.Spec, dir string, dirExists DirExistsFunc) Result {
	if !isInstalled {
		return Result{Outcome: OutcomeNotInstalled, Required: required}
	}

	if !required.Satisfies(installed) {
		return Result{Outcome: OutcomeVersionMismatch, Installed: installed, Required: required}
	}

	if dir != "" && !dirExists(dir) {
		return Result{Outcome: OutcomeDirectoryMissing, Installed: installed, Required: required, Dir: dir}
	}

	return Result{Outcome: OutcomeSatisfied, Installed: installed, Required: required, Dir: dir}
}

// VerifyRequired checks the named packages in the order given and stops at
// the first violation (first-error-wins; remaining names are not checked).
//
// A name unknown to the catalog is an internal error: it indicates a bug
// in the caller or the catalog data, never a user mistake, and carries the
// internal exit status. Packages not applicable to the verifier's platform
// are skipped silently.
func (v *Verifier) VerifyRequired(names ...string) error {
	logger := v.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for _, name := range names {
		pkg, ok := v.Catalog.Get(name)
		if !ok {
			return issue.NewInternalError(
				"verify required packages",
				fmt.Errorf("unknown package %q", name),
			).WithPage(issue.UnknownPackageId)
		}

		if !pkg.AppliesTo(v.Platform) {
			logger.Debug("package not applicable to platform, skipping", "package", name, "platform", v.Platform)
			continue
		}

		res, err := v.Check(name)
		if err != nil {
			return err
		}
		if res.Outcome != OutcomeSatisfied {
			return v.userError(name, res)
		}
		logger.Debug("package ok", "package", name, "version", res.Installed)
	}

	return nil
}

// Check runs the decision ladder for one platform-applicable package.
// The returned error is reserved for configuration problems (a malformed
// constraint in the distribution); user-level failures come back as
// non-Satisfied outcomes.
func (v *Verifier) Check(name string) (Result, error) {
	required, err := v.Catalog.Requirement(name)
	if err != nil {
		return Result{}, issue.NewInternalError("read version requirement", err).
			WithPage(issue.CatalogInvalidId)
	}

	installed, isInstalled := v.Profile.InstalledVersion(name)

	dir, _ := v.Catalog.PackageDir(v.PackagesDir, name)

	dirExists := v.DirExists
	if dirExists == nil {
		dirExists = osDirExists
	}

	return CheckOne(installed, isInstalled, required, dir, dirExists), nil
}

// userError turns a failed Result into the user-facing error with the
// reinstall remediation hint. No automatic remediation is ever attempted.
func (v *Verifier) userError(name string, res Result) error {
	var (
		cause error
		page  issue.Id
	)

	switch res.Outcome {
	case OutcomeNotInstalled:
		cause = &NotInstalledError{Package: name}
		page = issue.PackageNotInstalledId
	case OutcomeVersionMismatch:
		cause = &VersionMismatchError{Package: name, Installed: res.Installed, Required: res.Required}
		page = issue.PackageVersionMismatchId
	case OutcomeDirectoryMissing:
		cause = &DirectoryMissingError{Package: name, Dir: res.Dir}
		page = issue.PackageCorruptedId
	default:
		return issue.NewInternalError("report verification failure",
			fmt.Errorf("unexpected outcome %v for package %q", res.Outcome, name))
	}

	return issue.NewUserError("verify package", name).
		Wrap(cause).
		WithSuggestions(installHints(name)...).
		WithPage(page)
}

// installHints is the remediation hint attached to every verification
// failure: force-reinstall exactly this package, or everything.
func installHints(name string) []string {
	return []string{
		fmt.Sprintf("Run 'bitforge packages install --force %s'", name),
		"Or run 'bitforge packages install --force' to reinstall all packages",
	}
}

// osDirExists is the default DirExistsFunc.
func osDirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
