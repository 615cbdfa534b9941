// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PackageNotInstalledId Id = iota + 1
	PackageVersionMismatchId
	PackageCorruptedId
	CatalogInvalidId
	UnknownPackageId
)

type MarkdownMsg string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

// Issue is a Markdown remediation page shown for --explain output.
type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	packageNotInstalledIssue = &Issue{
		id: PackageNotInstalledId,
		mdMsg: `
# Package not installed!

An operation requires a toolchain package that is not installed on this
machine. Installed packages are tracked in the bitforge profile file, and
their binaries live under the bitforge home directory.

## Things you can try:
- Install the missing package:
~~~
$ bitforge packages install --force <package>
~~~

- Or reinstall everything the distribution requires:
~~~
$ bitforge packages install --force
~~~

- List package status:
~~~
$ bitforge packages list
~~~`,
	}

	packageVersionMismatchIssue = &Issue{
		id: PackageVersionMismatchId,
		mdMsg: `
# Package version mismatch!

An installed toolchain package does not satisfy the version required by the
current distribution. This usually happens after upgrading bitforge while
keeping an older package installation around.

## Things you can try:
- Force-reinstall the package at the required version:
~~~
$ bitforge packages install --force <package>
~~~

- Or refresh all packages at once:
~~~
$ bitforge packages install --force
~~~`,
	}

	packageCorruptedIssue = &Issue{
		id: PackageCorruptedId,
		mdMsg: `
# Package installed but missing!

The profile says this package is installed at a compatible version, but its
directory is gone from disk. The installation is corrupted or was removed
manually.

## Things you can try:
- Force-reinstall the package:
~~~
$ bitforge packages install --force <package>
~~~

- If several packages are affected, reinstall them all:
~~~
$ bitforge packages install --force
~~~`,
	}

	catalogInvalidIssue = &Issue{
		id: CatalogInvalidId,
		mdMsg: `
# Invalid package catalog!

The package catalog could not be loaded or is malformed. Every package entry
must declare an env section, even an empty one.

## Things you can try:
- Validate the catalog file against the schema (the error above includes the
  CUE path of the offending field)
- Restore the catalog that shipped with your bitforge distribution
- Report a bug if the catalog came from an official distribution`,
	}

	unknownPackageIssue = &Issue{
		id: UnknownPackageId,
		mdMsg: `
# Unknown package!

A command asked bitforge to verify a package name that does not exist in the
catalog at all. This is a bug in bitforge or in the distribution data, not
something a reinstall can fix.

## Things you can try:
- Check for typos if the name came from a command-line argument
- Report a bug with the full command you ran`,
	}

	issues = map[Id]*Issue{
		packageNotInstalledIssue.Id():    packageNotInstalledIssue,
		packageVersionMismatchIssue.Id(): packageVersionMismatchIssue,
		packageCorruptedIssue.Id():       packageCorruptedIssue,
		catalogInvalidIssue.Id():         catalogInvalidIssue,
		unknownPackageIssue.Id():         unknownPackageIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
