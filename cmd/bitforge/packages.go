// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bitforge-eda/bitforge/internal/pkgenv"
)

// packagesCmd groups package-status subcommands. Download and installation
// are handled by the packaging backend, not here.
var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Inspect toolchain package status",
}

// packagesListCmd shows every catalog package with its verification status.
// Unlike check, it does not stop at the first broken package: the table is
// the aggregate view.
var packagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog packages and their installation status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newAppContext()
		if err != nil {
			return reportError(cmd, err)
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			SubtitleStyle.Render("PACKAGE"),
			SubtitleStyle.Render("STATUS"),
			SubtitleStyle.Render("INSTALLED"),
			SubtitleStyle.Render("REQUIRED"))

		for _, pkg := range app.Catalog.Packages {
			name := PkgStyle.Render(pkg.Name)

			if !pkg.AppliesTo(app.Platform) {
				fmt.Fprintf(w, "%s\t%s\t-\t-\n", name, WarningStyle.Render("not applicable"))
				continue
			}

			res, err := app.Verifier.Check(pkg.Name)
			if err != nil {
				return reportError(cmd, err)
			}

			status := statusStyle(res.Outcome).Render(res.Outcome.String())
			installed := res.Installed
			if installed == "" {
				installed = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, status, installed, res.Required)
		}

		w.Flush()
		return nil
	},
}

func statusStyle(o pkgenv.Outcome) interface{ Render(...string) string } {
	if o == pkgenv.OutcomeSatisfied {
		return SuccessStyle
	}
	return ErrorStyle
}

func init() {
	packagesCmd.AddCommand(packagesListCmd)
}
