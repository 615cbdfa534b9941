// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// checkCmd establishes the toolchain environment, then verifies that the
// named packages are installed, version-compatible, and present on disk.
// Verification is fail-fast: the first broken package is reported and the
// rest are not checked.
var checkCmd = &cobra.Command{
	Use:   "check <package>...",
	Short: "Verify that required toolchain packages are usable",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newAppContext()
		if err != nil {
			return reportError(cmd, err)
		}

		if err := app.setupEnv(); err != nil {
			return reportError(cmd, err)
		}

		if err := app.Verifier.VerifyRequired(args...); err != nil {
			return reportError(cmd, err)
		}

		fmt.Fprintf(os.Stdout, "%s all required packages are usable\n", SuccessStyle.Render("✓"))
		return nil
	},
}
