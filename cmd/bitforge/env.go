// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitforge-eda/bitforge/internal/pkgenv"
	"github.com/bitforge-eda/bitforge/pkg/platform"
)

// envCmd shows the environment mutations the platform's packages declare,
// as shell-style assignment lines in final application order. Pure
// diagnostic: the process environment is not touched.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment mutations for the platform's packages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := newAppContext()
		if err != nil {
			return reportError(cmd, err)
		}

		m, err := pkgenv.Compose(app.Catalog.PlatformPackages(app.Platform))
		if err != nil {
			return reportError(cmd, err)
		}

		fmt.Fprintln(os.Stdout, TitleStyle.Render("Environment settings:"))
		pkgenv.Dump(m, os.Stdout, platform.IsWindows())
		return nil
	},
}
