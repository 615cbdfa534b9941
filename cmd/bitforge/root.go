// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/bitforge-eda/bitforge/internal/config"
	"github.com/bitforge-eda/bitforge/internal/issue"
	"github.com/bitforge-eda/bitforge/internal/pkgenv"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// explain renders the full Markdown remediation page on failure
	explain bool

	// envState is the process-wide applied-once guard for environment
	// mutations. It is owned here, at the top of the process, and handed
	// to pkgenv.Setup so repeated command paths never extend PATH twice.
	envState = pkgenv.NewState()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "bitforge",
		Short: "A package/environment manager for FPGA toolchains",
		Long: TitleStyle.Render("bitforge") + SubtitleStyle.Render(" - A package/environment manager for FPGA toolchains") + `

bitforge tracks the external toolchain packages (synthesis, place-and-route,
bitstream tools) a distribution requires, verifies installed versions against
the distribution's semantic-version constraints, and computes the process
environment needed to invoke those toolchains.

` + SubtitleStyle.Render("Examples:") + `
  bitforge env                      Show the pending environment mutations
  bitforge check oss-cad-suite      Verify required packages are usable
  bitforge packages list            Show per-package installation status`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&explain, "explain", false, "show full remediation guidance on failure")

	// Add subcommands
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(packagesCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(issue.ExitCodeFor(err)))
	}
}

// initRootConfig reads the config file and applies UI defaults.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFileOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
}

// reportError prints a user-facing diagnostic for err and converts it to
// an ExitError carrying the right exit status. Internal errors and user
// errors stay distinguishable from the shell.
func reportError(cmd *cobra.Command, err error) error {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), ae.Format(verbose))
		if explain && ae.Page != 0 {
			if page := issue.Get(ae.Page); page != nil {
				if rendered, rerr := page.Render("dark"); rerr == nil {
					fmt.Fprint(os.Stderr, rendered)
				}
			}
		}
	} else {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("Error:"), err)
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: issue.ExitCodeFor(err), Err: err}
}
