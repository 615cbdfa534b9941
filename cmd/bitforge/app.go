// SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/bitforge-eda/bitforge/internal/catalog"
	"github.com/bitforge-eda/bitforge/internal/config"
	"github.com/bitforge-eda/bitforge/internal/pkgenv"
	"github.com/bitforge-eda/bitforge/internal/profile"
	"github.com/bitforge-eda/bitforge/pkg/platform"
)

// appContext bundles the loaded collaborators every command needs: the
// configuration, the package catalog, the installed-package profile, and
// the verifier wired over them.
type appContext struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Profile  *profile.Profile
	Verifier *pkgenv.Verifier
	Platform platform.ID
	Logger   *log.Logger
}

// newAppContext loads the configuration, catalog, and profile, and wires
// the verifier for the running host platform.
func newAppContext() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	catalogPath, err := cfg.CatalogPath()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := cfg.HomeDir()
	if err != nil {
		return nil, err
	}
	prof, err := profile.Load(homeDir)
	if err != nil {
		return nil, err
	}

	packagesDir, err := cfg.PackagesDir()
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "bitforge",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	host := platform.Host()

	return &appContext{
		Config:  cfg,
		Catalog: cat,
		Profile: prof,
		Verifier: &pkgenv.Verifier{
			Catalog:     cat,
			Profile:     prof,
			Platform:    host,
			PackagesDir: packagesDir,
			Logger:      logger,
		},
		Platform: host,
		Logger:   logger,
	}, nil
}

// setupEnv establishes the toolchain environment for this process. The
// applied-once guard lives at the top of the process, so calling this from
// several command paths is safe.
func (a *appContext) setupEnv() error {
	return pkgenv.Setup(envState, a.Catalog, a.Platform, pkgenv.OSEnviron(), pkgenv.SetupOptions{
		Verbose: verbose,
		Out:     os.Stdout,
		Logger:  a.Logger,
	})
}
