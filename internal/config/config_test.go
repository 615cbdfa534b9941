// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitforge-eda/bitforge/internal/testutil"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	tmp := t.TempDir()
	testutil.SetHomeDir(t, tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	home, err := cfg.HomeDir()
	if err != nil {
		t.Fatalf("HomeDir() error: %v", err)
	}
	if want := filepath.Join(tmp, ".bitforge"); home != want {
		t.Errorf("HomeDir() = %q, want %q", home, want)
	}

	pkgs, err := cfg.PackagesDir()
	if err != nil {
		t.Fatalf("PackagesDir() error: %v", err)
	}
	if want := filepath.Join(tmp, ".bitforge", "packages"); pkgs != want {
		t.Errorf("PackagesDir() = %q, want %q", pkgs, want)
	}

	cat, err := cfg.CatalogPath()
	if err != nil {
		t.Fatalf("CatalogPath() error: %v", err)
	}
	if want := filepath.Join(tmp, ".bitforge", "catalog.cue"); cat != want {
		t.Errorf("CatalogPath() = %q, want %q", cat, want)
	}

	if cfg.UI.Verbose {
		t.Error("UI.Verbose default = true, want false")
	}
}

func TestLoad_ConfigFileOverrides(t *testing.T) {
	tmp := t.TempDir()
	testutil.SetHomeDir(t, tmp)

	cfgPath := filepath.Join(tmp, "config.toml")
	content := `
home = "/custom/bitforge-home"
catalog = "/custom/catalog.cue"

[ui]
verbose = true
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	SetConfigFileOverride(cfgPath)
	t.Cleanup(func() { SetConfigFileOverride("") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	home, err := cfg.HomeDir()
	if err != nil {
		t.Fatalf("HomeDir() error: %v", err)
	}
	if home != "/custom/bitforge-home" {
		t.Errorf("HomeDir() = %q, want configured home", home)
	}

	cat, err := cfg.CatalogPath()
	if err != nil {
		t.Fatalf("CatalogPath() error: %v", err)
	}
	if cat != "/custom/catalog.cue" {
		t.Errorf("CatalogPath() = %q, want configured catalog", cat)
	}

	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true from config file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	testutil.SetHomeDir(t, tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
	t.Setenv("BITFORGE_HOME", "/env/bitforge-home")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	home, err := cfg.HomeDir()
	if err != nil {
		t.Fatalf("HomeDir() error: %v", err)
	}
	if home != "/env/bitforge-home" {
		t.Errorf("HomeDir() = %q, want BITFORGE_HOME value", home)
	}
}

func TestConfigDir_PlatformConvention(t *testing.T) {
	tmp := t.TempDir()
	testutil.SetHomeDir(t, tmp)
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("ConfigDir() = %q, want trailing %q component", dir, AppName)
	}
}
