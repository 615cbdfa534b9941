// SPDX-License-Identifier: MPL-2.0

// Package profile persists what bitforge believes is installed on this
// machine: one record per package with the installed version. The profile
// lives in the bitforge home directory as a TOML file and is updated by
// the packaging backend after every install or uninstall.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the profile file name inside the bitforge home directory.
const FileName = "profile.toml"

type (
	// InstalledPackage records one installed package.
	InstalledPackage struct {
		Version string `toml:"version"`
	}

	// Profile is the installed-package record.
	Profile struct {
		Packages map[string]InstalledPackage `toml:"packages"`
	}
)

// Load reads the profile from the given bitforge home directory.
// A missing file is a valid empty profile, not an error: a fresh machine
// has nothing installed yet.
func Load(homeDir string) (*Profile, error) {
	path := filepath.Join(homeDir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{Packages: map[string]InstalledPackage{}}, nil
		}
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.Packages == nil {
		p.Packages = map[string]InstalledPackage{}
	}
	return &p, nil
}

// Save writes the profile to the given bitforge home directory, creating
// the directory if needed.
func (p *Profile) Save(homeDir string) error {
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		return fmt.Errorf("create home directory %s: %w", homeDir, err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	path := filepath.Join(homeDir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write profile %s: %w", path, err)
	}
	return nil
}

// InstalledVersion returns the installed version for name. The second
// return is false when the package is not installed at all.
func (p *Profile) InstalledVersion(name string) (string, bool) {
	rec, ok := p.Packages[name]
	if !ok {
		return "", false
	}
	return rec.Version, true
}

// SetInstalled records name as installed at version.
func (p *Profile) SetInstalled(name, version string) {
	if p.Packages == nil {
		p.Packages = map[string]InstalledPackage{}
	}
	p.Packages[name] = InstalledPackage{Version: version}
}

// Remove deletes the record for name, if present.
func (p *Profile) Remove(name string) {
	delete(p.Packages, name)
}
