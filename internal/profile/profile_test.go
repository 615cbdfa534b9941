// SPDX-License-Identifier: MPL-2.0

package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsEmptyProfile(t *testing.T) {
	p, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(p.Packages) != 0 {
		t.Errorf("Load() packages = %v, want empty", p.Packages)
	}
	if _, ok := p.InstalledVersion("anything"); ok {
		t.Error("InstalledVersion() ok = true on empty profile")
	}
}

func TestSaveAndLoad(t *testing.T) {
	home := filepath.Join(t.TempDir(), "bitforge-home")

	p := &Profile{}
	p.SetInstalled("oss-cad-suite", "0.0.9")
	p.SetInstalled("examples", "0.3.0")
	if err := p.Save(home); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(home)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if v, ok := loaded.InstalledVersion("oss-cad-suite"); !ok || v != "0.0.9" {
		t.Errorf("InstalledVersion(oss-cad-suite) = %q, %v; want %q, true", v, ok, "0.0.9")
	}
	if v, ok := loaded.InstalledVersion("examples"); !ok || v != "0.3.0" {
		t.Errorf("InstalledVersion(examples) = %q, %v; want %q, true", v, ok, "0.3.0")
	}
}

func TestRemove(t *testing.T) {
	p := &Profile{}
	p.SetInstalled("pkg", "1.0.0")
	p.Remove("pkg")

	if _, ok := p.InstalledVersion("pkg"); ok {
		t.Error("InstalledVersion() ok = true after Remove")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, FileName), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	if _, err := Load(home); err == nil {
		t.Error("Load() accepted malformed TOML")
	}
}
