// SPDX-License-Identifier: MPL-2.0

// Package config loads the bitforge configuration: where the bitforge home
// directory lives (installed packages, profile, catalog) and UI defaults.
// Configuration comes from an optional TOML file in the platform config
// directory, overridable per-key through BITFORGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/bitforge-eda/bitforge/pkg/platform"
)

const (
	// AppName is the application name.
	AppName = "bitforge"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "BITFORGE"
)

type (
	// UIConfig holds presentation defaults.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the loaded bitforge configuration.
	Config struct {
		// Home is the bitforge home directory. Empty means ~/.bitforge.
		Home string `mapstructure:"home"`

		// Catalog is a catalog file override. Empty means the catalog
		// shipped in the home directory.
		Catalog string `mapstructure:"catalog"`

		UI UIConfig `mapstructure:"ui"`
	}
)

// configFileOverride lets --config point at an explicit file.
var configFileOverride string

// SetConfigFileOverride sets an explicit config file path for Load.
func SetConfigFileOverride(path string) {
	configFileOverride = path
}

// ConfigDir returns the bitforge configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. A missing config file yields the defaults;
// only a malformed file is an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("home", "")
	v.SetDefault("catalog", "")
	v.SetDefault("ui.verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFileOverride != "" {
		v.SetConfigFile(configFileOverride)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// HomeDir returns the bitforge home directory: the configured one, or
// $BITFORGE_HOME, or ~/.bitforge.
func (c *Config) HomeDir() (string, error) {
	if c.Home != "" {
		return c.Home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "."+AppName), nil
}

// PackagesDir returns the root directory installed packages live under.
func (c *Config) PackagesDir() (string, error) {
	home, err := c.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "packages"), nil
}

// CatalogPath returns the package catalog file path: the configured
// override, or catalog.cue in the home directory.
func (c *Config) CatalogPath() (string, error) {
	if c.Catalog != "" {
		return c.Catalog, nil
	}
	home, err := c.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "catalog.cue"), nil
}
