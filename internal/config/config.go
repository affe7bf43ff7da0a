// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"artemisup/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "artemisup"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

var (
	// configDirOverride allows tests to override the config directory.
	// Necessary because os.UserHomeDir() doesn't reliably respect the HOME
	// environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride is set from the --config flag to load a specific
	// file instead of the platform default.
	configFilePathOverride string

	// cached holds the process-wide configuration loaded by Get, so the
	// config file is read at most once per run.
	cached      *Config
	cachedErr   error
	cacheFilled bool
)

// Reset clears test and flag overrides and the Get cache. Call from test
// cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
	cached = nil
	cachedErr = nil
	cacheFilled = false
}

// Get returns the process-wide configuration, loading it on the first call
// and serving the cached result afterwards. A load failure degrades to the
// defaults; the error is returned alongside so the CLI can surface it once.
func Get() (*Config, error) {
	if !cacheFilled {
		cfg, _, err := Load()
		if err != nil || cfg == nil {
			cfg = DefaultConfig()
		}
		cached, cachedErr = cfg, err
		cacheFilled = true
	}
	return cached, cachedErr
}

// SetConfigDirOverride sets a custom config directory path.
// Primarily intended for testing to bypass os.UserHomeDir().
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride sets an explicit config file path (--config flag).
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// ConfigDir returns the artemisup configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
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

// ConfigFilePath returns the effective config file path, whether or not the
// file exists.
func ConfigFilePath() (string, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads the configuration file and returns the effective configuration
// plus the path of the file actually used ("" when defaults applied because
// no file exists). A file set explicitly via --config must exist; the
// platform-default file is optional.
func Load() (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("engine", defaults.Engine)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file is valid TOML").
				Wrap(err).
				Build()
		}
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, "", issue.WrapWithOperation(err, "locate configuration directory")
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
				return defaults, "", nil
			}
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)).
				WithSuggestion("Check that the file is valid TOML").
				Wrap(err).
				Build()
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("parse configuration").
			WithResource(v.ConfigFileUsed()).
			Wrap(err).
			Build()
	}

	return cfg, v.ConfigFileUsed(), nil
}
