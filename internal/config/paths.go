package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "QPCE_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "qpce.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "qpce"
)

// FindConfigPath searches for config file in priority order:
// 1. $QPCE_CONFIG (explicit path)
// 2. ./qpce.yaml (working directory)
// 3. $XDG_CONFIG_HOME/qpce/config.yaml
// 4. ~/.config/qpce/config.yaml
//
// Returns empty string if no config file found. An explicit $QPCE_CONFIG is
// returned even when missing, so that Load reports it.
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// DefaultConfigPath returns the preferred location for a new config file
// Prefers XDG config home, falls back to working directory
func DefaultConfigPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, ConfigDirName, "config.yaml")
	}

	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", ConfigDirName, "config.yaml")
	}

	return ConfigFileName
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir(configPath string) error {
	dir := filepath.Dir(configPath)
	return os.MkdirAll(dir, 0755)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
