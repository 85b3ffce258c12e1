// Package config persists the user's chosen browser between runs so that a
// run with a still-valid saved browser can skip detection entirely.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"quicktabs/pkg/browser"
)

// SavedConfig is the on-disk shape of the browser preference.
type SavedConfig struct {
	Browser browser.Browser `json:"browser"`
}

// GetConfigDir returns the per-user quicktabs directory.
func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ConfigDirName
	}
	return filepath.Join(homeDir, ConfigDirName)
}

// GetConfigPath returns the path of the saved-browser file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), ConfigFileName)
}

// Load returns the saved browser, or nil when there is none worth using:
// a missing, unreadable, or unparseable file, and also a saved path that no
// longer exists on disk. All of those degrade to "detect fresh" rather
// than surfacing an error.
func Load() *browser.Browser {
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		return nil
	}

	var cfg SavedConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil
	}

	if cfg.Browser.Path == "" {
		return nil
	}
	if _, err := os.Stat(cfg.Browser.Path); err != nil {
		// Stale reference: the browser was uninstalled or moved.
		return nil
	}

	return &cfg.Browser
}

// Save overwrites the browser preference. The write goes through a
// temporary file and a rename so an interrupted save can't leave a
// half-written config behind.
func Save(b browser.Browser) error {
	configPath := GetConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(SavedConfig{Browser: b}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(configPath), ConfigFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, PermConfigFile); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set config permissions: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	return nil
}
