// ABOUTME: Optional fontsel settings file loading
// ABOUTME: Reads config.toml from the user's config home with defaults
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const settingsFileName = "config.toml"

type Settings struct {
	AliasDir      string `toml:"alias_dir"`
	System        bool   `toml:"system"`
	Strict        bool   `toml:"strict"`
	History       bool   `toml:"history"`
	HistoryFormat string `toml:"history_format"`
}

// DefaultSettings returns the settings used when no file exists
func DefaultSettings() *Settings {
	return &Settings{
		History:       true,
		HistoryFormat: "json",
	}
}

// SettingsPath returns the settings file location.
// Returns empty string if there is no config home to look in.
func SettingsPath() string {
	configHome := GetConfigHome()
	if configHome == "" {
		return ""
	}
	return filepath.Join(configHome, appName, settingsFileName)
}

// LoadSettings loads settings from path.
// A missing file is not an error; defaults are returned instead.
func LoadSettings(path string) (*Settings, error) {
	cfg := DefaultSettings()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if cfg.HistoryFormat == "" {
		cfg.HistoryFormat = "json"
	}

	return cfg, nil
}
