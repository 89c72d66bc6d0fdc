// ABOUTME: XDG Base Directory and fontconfig path helpers
// ABOUTME: Resolves config, data, alias and output directories with fallbacks
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// SystemFontconfigDir is where system-wide fontconfig snippets live.
	SystemFontconfigDir = "/etc/fonts/conf.d"

	// OutputFileName is the fixed name of the generated rule file.
	OutputFileName = "69-language-selector-ja-jp.conf"

	// AliasDirName is the directory next to the executable holding alias files.
	AliasDirName = "aliases"

	appName = "fontsel"
)

// GetDataHome returns XDG_DATA_HOME or fallback to ~/.local/share.
// Returns empty string when neither XDG_DATA_HOME nor HOME is set.
func GetDataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".local", "share")
}

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config.
// Returns empty string when neither XDG_CONFIG_HOME nor HOME is set.
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config")
}

// OutputDir returns the directory the rule file is written to.
func OutputDir(system bool) string {
	if system {
		return SystemFontconfigDir
	}
	configHome := GetConfigHome()
	if configHome == "" {
		return SystemFontconfigDir
	}
	return filepath.Join(configHome, "fontconfig", "conf.d")
}

// OutputPath returns the full path of the rule file for the given mode.
func OutputPath(system bool) string {
	return filepath.Join(OutputDir(system), OutputFileName)
}

// AliasDirFor returns the aliases directory that sits beside executable.
func AliasDirFor(executable string) string {
	return filepath.Join(filepath.Dir(executable), AliasDirName)
}

// AliasDir resolves the aliases directory of the running binary
func AliasDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get current executable's path: %w", err)
	}
	return AliasDirFor(exe), nil
}

// HistoryDir is where applied selections are logged.
// Empty when there is no data home; history is then not kept.
func HistoryDir() string {
	dataHome := GetDataHome()
	if dataHome == "" {
		return ""
	}
	return filepath.Join(dataHome, appName, "history")
}
