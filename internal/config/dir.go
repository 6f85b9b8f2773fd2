// Package config provides the configuration directory and defaults file for capstan.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the capstan configuration directory.
//
// Resolution:
//   - $CAPSTAN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/capstan if set (respects XDG on any platform)
//   - %AppData%/capstan on Windows
//   - ~/.config/capstan on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("CAPSTAN_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "capstan")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "capstan")
		}
	}

	// macOS and Linux: ~/.config/capstan
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "capstan")
}
