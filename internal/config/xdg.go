package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG-compliant config directory for credman
// Typically ~/.config/credman/ on Linux, %LOCALAPPDATA%\credman on Windows
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "credman")
}

// ConfigPath returns the full path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}
