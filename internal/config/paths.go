package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file,
// following the XDG Base Directory Specification:
//   - Linux: ~/.config/relnext/config.yml
//   - macOS: ~/Library/Application Support/relnext/config.yml
//   - Windows: %APPDATA%\relnext\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "relnext", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// .relnext.yml relative to the current directory.
func ProjectConfigPath() string {
	return ".relnext.yml"
}

// LegacyProjectConfigPath returns the path to the legacy project-level
// JSON config file, kept for backward compatibility.
func LegacyProjectConfigPath() string {
	return ".relnext.json"
}
