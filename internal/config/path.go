// Package config loads taxform settings and resolves the paths they name.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppName names the directory under ~/.config that holds config.yaml.
const AppName = "taxform"

// ExpandPath resolves a leading "~" to the home directory, then substitutes
// $VAR references. Paths that cannot resolve a home directory keep their "~".
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}

// DefaultConfigDir returns $HOME/.config/taxform.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}
