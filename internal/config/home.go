package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnvVar overrides the per-user configuration directory.
const HomeEnvVar = "HSUTOOLS_HOME"

// Home returns the hsutools home directory
// Priority order:
//  1. HSUTOOLS_HOME environment variable (if set)
//  2. ~/.hsutools
//
// The directory is not created.
func Home() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	return filepath.Join(userHome, DirName), nil
}
