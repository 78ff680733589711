// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for plugconf configuration.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const settingsName = "gui.json"

// Root returns the plugconf configuration directory.
func Root() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "plugconf"), nil
}

// Path returns the INI file path for a named configuration.
func Path(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("config name is required")
	}
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name+".ini"), nil
}

func settingsPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, settingsName), nil
}
