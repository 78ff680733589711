// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: GUI settings stored next to the plugin configuration files.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Settings holds GUI-wide preferences.
type Settings struct {
	// ScalingFactor multiplies dialog sizes.
	ScalingFactor float64 `json:"scaling_factor"`
	// LogFile receives log output while the UI owns the terminal.
	LogFile string `json:"log_file"`
	// PluginDir is scanned for third-party plugin manifests.
	PluginDir string `json:"plugin_dir"`
	// Theme overrides dialog colours by slot name.
	Theme map[string]string `json:"theme,omitempty"`
}

// LoadSettings reads gui.json, applying defaults for missing fields.
// A missing file is written with the defaults.
func LoadSettings() (Settings, error) {
	var s Settings
	root, err := Root()
	if err != nil {
		applySettingsDefaults(&s, "")
		return s, err
	}
	path := filepath.Join(root, settingsName)

	data, err := os.ReadFile(path)
	if err != nil {
		applySettingsDefaults(&s, root)
		if os.IsNotExist(err) {
			if err := SaveSettings(s); err != nil {
				log.Printf("Config: Failed to write default settings: %v", err)
			}
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("Config: Failed to parse settings %s: %v", path, err)
		s = Settings{}
		applySettingsDefaults(&s, root)
		return s, err
	}
	applySettingsDefaults(&s, root)
	return s, nil
}

// SaveSettings persists gui.json.
func SaveSettings(s Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
