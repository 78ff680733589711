// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for GUI settings.

package config

import "path/filepath"

const (
	defaultScalingFactor = 1.0
	logFileName          = "plugconf.log"
	pluginDirName        = "plugins"
)

func applySettingsDefaults(s *Settings, root string) {
	if s == nil {
		return
	}
	if s.ScalingFactor <= 0 {
		s.ScalingFactor = defaultScalingFactor
	}
	if s.LogFile == "" && root != "" {
		s.LogFile = filepath.Join(root, logFileName)
	}
	if s.PluginDir == "" && root != "" {
		s.PluginDir = filepath.Join(root, pluginDirName)
	}
}
