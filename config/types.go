// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for configuration values.

package config

import (
	"strconv"
	"strings"
)

// lookup returns the stored value, falling back to the schema default.
func (c *Config) lookup(section, key string) (string, bool) {
	if val, ok := c.Value(section, key); ok {
		return val, true
	}
	if sec, ok := c.Defaults(section); ok {
		if opt, ok := sec.Option(key); ok {
			return opt.DefaultString(), true
		}
	}
	return "", false
}

// GetString retrieves a string value from the config.
func (c *Config) GetString(section, key, defaultValue string) string {
	if val, ok := c.lookup(section, key); ok {
		return val
	}
	return defaultValue
}

// GetInt retrieves an integer value from the config.
func (c *Config) GetInt(section, key string, defaultValue int) int {
	val, ok := c.lookup(section, key)
	if !ok {
		return defaultValue
	}
	val = strings.TrimSpace(val)
	if parsed, err := strconv.Atoi(val); err == nil {
		return parsed
	}
	if parsed, err := strconv.ParseFloat(val, 64); err == nil {
		return int(parsed)
	}
	return defaultValue
}

// GetFloat retrieves a float value from the config.
func (c *Config) GetFloat(section, key string, defaultValue float64) float64 {
	val, ok := c.lookup(section, key)
	if !ok {
		return defaultValue
	}
	if parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
		return parsed
	}
	return defaultValue
}

// GetBool retrieves a boolean value from the config.
func (c *Config) GetBool(section, key string, defaultValue bool) bool {
	val, ok := c.lookup(section, key)
	if !ok {
		return defaultValue
	}
	if parsed, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
		return parsed
	}
	return defaultValue
}
