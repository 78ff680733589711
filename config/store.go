// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load and write logic for configuration files.

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func (c *Config) load() error {
	file, exists, err := readFile(c.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.path, err)
	}

	if !exists {
		def, err := c.defaultFile()
		if err != nil {
			return fmt.Errorf("build default %s config: %w", c.name, err)
		}
		c.file = def
		if err := writeFile(c.path, c.file); err != nil {
			return fmt.Errorf("write default %s config: %w", c.name, err)
		}
		log.Printf("Config: Wrote default %q config to %s", c.name, c.path)
		return nil
	}

	c.file = file
	if migrateFile(c.file, c.schema) {
		if err := writeFile(c.path, c.file); err != nil {
			log.Printf("Config: Failed to write migrated %q config: %v", c.name, err)
		}
	}
	log.Printf("Config: Loaded %q config from %s", c.name, c.path)
	return nil
}

func readFile(path string) (*File, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	file, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return file, true, nil
}

func writeFile(path string, file *File) error {
	if file == nil {
		file = NewFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return file.SaveTo(path)
}
