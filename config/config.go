// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Sectioned INI configuration for one plugin configuration.

package config

import (
	"fmt"
	"log"

	"github.com/framegrace/plugconf/registry"
)

// Config binds a schema to its configuration file on disk.
type Config struct {
	name   string
	path   string
	schema *registry.Manifest
	file   *File
}

// Load reads the configuration file for schema from path. An empty path
// resolves to the default location for the schema name. A missing file is
// created from the schema defaults.
func Load(schema *registry.Manifest, path string) (*Config, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema is required")
	}
	if path == "" {
		resolved, err := Path(schema.Name)
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = resolved
	}

	c := &Config{name: schema.Name, path: path, schema: schema}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the configuration identity (e.g. "train").
func (c *Config) Name() string { return c.name }

// Path returns the file the configuration is persisted to.
func (c *Config) Path() string { return c.path }

// Schema returns the schema the configuration was loaded with.
func (c *Config) Schema() *registry.Manifest { return c.schema }

// Sections returns the section names in schema order.
func (c *Config) Sections() []string {
	names := make([]string, 0, len(c.schema.Sections))
	for _, sec := range c.schema.Sections {
		names = append(names, sec.Name)
	}
	return names
}

// Defaults returns the default metadata for a section.
func (c *Config) Defaults(section string) (registry.Section, bool) {
	return c.schema.Section(section)
}

// Value returns the stored value for section/key, if the file has one.
func (c *Config) Value(section, key string) (string, bool) {
	if c.file == nil {
		return "", false
	}
	return c.file.Value(section, key)
}

// File returns the in-memory file backing the configuration.
func (c *Config) File() *File { return c.file }

// NewFile returns an empty file ready to receive sections.
func (c *Config) NewFile() *File { return NewFile() }

// InsertSection adds a section to file with its help text as a header comment.
func (c *Config) InsertSection(file *File, section, helptext string) error {
	return file.AddSection(section, FormatHelp(helptext, true))
}

// FormatHelp formats help text as a config file comment.
func (c *Config) FormatHelp(text string, isSection bool) string {
	return FormatHelp(text, isSection)
}

// Replace swaps the in-memory file. Call Save to persist it.
func (c *Config) Replace(file *File) {
	if file == nil {
		file = NewFile()
	}
	c.file = file
}

// Save writes the in-memory file to disk.
func (c *Config) Save() error {
	if err := writeFile(c.path, c.file); err != nil {
		return fmt.Errorf("save %s config: %w", c.name, err)
	}
	log.Printf("Config: Saved %q config to %s", c.name, c.path)
	return nil
}

// defaultFile builds a file holding every schema default.
func (c *Config) defaultFile() (*File, error) {
	file := NewFile()
	for _, sec := range c.schema.Sections {
		if err := c.InsertSection(file, sec.Name, sec.HelpText); err != nil {
			return nil, err
		}
		for _, opt := range sec.Options {
			if err := file.Set(sec.Name, opt.Key, opt.DefaultString(), FormatHelp(opt.HelpText, false)); err != nil {
				return nil, err
			}
		}
	}
	return file, nil
}
