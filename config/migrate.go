// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/migrate.go
// Summary: Drops stale sections and options left behind by removed plugins.

package config

import (
	"log"

	"github.com/framegrace/plugconf/registry"
)

// migrateFile removes sections and options the schema no longer defines.
// Options missing from the file are left alone; readers fall back to the
// schema default. Reports whether the file changed.
func migrateFile(file *File, schema *registry.Manifest) bool {
	if file == nil || schema == nil {
		return false
	}
	changed := false
	for _, name := range file.Sections() {
		sec, ok := schema.Section(name)
		if !ok {
			log.Printf("Config: Removing stale section '%s' from %q config", name, schema.Name)
			file.DeleteSection(name)
			changed = true
			continue
		}
		for _, key := range file.Keys(name) {
			if _, ok := sec.Option(key); ok {
				continue
			}
			log.Printf("Config: Removing stale option '%s.%s' from %q config", name, key, schema.Name)
			file.DeleteKey(name, key)
			changed = true
		}
	}
	return changed
}
