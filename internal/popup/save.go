// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/popup/save.go
// Summary: Writes edited snapshot values back through the configuration store.

package popup

import (
	"fmt"
	"log"

	"github.com/framegrace/plugconf/config"
)

// Store is the configuration collaborator a dialog loads from and saves to.
type Store interface {
	Source
	FormatHelp(text string, isSection bool) string
	NewFile() *config.File
	InsertSection(file *config.File, section, helptext string) error
	Replace(file *config.File)
	Save() error
}

// Save collects the edit values of snap into a fresh file, one section per
// default section of store with its help text, and persists it.
func Save(snap *Snapshot, store Store) error {
	values := snap.Collect()
	file := store.NewFile()

	for _, name := range store.Sections() {
		defs, ok := store.Defaults(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNoDefaults, name)
		}
		log.Printf("Popup: Adding section '%s'", name)
		if err := store.InsertSection(file, name, defs.HelpText); err != nil {
			return err
		}
		for _, def := range defs.Options {
			val, ok := values[name][def.Key]
			if !ok {
				return fmt.Errorf("%w: %s.%s", ErrUnknownOption, name, def.Key)
			}
			help := store.FormatHelp(def.HelpText, false)
			if err := file.Set(name, def.Key, val, help); err != nil {
				return err
			}
		}
	}

	store.Replace(file)
	return store.Save()
}
