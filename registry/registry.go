// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Implements the configuration schema registry.
// Usage: The shell registers built-in schemas and scans plugin manifests from
// ~/.config/plugconf/plugins/.

package registry

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry manages the collection of known configuration schemas.
type Registry struct {
	mu      sync.RWMutex
	builtIn map[string]*Manifest   // name -> built-in schema
	plugins map[string][]*Manifest // config name -> plugin contributions
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		builtIn: make(map[string]*Manifest),
		plugins: make(map[string][]*Manifest),
	}
}

// RegisterBuiltIn registers a schema that is compiled into the binary.
// Built-in sections have priority over plugin sections with the same name.
func (r *Registry) RegisterBuiltIn(manifest *Manifest) error {
	if manifest == nil {
		return fmt.Errorf("nil manifest")
	}
	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("validate %q: %w", manifest.Name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if manifest.DisplayName == "" {
		manifest.DisplayName = displayName(manifest.Name)
	}
	r.builtIn[manifest.Name] = manifest
	log.Printf("Registry: Registered built-in config '%s' (%d sections)", manifest.Name, len(manifest.Sections))
	return nil
}

// Scan searches for plugin manifests in the given directory.
// Each subdirectory should contain a manifest.json file whose "config" field
// names the configuration it extends.
func (r *Registry) Scan(baseDir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Clear plugin contributions (keep built-ins)
	r.plugins = make(map[string][]*Manifest)

	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		log.Printf("Registry: Plugin directory does not exist: %s", baseDir)
		return nil
	}

	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return fmt.Errorf("read plugin directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(baseDir, entry.Name())
		if err := r.loadPlugin(dir); err != nil {
			log.Printf("Registry: Failed to load plugin from %s: %v", dir, err)
			continue
		}
		loaded++
	}

	log.Printf("Registry: Loaded %d plugin manifests, %d built-in configs", loaded, len(r.builtIn))
	return nil
}

func (r *Registry) loadPlugin(dir string) error {
	manifest, err := LoadManifest(dir)
	if err != nil {
		return err
	}
	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}
	target := manifest.Config
	if target == "" {
		return fmt.Errorf("plugin manifest %q must name a target config", manifest.Name)
	}
	r.plugins[target] = append(r.plugins[target], manifest)
	log.Printf("Registry: Loaded plugin '%s' for config '%s' from %s", manifest.Name, target, dir)
	return nil
}

// Get returns the schema for the named configuration with plugin sections
// merged in after the built-in ones. Returns nil if nothing is registered.
func (r *Registry) Get(name string) *Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	base := r.builtIn[name]
	extra := r.plugins[name]
	if base == nil && len(extra) == 0 {
		return nil
	}

	merged := &Manifest{Name: name, DisplayName: displayName(name)}
	seen := make(map[string]bool)
	if base != nil {
		merged.DisplayName = base.DisplayName
		merged.Description = base.Description
		for _, sec := range base.Sections {
			merged.Sections = append(merged.Sections, sec)
			seen[sec.Name] = true
		}
	}
	for _, plugin := range extra {
		for _, sec := range plugin.Sections {
			if seen[sec.Name] {
				log.Printf("Registry: Plugin '%s' section '%s' shadowed by existing section", plugin.Name, sec.Name)
				continue
			}
			merged.Sections = append(merged.Sections, sec)
			seen[sec.Name] = true
		}
	}
	return merged
}

// List returns all configuration schemas sorted by display name.
func (r *Registry) List() []*Manifest {
	r.mu.RLock()
	names := make(map[string]bool, len(r.builtIn)+len(r.plugins))
	for name := range r.builtIn {
		names[name] = true
	}
	for name := range r.plugins {
		names[name] = true
	}
	r.mu.RUnlock()

	entries := make([]*Manifest, 0, len(names))
	for name := range names {
		if m := r.Get(name); m != nil {
			entries = append(entries, m)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DisplayName == entries[j].DisplayName {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].DisplayName < entries[j].DisplayName
	})
	return entries
}

// Count returns the number of distinct configurations.
func (r *Registry) Count() int {
	return len(r.List())
}
