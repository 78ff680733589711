// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/builtins.go
// Summary: Supports init-time registration of built-in configuration schemas.

package registry

import (
	"log"
	"sync"

	"github.com/framegrace/plugconf/defaults"
)

// BuiltInProvider returns a schema for a registry instance.
type BuiltInProvider func(reg *Registry) (*Manifest, error)

var (
	builtInMu        sync.RWMutex
	builtInProviders []BuiltInProvider
)

func init() {
	for _, name := range defaults.Names() {
		RegisterBuiltInProvider(embeddedProvider(name))
	}
}

// RegisterBuiltInProvider registers an init-time built-in provider.
func RegisterBuiltInProvider(provider BuiltInProvider) {
	if provider == nil {
		return
	}
	builtInMu.Lock()
	builtInProviders = append(builtInProviders, provider)
	builtInMu.Unlock()
}

// RegisterBuiltIns registers all init-time built-ins into the provided registry.
func RegisterBuiltIns(reg *Registry) {
	if reg == nil {
		return
	}
	builtInMu.RLock()
	providers := append([]BuiltInProvider(nil), builtInProviders...)
	builtInMu.RUnlock()

	for _, provider := range providers {
		manifest, err := provider(reg)
		if err != nil {
			log.Printf("Registry: Built-in provider failed: %v", err)
			continue
		}
		if manifest == nil {
			continue
		}
		if err := reg.RegisterBuiltIn(manifest); err != nil {
			log.Printf("Registry: %v", err)
		}
	}
}

func embeddedProvider(name string) BuiltInProvider {
	return func(*Registry) (*Manifest, error) {
		data, err := defaults.Schema(name)
		if err != nil {
			return nil, err
		}
		return ParseManifest(data)
	}
}
