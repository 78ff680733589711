// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded built-in configuration schemas.

package defaults

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed schemas/*.json
var schemas embed.FS

// Names returns the names of all embedded schemas, sorted.
func Names() []string {
	entries, err := fs.ReadDir(schemas, "schemas")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Schema returns the embedded schema JSON for the named configuration.
func Schema(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("schema name is required")
	}
	return schemas.ReadFile(fmt.Sprintf("schemas/%s.json", name))
}
