// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/manifest.go
// Summary: Defines the configuration schema manifest used by the registry.
// Usage: Built-in schemas are embedded; plugins ship a manifest.json file.

package registry

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// Datatype names the value type of an option.
type Datatype string

const (
	DatatypeString Datatype = "str"
	DatatypeInt    Datatype = "int"
	DatatypeFloat  Datatype = "float"
	DatatypeBool   Datatype = "bool"
)

// Manifest describes one configuration (e.g. "train") and its sections.
type Manifest struct {
	// Name is the configuration identity and the base name of its file.
	Name string `json:"name"`

	// DisplayName is shown in the main window list.
	DisplayName string `json:"displayName"`

	// Description provides a brief explanation of what the configuration controls.
	Description string `json:"description"`

	// Config names the configuration a plugin manifest contributes to.
	// Empty for built-in configurations.
	Config string `json:"config,omitempty"`

	// Sections are kept in declaration order.
	Sections []Section `json:"sections"`
}

// Section is the default metadata of one configuration section.
type Section struct {
	Name     string      `json:"name"`
	HelpText string      `json:"helptext"`
	Options  []OptionDef `json:"options"`
}

// OptionDef is the default metadata of one option.
type OptionDef struct {
	Key      string      `json:"key"`
	Default  interface{} `json:"default"`
	Datatype Datatype    `json:"datatype,omitempty"`
	HelpText string      `json:"helptext"`
	Choices  []string    `json:"choices,omitempty"`
}

// Type returns the declared datatype, inferring one from the default when
// the manifest leaves it out.
func (o OptionDef) Type() Datatype {
	if o.Datatype != "" {
		return o.Datatype
	}
	switch v := o.Default.(type) {
	case bool:
		return DatatypeBool
	case int, int64:
		return DatatypeInt
	case float64:
		if v == math.Trunc(v) {
			return DatatypeInt
		}
		return DatatypeFloat
	default:
		return DatatypeString
	}
}

// DefaultString renders the default the way it is written to a config file.
func (o OptionDef) DefaultString() string {
	return FormatValue(o.Type(), o.Default)
}

// FormatValue renders a typed value as config file text.
func FormatValue(kind Datatype, value interface{}) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if kind == DatatypeInt {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Option returns the named option definition.
func (s Section) Option(key string) (OptionDef, bool) {
	for _, opt := range s.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return OptionDef{}, false
}

// Section returns the named section definition.
func (m *Manifest) Section(name string) (Section, bool) {
	if m == nil {
		return Section{}, false
	}
	for _, sec := range m.Sections {
		if sec.Name == name {
			return sec, true
		}
	}
	return Section{}, false
}

// ParseManifest decodes a manifest from JSON.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.DisplayName == "" {
		m.DisplayName = displayName(m.Name)
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest.json file from the given directory.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "manifest.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// Validate checks that the manifest is well-formed.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	seen := make(map[string]bool, len(m.Sections))
	for _, sec := range m.Sections {
		if sec.Name == "" {
			return fmt.Errorf("section name cannot be empty")
		}
		if strings.HasPrefix(sec.Name, ".") || strings.HasSuffix(sec.Name, ".") {
			return fmt.Errorf("malformed section name %q", sec.Name)
		}
		if seen[sec.Name] {
			return fmt.Errorf("duplicate section %q", sec.Name)
		}
		seen[sec.Name] = true

		keys := make(map[string]bool, len(sec.Options))
		for _, opt := range sec.Options {
			if opt.Key == "" {
				return fmt.Errorf("section %q: option key cannot be empty", sec.Name)
			}
			if keys[opt.Key] {
				return fmt.Errorf("section %q: duplicate option %q", sec.Name, opt.Key)
			}
			keys[opt.Key] = true
			switch opt.Type() {
			case DatatypeString, DatatypeInt, DatatypeFloat, DatatypeBool:
			default:
				return fmt.Errorf("section %q: option %q has unknown datatype %q", sec.Name, opt.Key, opt.Datatype)
			}
		}
	}
	return nil
}

func displayName(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
