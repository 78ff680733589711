// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/popup/snapshot.go
// Summary: Category/section/option tree built from a configuration.
// Usage: Built fresh each time a dialog opens; widgets bind to its options.

package popup

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode"

	"github.com/framegrace/plugconf/registry"
)

// GlobalCategory is always ordered first.
const GlobalCategory = "global"

var (
	// ErrNoDefaults is returned for a section without default metadata.
	ErrNoDefaults = errors.New("section has no defaults")
	// ErrUnknownOption is returned for a section/key missing from the snapshot.
	ErrUnknownOption = errors.New("unknown option")
)

// Source is the read side of a configuration.
type Source interface {
	Name() string
	Sections() []string
	Defaults(section string) (registry.Section, bool)
	Value(section, key string) (string, bool)
}

// Binding connects an option to a live edit widget.
type Binding interface {
	Value() string
	SetValue(value string)
}

// Option is one configurable key with its current edit value.
type Option struct {
	Key      string
	Default  string
	HelpText string
	Datatype registry.Datatype
	Choices  []string
	Value    string

	binding Binding
}

// Current returns the live value, reading through the binding when bound.
func (o *Option) Current() string {
	if o.binding != nil {
		return o.binding.Value()
	}
	return o.Value
}

func (o *Option) set(value string) {
	o.Value = value
	if o.binding != nil {
		o.binding.SetValue(value)
	}
}

// Section is a named option group ("category.plugin" or "category").
type Section struct {
	Name     string
	Category string
	Plugin   string
	HelpText string
	Options  []*Option
}

// Title is the plugin part of the name with underscores as spaces, title-cased.
func (s *Section) Title() string {
	name := s.Name[strings.LastIndex(s.Name, ".")+1:]
	return titleCase(strings.ReplaceAll(name, "_", " "))
}

// Option returns the option with the given key.
func (s *Section) Option(key string) *Option {
	for _, opt := range s.Options {
		if opt.Key == key {
			return opt
		}
	}
	return nil
}

// Category groups the sections sharing a name prefix.
type Category struct {
	Name     string
	Sections []*Section
}

// Title returns the tab label for the category. Every run of letters is
// capitalised; separators such as "_" are kept.
func (c *Category) Title() string {
	var b strings.Builder
	prevLetter := false
	for _, r := range c.Name {
		switch {
		case unicode.IsLetter(r) && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

// Nested reports whether the category holds more than one plugin and so
// needs a tab per plugin.
func (c *Category) Nested() bool {
	return len(c.Sections) > 1
}

// Snapshot is the category tree of one configuration.
type Snapshot struct {
	Name       string
	Categories []*Category

	sections map[string]*Section
}

// SplitSection splits a section name on its first ".".
func SplitSection(name string) (category, plugin string) {
	if idx := strings.Index(name, "."); idx >= 0 {
		return name[:idx], name[idx+1:]
	}
	return name, ""
}

// OrderCategories sorts names with "global" first.
func OrderCategories(names []string) []string {
	ordered := append([]string(nil), names...)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i] == GlobalCategory || ordered[j] == GlobalCategory {
			return ordered[i] == GlobalCategory && ordered[j] != GlobalCategory
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}

// Load reads defaults and current values from src and groups them by category.
// Options without a stored value take their default.
func Load(src Source) (*Snapshot, error) {
	snap := &Snapshot{
		Name:     src.Name(),
		sections: make(map[string]*Section),
	}
	byName := make(map[string]*Category)

	for _, name := range src.Sections() {
		defs, ok := src.Defaults(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoDefaults, name)
		}
		if _, dup := snap.sections[name]; dup {
			continue
		}
		category, plugin := SplitSection(name)
		sec := &Section{
			Name:     name,
			Category: category,
			Plugin:   plugin,
			HelpText: defs.HelpText,
			Options:  make([]*Option, 0, len(defs.Options)),
		}
		for _, def := range defs.Options {
			opt := &Option{
				Key:      def.Key,
				Default:  def.DefaultString(),
				HelpText: def.HelpText,
				Datatype: def.Type(),
				Choices:  def.Choices,
			}
			if val, ok := src.Value(name, def.Key); ok {
				opt.Value = val
			} else {
				opt.Value = opt.Default
			}
			sec.Options = append(sec.Options, opt)
		}

		cat := byName[category]
		if cat == nil {
			cat = &Category{Name: category}
			byName[category] = cat
		}
		cat.Sections = append(cat.Sections, sec)
		snap.sections[name] = sec
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	for _, name := range OrderCategories(names) {
		cat := byName[name]
		sort.Slice(cat.Sections, func(i, j int) bool {
			return cat.Sections[i].Name < cat.Sections[j].Name
		})
		snap.Categories = append(snap.Categories, cat)
	}
	log.Printf("Popup: Loaded %q snapshot: %d categories, %d sections", snap.Name, len(snap.Categories), len(snap.sections))
	return snap, nil
}

// Section returns the named section, or nil.
func (s *Snapshot) Section(name string) *Section {
	return s.sections[name]
}

// Category returns the named category, or nil.
func (s *Snapshot) Category(name string) *Category {
	for _, cat := range s.Categories {
		if cat.Name == name {
			return cat
		}
	}
	return nil
}

// Bind attaches the live widget for section/key.
func (s *Snapshot) Bind(section, key string, b Binding) error {
	sec := s.sections[section]
	if sec == nil {
		return fmt.Errorf("%w: %s.%s", ErrUnknownOption, section, key)
	}
	opt := sec.Option(key)
	if opt == nil {
		return fmt.Errorf("%w: %s.%s", ErrUnknownOption, section, key)
	}
	opt.binding = b
	return nil
}

// Reset sets every option back to its default, updating bound widgets in place.
func (s *Snapshot) Reset() {
	for _, cat := range s.Categories {
		for _, sec := range cat.Sections {
			log.Printf("Popup: Resetting section '%s'", sec.Name)
			for _, opt := range sec.Options {
				opt.set(opt.Default)
			}
		}
	}
}

// Collect pulls the current values out of every binding.
func (s *Snapshot) Collect() map[string]map[string]string {
	out := make(map[string]map[string]string, len(s.sections))
	for name, sec := range s.sections {
		values := make(map[string]string, len(sec.Options))
		for _, opt := range sec.Options {
			opt.Value = opt.Current()
			values[opt.Key] = opt.Value
		}
		out[name] = values
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
