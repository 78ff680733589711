// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/file.go
// Summary: Sectioned key/value file with help-text comments.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"gopkg.in/ini.v1"
)

// helpWidth is the column limit for help comments.
const helpWidth = 100

// ErrUnstorable is returned for a value the file would not read back unchanged.
var ErrUnstorable = errors.New("value cannot be stored unchanged")

var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
}

func init() {
	// Write "key = value" without column alignment.
	ini.PrettyFormat = false
	ini.PrettyEqual = true
}

// File is an ordered set of sections holding key/value options.
type File struct {
	ini *ini.File
}

// NewFile returns an empty file.
func NewFile() *File {
	return &File{ini: ini.Empty(loadOptions)}
}

// LoadFile parses the file at path.
func LoadFile(path string) (*File, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, err
	}
	return &File{ini: f}, nil
}

// ParseFile parses file contents held in memory.
func ParseFile(data []byte) (*File, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, err
	}
	return &File{ini: f}, nil
}

// AddSection appends a section with an optional header comment.
func (f *File) AddSection(name, comment string) error {
	sec, err := f.ini.NewSection(name)
	if err != nil {
		return fmt.Errorf("add section %q: %w", name, err)
	}
	sec.Comment = comment
	return nil
}

// Set writes key = value in section, creating the section when needed.
// Values that would change on reload are rejected with ErrUnstorable.
func (f *File) Set(section, key, value, comment string) error {
	if err := checkStorable(key, value); err != nil {
		return fmt.Errorf("set %s.%s: %w", section, key, err)
	}
	sec, err := f.ini.GetSection(section)
	if err != nil {
		if sec, err = f.ini.NewSection(section); err != nil {
			return fmt.Errorf("add section %q: %w", section, err)
		}
	}
	k, err := sec.NewKey(key, value)
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", section, key, err)
	}
	k.Comment = comment
	return nil
}

// Value returns the value stored in section itself. Keys of a dotted
// section's parent are not inherited.
func (f *File) Value(section, key string) (string, bool) {
	sec, err := f.ini.GetSection(section)
	if err != nil {
		return "", false
	}
	for _, k := range sec.Keys() {
		if k.Name() == key {
			return k.Value(), true
		}
	}
	return "", false
}

// Sections returns the section names in file order.
func (f *File) Sections() []string {
	names := make([]string, 0, len(f.ini.Sections()))
	for _, name := range f.ini.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Keys returns the option keys of a section in file order.
func (f *File) Keys(section string) []string {
	sec, err := f.ini.GetSection(section)
	if err != nil {
		return nil
	}
	return sec.KeyStrings()
}

// Comment returns the header comment of a section.
func (f *File) Comment(section string) string {
	sec, err := f.ini.GetSection(section)
	if err != nil {
		return ""
	}
	return sec.Comment
}

// DeleteSection removes a section and its options.
func (f *File) DeleteSection(section string) {
	f.ini.DeleteSection(section)
}

// DeleteKey removes a single option.
func (f *File) DeleteKey(section, key string) {
	if sec, err := f.ini.GetSection(section); err == nil {
		sec.DeleteKey(key)
	}
}

// WriteTo writes the file contents to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	return f.ini.WriteTo(w)
}

// SaveTo writes the file to path.
func (f *File) SaveTo(path string) error {
	return f.ini.SaveTo(path)
}

// FormatHelp turns help text into "# " prefixed comment lines wrapped at
// helpWidth columns. Section headers are upper-cased. Empty text yields no
// comment.
func FormatHelp(text string, isSection bool) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		para = strings.Join(strings.Fields(para), " ")
		if para == "" {
			lines = append(lines, "#")
			continue
		}
		for _, line := range strings.Split(wordwrap.WrapString(para, helpWidth-2), "\n") {
			lines = append(lines, "# "+line)
		}
	}
	out := strings.Join(lines, "\n")
	if isSection {
		out = strings.ToUpper(out)
	}
	return out
}

// checkStorable writes value to a scratch file and reads it back.
func checkStorable(key, value string) error {
	scratch := ini.Empty(loadOptions)
	sec, err := scratch.NewSection("check")
	if err != nil {
		return err
	}
	if _, err := sec.NewKey(key, value); err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := scratch.WriteTo(&buf); err != nil {
		return err
	}
	reloaded, err := ini.LoadSources(loadOptions, buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnstorable, value)
	}
	rsec, err := reloaded.GetSection("check")
	if err != nil || !rsec.HasKey(key) || rsec.Key(key).Value() != value {
		return fmt.Errorf("%w: %q", ErrUnstorable, value)
	}
	return nil
}
