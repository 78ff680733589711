// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/for_app.go
// Summary: Dialog colours with per-user overrides from gui.json.

package theming

import (
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colours the configuration dialog draws with.
type Theme struct {
	Border          tcell.Color
	Title           tcell.Color
	TabActive       tcell.Color
	FieldBackground tcell.Color
	Status          tcell.Color
	Error           tcell.Color
}

// Base returns the built-in theme.
func Base() Theme {
	return Theme{
		Border:          tcell.ColorSteelBlue,
		Title:           tcell.ColorWhite,
		TabActive:       tcell.ColorYellow,
		FieldBackground: tcell.ColorDarkBlue,
		Status:          tcell.ColorSilver,
		Error:           tcell.ColorRed,
	}
}

// ForApp returns the base theme merged with overrides. Keys are the snake_case
// field names ("tab_active"); values are colour names or #rrggbb.
func ForApp(overrides map[string]string) Theme {
	t := Base()
	if len(overrides) == 0 {
		return t
	}
	slots := map[string]*tcell.Color{
		"border":           &t.Border,
		"title":            &t.Title,
		"tab_active":       &t.TabActive,
		"field_background": &t.FieldBackground,
		"status":           &t.Status,
		"error":            &t.Error,
	}
	for key, value := range overrides {
		slot, ok := slots[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			log.Printf("Theming: Unknown theme key '%s'", key)
			continue
		}
		color := tcell.GetColor(strings.TrimSpace(value))
		if color == tcell.ColorDefault {
			log.Printf("Theming: Invalid colour '%s' for '%s'", value, key)
			continue
		}
		*slot = color
	}
	return t
}

// Tag renders c as a tview colour tag.
func Tag(c tcell.Color) string {
	return "[" + c.CSS() + "]"
}
