// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pluginconfig/form.go
// Summary: Label helpers for the plugin configuration dialog.

package pluginconfig

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const maxTabLabel = 18

func humanLabel(value string) string {
	value = strings.ReplaceAll(value, "_", " ")
	words := strings.Fields(value)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func tabLabel(label string) string {
	return runewidth.Truncate(label, maxTabLabel, "…")
}
