// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pluginconfig/options.go
// Summary: Resolves the choice list shown for an option.

package pluginconfig

import "github.com/framegrace/plugconf/internal/popup"

// choicesFor returns the options offered by a drop-down for opt, keeping the
// current and default values selectable even when the schema does not list
// them. Returns nil for free-form options.
func choicesFor(opt *popup.Option) []string {
	if len(opt.Choices) == 0 {
		return nil
	}
	choices := append([]string(nil), opt.Choices...)
	for _, extra := range []string{opt.Default, opt.Value} {
		if indexOf(choices, extra) < 0 {
			choices = append(choices, extra)
		}
	}
	return choices
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}
