// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/highlight.go
// Summary: Prints a configuration file, optionally syntax highlighted.

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const highlightStyle = "catppuccin-mocha"

// Highlight writes the file at path to w. With color set the output is
// highlighted with the INI lexer for a 256 color terminal.
func Highlight(w io.Writer, path string, color bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !color {
		_, err := w.Write(data)
		return err
	}

	lexer := lexers.Get("ini")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(data))
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", path, err)
	}
	return formatter.Format(w, style, iterator)
}
