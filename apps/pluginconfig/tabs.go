// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pluginconfig/tabs.go
// Summary: Single-row tab bar built on a region-highlighting text view.

package pluginconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type tabBar struct {
	*tview.TextView
	labels   []string
	current  int
	onSelect func(int)
}

// newTabBar builds a bar of labels. The highlighted tab is drawn reversed, so
// color ends up as the active tab's background.
func newTabBar(labels []string, color tcell.Color, onSelect func(int)) *tabBar {
	tb := &tabBar{
		TextView: tview.NewTextView(),
		labels:   labels,
		onSelect: onSelect,
	}
	tb.SetRegions(true).
		SetDynamicColors(true).
		SetWrap(false)
	tb.SetTextColor(color)
	tb.SetBackgroundColor(tcell.ColorDefault)
	tb.SetHighlightedFunc(func(added, removed, remaining []string) {
		if len(added) == 0 {
			return
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(added[0], "tab"))
		if err != nil || idx == tb.current {
			return
		}
		tb.current = idx
		if tb.onSelect != nil {
			tb.onSelect(idx)
		}
	})

	var b strings.Builder
	for i, label := range labels {
		if i > 0 {
			b.WriteString("│")
		}
		fmt.Fprintf(&b, `["tab%d"] %s [""]`, i, tview.Escape(tabLabel(label)))
	}
	tb.SetText(b.String())
	tb.Highlight("tab0")
	return tb
}

// Select activates tab i, wrapping around at both ends.
func (tb *tabBar) Select(i int) {
	if len(tb.labels) == 0 {
		return
	}
	i = (i%len(tb.labels) + len(tb.labels)) % len(tb.labels)
	tb.Highlight(fmt.Sprintf("tab%d", i))
}

// Current returns the active tab index.
func (tb *tabBar) Current() int { return tb.current }
