// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pluginconfig/panel.go
// Summary: Control panel rendering one section's options as a form.
// Usage: One panel per plugin section; fields are bound to the snapshot.

package pluginconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/framegrace/plugconf/internal/popup"
	"github.com/framegrace/plugconf/internal/theming"
	"github.com/framegrace/plugconf/registry"
)

const fieldWidth = 24

type fieldKind int

const (
	fieldString fieldKind = iota
	fieldInt
	fieldFloat
	fieldBool
	fieldCombo
)

// controlPanel shows the plugin info text above a form of option fields.
type controlPanel struct {
	*tview.Flex
	section *popup.Section
	info    *tview.TextView
	form    *tview.Form
	fields  []*field
}

type field struct {
	key  string
	kind fieldKind
	item tview.FormItem
}

// newControlPanel builds the form for sec and binds every field to snap.
// hint receives an option's help text when its field gains focus.
func newControlPanel(snap *popup.Snapshot, sec *popup.Section, showTitle bool, theme theming.Theme, hint func(string)) (*controlPanel, error) {
	p := &controlPanel{
		Flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		section: sec,
		info:    tview.NewTextView().SetDynamicColors(true).SetWordWrap(true),
		form:    tview.NewForm(),
	}
	p.form.SetBorderPadding(0, 0, 1, 1)
	p.form.SetItemPadding(0)
	p.info.SetBorderPadding(0, 0, 1, 1)

	var info strings.Builder
	if showTitle && sec.Plugin != "" {
		fmt.Fprintf(&info, "[::b]%s[::-]", tview.Escape(sec.Title()))
		if sec.HelpText != "" {
			info.WriteString(": ")
		}
	}
	info.WriteString(tview.Escape(sec.HelpText))
	p.info.SetText(info.String())

	for _, opt := range sec.Options {
		f, binding := buildField(opt, theme.FieldBackground)
		if err := snap.Bind(sec.Name, opt.Key, binding); err != nil {
			return nil, err
		}
		help := opt.HelpText
		if box, ok := f.item.(interface{ SetFocusFunc(func()) *tview.Box }); ok && hint != nil {
			box.SetFocusFunc(func() { hint(help) })
		}
		p.form.AddFormItem(f.item)
		p.fields = append(p.fields, f)
	}

	if p.info.GetText(true) != "" {
		p.AddItem(p.info, 2, 0, false)
	}
	if len(p.fields) == 0 {
		p.AddItem(tview.NewTextView().SetText(" No options for this plugin."), 0, 1, false)
	} else {
		p.AddItem(p.form, 0, 1, true)
	}
	return p, nil
}

// focusTarget returns the primitive that should receive focus.
func (p *controlPanel) focusTarget() tview.Primitive {
	if len(p.fields) == 0 {
		return p.Flex
	}
	return p.form
}

func buildField(opt *popup.Option, bg tcell.Color) (*field, popup.Binding) {
	label := humanLabel(opt.Key)
	if choices := choicesFor(opt); choices != nil {
		dd := tview.NewDropDown().SetLabel(label).SetFieldBackgroundColor(bg)
		b := &dropDownBinding{dd: dd, options: choices}
		dd.SetOptions(choices, nil)
		b.SetValue(opt.Value)
		return &field{key: opt.Key, kind: fieldCombo, item: dd}, b
	}

	switch opt.Datatype {
	case registry.DatatypeBool:
		cb := tview.NewCheckbox().SetLabel(label).SetFieldBackgroundColor(bg)
		b := &checkboxBinding{cb: cb}
		b.SetValue(opt.Value)
		return &field{key: opt.Key, kind: fieldBool, item: cb}, b
	case registry.DatatypeInt:
		in := newInput(label, opt.Value, bg).SetAcceptanceFunc(tview.InputFieldInteger)
		return &field{key: opt.Key, kind: fieldInt, item: in}, &inputBinding{in: in}
	case registry.DatatypeFloat:
		in := newInput(label, opt.Value, bg).SetAcceptanceFunc(tview.InputFieldFloat)
		return &field{key: opt.Key, kind: fieldFloat, item: in}, &inputBinding{in: in}
	default:
		in := newInput(label, opt.Value, bg)
		return &field{key: opt.Key, kind: fieldString, item: in}, &inputBinding{in: in}
	}
}

func newInput(label, value string, bg tcell.Color) *tview.InputField {
	return tview.NewInputField().
		SetLabel(label).
		SetText(value).
		SetFieldWidth(fieldWidth).
		SetFieldBackgroundColor(bg)
}

type inputBinding struct {
	in *tview.InputField
}

func (b *inputBinding) Value() string      { return b.in.GetText() }
func (b *inputBinding) SetValue(v string) { b.in.SetText(v) }

type checkboxBinding struct {
	cb *tview.Checkbox
}

func (b *checkboxBinding) Value() string { return strconv.FormatBool(b.cb.IsChecked()) }

func (b *checkboxBinding) SetValue(v string) {
	checked, _ := strconv.ParseBool(strings.TrimSpace(v))
	b.cb.SetChecked(checked)
}

type dropDownBinding struct {
	dd      *tview.DropDown
	options []string
}

func (b *dropDownBinding) Value() string {
	_, text := b.dd.GetCurrentOption()
	return text
}

func (b *dropDownBinding) SetValue(v string) {
	idx := indexOf(b.options, v)
	if idx < 0 {
		b.options = append(b.options, v)
		b.dd.AddOption(v, nil)
		idx = len(b.options) - 1
	}
	b.dd.SetCurrentOption(idx)
}
