// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pluginconfig/view.go
// Summary: tview dialog for browsing and editing plugin configuration.
// Usage: Built from a popup.Dialog and mounted on the shell's page stack.

package pluginconfig

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/framegrace/plugconf/internal/popup"
	"github.com/framegrace/plugconf/internal/theming"
)

// Button labels and the tooltips shown when they gain focus.
const (
	ButtonReset  = "Reset"
	ButtonOK     = "OK"
	ButtonCancel = "Cancel"

	TooltipReset  = "Reset all plugins to default values"
	TooltipOK     = "Close and save config"
	TooltipCancel = "Close without saving"
)

// Options control placement of the dialog.
type Options struct {
	// Anchor is the rectangle of the window the dialog opens over.
	Anchor popup.Rect
	// Screen bounds the dialog.
	Screen popup.Rect
	// ScalingFactor multiplies the dialog size.
	ScalingFactor float64
	// Theme colours the dialog. Nil selects theming.Base.
	Theme *theming.Theme
}

// View is an open plugin configuration dialog.
type View struct {
	dialog   *popup.Dialog
	cmds     popup.Commands
	root     *tview.Flex
	catBar   *tabBar
	body     *tview.Pages
	status   *tview.TextView
	actions  *tview.Form
	cats     []*categoryPage
	rect     popup.Rect
	theme    theming.Theme
	setFocus func(tview.Primitive)
	onBar    bool
}

var _ popup.Window = (*View)(nil)

type categoryPage struct {
	cat    *popup.Category
	prim   tview.Primitive
	tabs   *tabBar
	pages  *tview.Pages
	panels []*controlPanel
}

func (c *categoryPage) current() *controlPanel {
	if c.tabs == nil {
		return c.panels[0]
	}
	return c.panels[c.tabs.Current()]
}

// New builds the widget tree for dialog.
func New(dialog *popup.Dialog, opts Options) (*View, error) {
	v := &View{
		dialog:   dialog,
		cmds:     dialog,
		body:     tview.NewPages(),
		status:   tview.NewTextView().SetDynamicColors(true).SetWrap(false),
		actions:  tview.NewForm(),
		rect:     popup.Geometry(opts.Anchor, opts.ScalingFactor, opts.Screen),
		theme:    theming.Base(),
		setFocus: func(tview.Primitive) {},
	}
	if opts.Theme != nil {
		v.theme = *opts.Theme
	}
	v.status.SetTextColor(v.theme.Status)

	snap := dialog.Snapshot()
	labels := make([]string, 0, len(snap.Categories))
	for i, cat := range snap.Categories {
		page, err := v.buildPage(snap, cat)
		if err != nil {
			return nil, err
		}
		v.cats = append(v.cats, page)
		v.body.AddPage(pageName(i), page.prim, true, i == 0)
		labels = append(labels, cat.Title())
	}
	v.catBar = newTabBar(labels, v.theme.TabActive, v.showCategory)

	v.actions.SetBorderPadding(0, 0, 1, 1)
	v.actions.SetButtonsAlign(tview.AlignRight)
	v.actions.AddButton(ButtonReset, v.reset)
	v.actions.AddButton(ButtonOK, v.save)
	v.actions.AddButton(ButtonCancel, v.cancel)
	for i, tip := range []string{TooltipReset, TooltipOK, TooltipCancel} {
		text := tip
		v.actions.GetButton(i).SetFocusFunc(func() { v.hint(text) })
	}

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.catBar, 1, 0, false).
		AddItem(v.body, 0, 1, true).
		AddItem(v.status, 1, 0, false).
		AddItem(v.actions, 1, 0, false)
	v.root.SetBorder(true).
		SetTitle(fmt.Sprintf(" %s Plugins ", humanLabel(snap.Name))).
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(v.theme.Border).
		SetTitleColor(v.theme.Title)
	v.root.SetInputCapture(v.handleKey)
	v.root.SetRect(v.rect.X, v.rect.Y, v.rect.W, v.rect.H)

	log.Printf("PluginConfig: Built %q dialog with %d category tabs", snap.Name, len(v.cats))
	return v, nil
}

func pageName(i int) string { return fmt.Sprintf("category-%d", i) }

func (v *View) buildPage(snap *popup.Snapshot, cat *popup.Category) (*categoryPage, error) {
	page := &categoryPage{cat: cat}
	if !cat.Nested() {
		panel, err := newControlPanel(snap, cat.Sections[0], true, v.theme, v.hint)
		if err != nil {
			return nil, err
		}
		page.panels = []*controlPanel{panel}
		page.prim = panel
		return page, nil
	}

	page.pages = tview.NewPages()
	labels := make([]string, 0, len(cat.Sections))
	for i, sec := range cat.Sections {
		panel, err := newControlPanel(snap, sec, false, v.theme, v.hint)
		if err != nil {
			return nil, err
		}
		page.panels = append(page.panels, panel)
		page.pages.AddPage(pageName(i), panel, true, i == 0)
		labels = append(labels, sec.Title())
	}
	page.tabs = newTabBar(labels, v.theme.TabActive, func(i int) {
		page.pages.SwitchToPage(pageName(i))
		v.focusPage()
	})
	page.prim = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(page.tabs, 1, 0, false).
		AddItem(page.pages, 0, 1, true)
	return page, nil
}

// Primitive returns the root of the dialog's widget tree.
func (v *View) Primitive() tview.Primitive { return v.root }

// Rect returns the dialog placement.
func (v *View) Rect() popup.Rect { return v.rect }

// Mount adds the dialog on top of pages and focuses it. The page is removed
// again when the dialog closes.
func (v *View) Mount(pages *tview.Pages, setFocus func(tview.Primitive)) {
	name := "popup:" + v.dialog.Name()
	pages.AddPage(name, v.root, false, true)
	v.root.SetRect(v.rect.X, v.rect.Y, v.rect.W, v.rect.H)
	if setFocus != nil {
		v.setFocus = setFocus
	}
	v.focusPage()
	v.dialog.OnClose(func() {
		pages.RemovePage(name)
	})
}

// Close closes the dialog without saving.
func (v *View) Close() { v.dialog.Close() }

// OnClose registers fn to run when the dialog closes.
func (v *View) OnClose(fn func()) { v.dialog.OnClose(fn) }

// CurrentCategory returns the index of the visible category tab.
func (v *View) CurrentCategory() int { return v.catBar.Current() }

// SelectCategory shows category tab i.
func (v *View) SelectCategory(i int) { v.catBar.Select(i) }

// SelectPlugin shows plugin tab i of the visible category. No-op for
// categories holding a single plugin.
func (v *View) SelectPlugin(i int) {
	if page := v.currentPage(); page != nil && page.tabs != nil {
		page.tabs.Select(i)
	}
}

// CurrentPlugin returns the index of the visible plugin tab.
func (v *View) CurrentPlugin() int {
	if page := v.currentPage(); page != nil && page.tabs != nil {
		return page.tabs.Current()
	}
	return 0
}

func (v *View) currentPage() *categoryPage {
	if len(v.cats) == 0 {
		return nil
	}
	return v.cats[v.catBar.Current()]
}

// Status returns the text of the status line.
func (v *View) Status() string { return v.status.GetText(true) }

func (v *View) showCategory(i int) {
	v.body.SwitchToPage(pageName(i))
	v.focusPage()
}

func (v *View) focusPage() {
	page := v.currentPage()
	if page == nil {
		v.focusBar()
		return
	}
	v.onBar = false
	v.setFocus(page.current().focusTarget())
}

func (v *View) focusBar() {
	v.onBar = true
	v.setFocus(v.actions)
}

func (v *View) hint(text string) {
	v.status.SetText(" " + tview.Escape(text))
}

func (v *View) reset() {
	v.cmds.Reset()
	v.hint("Reset all options to their defaults")
}

func (v *View) save() {
	if err := v.cmds.Save(); err != nil {
		v.status.SetText(fmt.Sprintf(" %sSave failed: %s", theming.Tag(v.theme.Error), tview.Escape(err.Error())))
		return
	}
	log.Printf("PluginConfig: Saved config: '%s'", v.dialog.Name())
}

func (v *View) cancel() {
	v.cmds.Cancel()
}

func (v *View) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	mods := ev.Modifiers()
	switch {
	case ev.Key() == tcell.KeyRight && mods&tcell.ModCtrl != 0:
		v.SelectCategory(v.catBar.Current() + 1)
	case ev.Key() == tcell.KeyLeft && mods&tcell.ModCtrl != 0:
		v.SelectCategory(v.catBar.Current() - 1)
	case ev.Key() == tcell.KeyRight && mods&tcell.ModAlt != 0:
		v.stepPlugin(1)
	case ev.Key() == tcell.KeyLeft && mods&tcell.ModAlt != 0:
		v.stepPlugin(-1)
	case ev.Key() == tcell.KeyCtrlR:
		v.reset()
	case ev.Key() == tcell.KeyCtrlS:
		v.save()
	case ev.Key() == tcell.KeyEscape:
		if v.dropDownOpen() {
			return ev
		}
		v.cancel()
	case ev.Key() == tcell.KeyF6:
		if v.onBar {
			v.focusPage()
		} else {
			v.focusBar()
		}
	default:
		return ev
	}
	return nil
}

// dropDownOpen reports whether a drop-down list on the visible page is open.
// Esc then belongs to the list.
func (v *View) dropDownOpen() bool {
	page := v.currentPage()
	if page == nil {
		return false
	}
	for _, f := range page.current().fields {
		if dd, ok := f.item.(*tview.DropDown); ok && dd.IsOpen() {
			return true
		}
	}
	return false
}

func (v *View) stepPlugin(delta int) {
	v.SelectPlugin(v.CurrentPlugin() + delta)
}
