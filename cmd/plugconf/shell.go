// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/plugconf/shell.go
// Summary: Main window listing configurations; owns the active dialog handle.

package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/framegrace/plugconf/apps/pluginconfig"
	"github.com/framegrace/plugconf/config"
	"github.com/framegrace/plugconf/internal/popup"
	"github.com/framegrace/plugconf/internal/theming"
	"github.com/framegrace/plugconf/registry"
)

const errorPage = "error"

type shell struct {
	app       *tview.Application
	pages     *tview.Pages
	main      *tview.List
	reg       *registry.Registry
	popups    popup.Manager
	scaling   float64
	theme     theming.Theme
	overrides map[string]string
}

func newShell(reg *registry.Registry, settings config.Settings, overrides map[string]string) *shell {
	s := &shell{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		reg:       reg,
		scaling:   settings.ScalingFactor,
		theme:     theming.ForApp(settings.Theme),
		overrides: overrides,
	}

	s.main = tview.NewList().
		ShowSecondaryText(true).
		SetWrapAround(true)
	s.main.SetBorder(true).
		SetTitle(" Plugin Configuration ").
		SetTitleAlign(tview.AlignCenter)
	for _, m := range reg.List() {
		name := m.Name
		s.main.AddItem(m.DisplayName, m.Description, 0, func() {
			s.open(name)
		})
	}
	s.main.AddItem("Quit", "Exit plugconf", 'q', s.app.Stop)

	s.pages.AddPage("main", s.main, true, true)
	s.app.SetRoot(s.pages, true).
		EnableMouse(true).
		SetFocus(s.main)
	return s
}

// Run starts the event loop, opening initial once the screen has a size.
func (s *shell) Run(initial string) error {
	if initial != "" {
		pending := initial
		s.app.SetAfterDrawFunc(func(tcell.Screen) {
			if pending == "" {
				return
			}
			name := pending
			pending = ""
			go s.app.QueueUpdateDraw(func() { s.open(name) })
		})
	}
	return s.app.Run()
}

// open shows the dialog for name, closing any dialog already open.
func (s *shell) open(name string) {
	schema := s.reg.Get(name)
	if schema == nil {
		s.showError(fmt.Errorf("unknown config %q", name))
		return
	}

	_, err := s.popups.Open(name, func() (popup.Window, error) {
		cfg, err := config.Load(schema, s.overrides[name])
		if err != nil {
			return nil, err
		}
		dlg, err := popup.NewDialog(cfg)
		if err != nil {
			return nil, err
		}
		ax, ay, aw, ah := s.main.GetRect()
		sx, sy, sw, sh := s.pages.GetRect()
		view, err := pluginconfig.New(dlg, pluginconfig.Options{
			Anchor:        popup.Rect{X: ax, Y: ay, W: aw, H: ah},
			Screen:        popup.Rect{X: sx, Y: sy, W: sw, H: sh},
			ScalingFactor: s.scaling,
			Theme:         &s.theme,
		})
		if err != nil {
			return nil, err
		}
		view.Mount(s.pages, func(p tview.Primitive) { s.app.SetFocus(p) })
		view.OnClose(func() { s.app.SetFocus(s.main) })
		return view, nil
	})
	if err != nil {
		log.Printf("Shell: Failed to open %q: %v", name, err)
		s.showError(err)
	}
}

func (s *shell) showError(err error) {
	modal := tview.NewModal().
		SetText(err.Error()).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			s.pages.RemovePage(errorPage)
			s.app.SetFocus(s.main)
		})
	s.pages.AddPage(errorPage, modal, true, true)
	s.app.SetFocus(modal)
}
