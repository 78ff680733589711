// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/popup/manager.go
// Summary: Tracks the single open configuration dialog.

package popup

import "log"

// Window is an open dialog as seen by the Manager.
type Window interface {
	Close()
	OnClose(fn func())
}

// Manager is the shell's handle on the active dialog. At most one dialog is
// open at a time.
type Manager struct {
	id     string
	active Window
}

// Open closes any open dialog, then opens a new one for id.
func (m *Manager) Open(id string, open func() (Window, error)) (Window, error) {
	m.Close()

	w, err := open()
	if err != nil {
		return nil, err
	}
	m.id, m.active = id, w
	w.OnClose(func() {
		if m.active == w {
			m.id, m.active = "", nil
		}
	})
	log.Printf("Popup: Opened '%s'", id)
	return w, nil
}

// Close closes the active dialog, if any.
func (m *Manager) Close() {
	if m.active == nil {
		return
	}
	log.Printf("Popup: Closing open popup: '%s'", m.id)
	w := m.active
	m.id, m.active = "", nil
	w.Close()
}

// Active returns the open dialog and its configuration identity.
func (m *Manager) Active() (string, Window) {
	return m.id, m.active
}
