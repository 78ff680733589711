// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/popup/dialog.go
// Summary: Reset/Save/Cancel command handling for one open dialog.

package popup

import (
	"errors"
	"fmt"
	"log"
)

// ErrClosed is returned when a command reaches a dialog that already closed.
var ErrClosed = errors.New("dialog closed")

// Commands are the actions offered by the dialog's button bar.
type Commands interface {
	Reset()
	Save() error
	Cancel()
}

// Dialog owns the snapshot of one configuration while it is being edited.
type Dialog struct {
	store   Store
	snap    *Snapshot
	closed  bool
	onClose []func()
}

var _ Commands = (*Dialog)(nil)

// NewDialog loads a snapshot of store.
func NewDialog(store Store) (*Dialog, error) {
	snap, err := Load(store)
	if err != nil {
		return nil, fmt.Errorf("load %q config: %w", store.Name(), err)
	}
	return &Dialog{store: store, snap: snap}, nil
}

// Name returns the configuration identity.
func (d *Dialog) Name() string { return d.snap.Name }

// Snapshot returns the option tree widgets bind to.
func (d *Dialog) Snapshot() *Snapshot { return d.snap }

// Reset puts every option back to its default.
func (d *Dialog) Reset() {
	if d.closed {
		return
	}
	log.Printf("Popup: Resetting %q config", d.snap.Name)
	d.snap.Reset()
}

// Save persists the edits and closes the dialog. The dialog stays open when
// saving fails.
func (d *Dialog) Save() error {
	if d.closed {
		return ErrClosed
	}
	if err := Save(d.snap, d.store); err != nil {
		log.Printf("Popup: Failed to save %q config: %v", d.snap.Name, err)
		return err
	}
	d.Close()
	return nil
}

// Cancel closes the dialog without writing.
func (d *Dialog) Cancel() {
	if d.closed {
		return
	}
	log.Printf("Popup: Discarding edits to %q config", d.snap.Name)
	d.Close()
}

// Close runs the close hooks once.
func (d *Dialog) Close() {
	if d.closed {
		return
	}
	d.closed = true
	hooks := d.onClose
	d.onClose = nil
	for _, fn := range hooks {
		fn()
	}
}

// Closed reports whether the dialog has closed.
func (d *Dialog) Closed() bool { return d.closed }

// OnClose registers fn to run when the dialog closes.
func (d *Dialog) OnClose(fn func()) {
	if fn == nil {
		return
	}
	if d.closed {
		fn()
		return
	}
	d.onClose = append(d.onClose, fn)
}
