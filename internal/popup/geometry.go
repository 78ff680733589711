// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/popup/geometry.go
// Summary: Dialog placement relative to its anchor window.

package popup

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

const (
	offsetX    = 8
	offsetY    = 4
	baseWidth  = 72
	baseHeight = 20
)

// Geometry places a dialog offset from the anchor's origin, sized by the
// scaling factor and clamped into screen.
func Geometry(anchor Rect, scaling float64, screen Rect) Rect {
	if scaling <= 0 {
		scaling = 1
	}
	r := Rect{
		X: anchor.X + offsetX,
		Y: anchor.Y + offsetY,
		W: int(float64(baseWidth) * scaling),
		H: int(float64(baseHeight) * scaling),
	}
	if screen.W <= 0 || screen.H <= 0 {
		return r
	}
	if r.W > screen.W {
		r.W = screen.W
	}
	if r.H > screen.H {
		r.H = screen.H
	}
	if r.X+r.W > screen.X+screen.W {
		r.X = screen.X + screen.W - r.W
	}
	if r.Y+r.H > screen.Y+screen.H {
		r.Y = screen.Y + screen.H - r.H
	}
	if r.X < screen.X {
		r.X = screen.X
	}
	if r.Y < screen.Y {
		r.Y = screen.Y
	}
	return r
}
