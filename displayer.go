// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/GermanBionicSystems/pcd8544/framebuffer"
)

// Displayer exposes a Dev as a tinygo drivers.Displayer, so the graphics
// packages written for tinygo displays can render on the panel.
//
// Colors are reduced with the Dev color model.
type Displayer struct {
	d *Dev
}

// Displayer returns the drivers.Displayer view of d.
func (d *Dev) Displayer() *Displayer {
	return &Displayer{d: d}
}

// Size returns the panel size in pixels.
func (p *Displayer) Size() (x, y int16) {
	return framebuffer.Width, framebuffer.Height
}

// SetPixel sets one pixel of the frame.
func (p *Displayer) SetPixel(x, y int16, c color.RGBA) {
	p.d.buf.Set(int(x), int(y), c)
}

// Display sends the frame to the panel.
func (p *Displayer) Display() error {
	return p.d.Flush()
}

var _ drivers.Displayer = &Displayer{}
