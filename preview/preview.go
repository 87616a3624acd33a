// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview implements a display.Drawer that emulates a PCD8544 panel
// on the terminal (stdout) using ANSI color codes.
//
// Useful to work on screens while the panel is not wired yet.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/pcd8544/framebuffer"
)

// Opts represents the options available for this display.
type Opts struct {
	Palette *ansi256.Palette
	// Ink and Paper are the colors used on the terminal.
	Ink, Paper color.NRGBA
	// W receives the frames. Defaults to stdout.
	W io.Writer

	_ struct{}
}

// DefaultOpts mimics a backlit panel.
var DefaultOpts = Opts{
	Ink:   color.NRGBA{0x1E, 0x26, 0x1E, 0xFF},
	Paper: color.NRGBA{0x9C, 0xBD, 0x7E, 0xFF},
}

// Dev is a PCD8544 emulator that outputs to the console.
type Dev struct {
	w          io.Writer
	palette    ansi256.Palette
	ink, paper string

	frame *framebuffer.Buffer
	buf   bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:       w,
		palette: *p,
		frame:   framebuffer.New(),
	}
	d.ink = d.palette.Block(opts.Ink)
	d.paper = d.palette.Block(opts.Paper)
	return d
}

func (d *Dev) String() string {
	return "Preview"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Write accepts a frame in the PCD8544 layout, like pcd8544.Dev.Write, and
// prints it.
func (d *Dev) Write(pixels []byte) (int, error) {
	if err := d.frame.Load(pixels); err != nil {
		return 0, fmt.Errorf("preview: %w", err)
	}
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.frame.Bounds()
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.frame, r, src, sp)
	return d.refresh()
}

// refresh redraws the whole frame from the top left corner of the
// terminal.
func (d *Dev) refresh() error {
	d.buf.Reset()
	_, _ = d.buf.WriteString("\033[H\033[0m")
	for y := 0; y < framebuffer.Height; y++ {
		for x := 0; x < framebuffer.Width; x++ {
			if d.frame.Pixel(x, y) == framebuffer.Ink {
				_, _ = d.buf.WriteString(d.ink)
			} else {
				_, _ = d.buf.WriteString(d.paper)
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
