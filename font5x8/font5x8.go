// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font5x8 contains the 5x8 monospace glyph table commonly bundled
// with page addressed LCD controllers.
//
// Each glyph is 5 columns of 8 rows. A column is one byte, bit 0 being the
// top row, which is the same layout the PCD8544 and SSD1306 controllers use
// for their display RAM so glyphs can be blitted a column at a time.
package font5x8

import (
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"
)

const (
	// Width is the number of columns of a glyph.
	Width = 5
	// Height is the number of rows of a glyph.
	Height = 8
	// Advance is the horizontal distance between two consecutive glyphs,
	// including the blank spacing column.
	Advance = Width + 1
	// Count is the number of code points in the table.
	Count = 256
)

// Glyph returns the columns for code point c.
func Glyph(c byte) [Width]byte {
	var g [Width]byte
	i := int(c) * Width
	copy(g[:], glyphs[i:i+Width])
	return g
}

// Face is the glyph table as a golang.org/x/image/font.Face.
//
// It can be used with font.Drawer on any draw.Image. The dot is the
// baseline: a glyph drawn at fixed.P(x, y+7) covers rows y to y+7.
var Face = newFace()

func newFace() *basicfont.Face {
	mask := image.NewAlpha(image.Rect(0, 0, Width, Count*Height))
	for c := 0; c < Count; c++ {
		for x, col := range Glyph(byte(c)) {
			for y := 0; y < Height; y++ {
				if col&(1<<uint(y)) != 0 {
					mask.SetAlpha(x, c*Height+y, color.Alpha{A: 0xFF})
				}
			}
		}
	}
	return &basicfont.Face{
		Advance: Advance,
		Width:   Width,
		Height:  Height,
		Ascent:  Height - 1,
		Descent: 1,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: 0, High: Count, Offset: 0},
		},
	}
}
