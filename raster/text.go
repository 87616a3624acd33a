// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package raster

import (
	"io"

	"github.com/GermanBionicSystems/pcd8544/font5x8"
	"github.com/GermanBionicSystems/pcd8544/framebuffer"
)

// Glyph draws code point ch from font5x8 with its top left corner at (x, y).
//
// The whole cell is painted: fg where the glyph is set, the inverse of fg
// elsewhere, plus one background column on the right. size scales every
// glyph pixel to a size x size block; values below 1 mean 1.
//
// Nothing is drawn if the cell starts below the canvas or the glyph would
// not fit horizontally.
func Glyph(cv Canvas, x, y int, ch byte, fg framebuffer.Color, size int) {
	if size < 1 {
		size = 1
	}
	b := cv.Bounds()
	if y >= b.Max.Y || x+font5x8.Width*size >= b.Max.X {
		return
	}
	bg := !fg
	g := font5x8.Glyph(ch)
	for i := 0; i < font5x8.Advance; i++ {
		var col byte
		if i < font5x8.Width {
			col = g[i]
		}
		for j := 0; j < font5x8.Height; j++ {
			c := bg
			if col&(1<<uint(j)) != 0 {
				c = fg
			}
			if size == 1 {
				cv.SetPixel(x+i, y+j, c)
			} else {
				FillRect(cv, x+i*size, y+j*size, size, size, c)
			}
		}
	}
}

// Writer prints a stream of characters on a Canvas, keeping track of the
// cursor.
//
// '\n' moves to the start of the next text line, '\r' is ignored. Text
// wraps to the next line at the right edge and back to the top at the
// bottom edge; there is no scrolling.
type Writer struct {
	// X and Y are the cursor, the top left corner of the next glyph.
	X, Y int
	// Size is the scale factor of the glyphs.
	Size int
	// Color is the glyph color. The cell background is its inverse.
	Color framebuffer.Color

	cv Canvas
}

// NewWriter returns a Writer at the origin that prints Ink text at scale 1.
func NewWriter(cv Canvas) *Writer {
	return &Writer{Size: 1, Color: framebuffer.Ink, cv: cv}
}

// SetCursor moves the cursor.
func (w *Writer) SetCursor(x, y int) {
	w.X = x
	w.Y = y
}

// Cursor returns the cursor position.
func (w *Writer) Cursor() (int, int) {
	return w.X, w.Y
}

// Home moves the cursor to the origin.
func (w *Writer) Home() {
	w.SetCursor(0, 0)
}

// WriteByte prints c and advances the cursor. It never fails.
func (w *Writer) WriteByte(c byte) error {
	size := w.Size
	if size < 1 {
		size = 1
	}
	b := w.cv.Bounds()
	switch c {
	case '\n':
		w.X = 0
		w.Y += font5x8.Height * size
	case '\r':
	default:
		Glyph(w.cv, w.X, w.Y, c, w.Color, size)
		w.X += font5x8.Advance * size
		if w.X >= b.Max.X-font5x8.Width {
			w.X = 0
			w.Y += font5x8.Height * size
		}
	}
	if w.Y >= b.Max.Y {
		w.Y = 0
	}
	return nil
}

// Write implements io.Writer. Each byte is one glyph.
func (w *Writer) Write(p []byte) (int, error) {
	for _, c := range p {
		_ = w.WriteByte(c)
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (w *Writer) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = w.WriteByte(s[i])
	}
	return len(s), nil
}

// DrawString moves the cursor to (x, y) and prints s.
func (w *Writer) DrawString(x, y int, s string) {
	w.SetCursor(x, y)
	_, _ = w.WriteString(s)
}

var _ io.Writer = &Writer{}
var _ io.ByteWriter = &Writer{}
var _ io.StringWriter = &Writer{}
