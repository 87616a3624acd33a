// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"github.com/GermanBionicSystems/pcd8544/framebuffer"
	"github.com/GermanBionicSystems/pcd8544/raster"
)

// The drawing functions below only modify the frame; call Flush to send it.

// Clear clears the frame and homes the text cursor.
func (d *Dev) Clear() {
	d.buf.Clear()
	d.text.Home()
}

// SetPixel sets one pixel. Negative coordinates are mirrored to their
// absolute value; pixels outside the panel are ignored.
func (d *Dev) SetPixel(x, y int, c Color) {
	d.buf.SetPixel(x, y, c)
}

// Pixel returns one pixel, Paper outside the panel.
func (d *Dev) Pixel(x, y int) Color {
	return d.buf.Pixel(x, y)
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both ends included.
func (d *Dev) DrawLine(x0, y0, x1, y1 int, c Color) {
	raster.Line(d.buf, x0, y0, x1, y1, c)
}

// DrawRect draws the outline of a w x h rectangle.
func (d *Dev) DrawRect(x, y, w, h int, c Color) {
	raster.Rect(d.buf, x, y, w, h, c)
}

// FillRect fills a w x h rectangle.
func (d *Dev) FillRect(x, y, w, h int, c Color) {
	raster.FillRect(d.buf, x, y, w, h, c)
}

// DrawCircle draws the outline of a circle of radius r.
func (d *Dev) DrawCircle(x0, y0, r int, c Color) {
	raster.Circle(d.buf, x0, y0, r, c)
}

// FillCircle fills a circle of radius r.
func (d *Dev) FillCircle(x0, y0, r int, c Color) {
	raster.FillCircle(d.buf, x0, y0, r, c)
}

// DrawBitmap paints c where bitmap has a bit set. bitmap is page packed
// like the frame, w bytes per band of 8 rows.
func (d *Dev) DrawBitmap(x, y int, bitmap []byte, w, h int, c Color) {
	raster.Bitmap(d.buf, x, y, bitmap, w, h, c)
}

// DrawChar draws one glyph with its top left corner at (x, y), using the
// text size. The cursor is not moved.
func (d *Dev) DrawChar(x, y int, ch byte, c Color) {
	raster.Glyph(d.buf, x, y, ch, c, d.text.Size)
}

// DrawString moves the text cursor to (x, y) and prints s with the text
// color and size.
func (d *Dev) DrawString(x, y int, s string) {
	d.text.DrawString(x, y, s)
}

// SetCursor moves the text cursor.
func (d *Dev) SetCursor(x, y int) {
	d.text.SetCursor(x, y)
}

// Cursor returns the text cursor.
func (d *Dev) Cursor() (int, int) {
	return d.text.Cursor()
}

// SetTextColor sets the glyph color; the cell background is its inverse.
func (d *Dev) SetTextColor(c Color) {
	d.text.Color = c
}

// SetTextSize sets the glyph scale factor. Values below 1 are treated as 1.
func (d *Dev) SetTextSize(size int) {
	if size < 1 {
		size = 1
	}
	d.text.Size = size
}

// Text returns the text writer printing at the cursor, an io.Writer.
func (d *Dev) Text() *raster.Writer {
	return d.text
}

// Buffer returns the frame. It can be drawn to directly, for example with
// image/draw or a font.Drawer.
func (d *Dev) Buffer() *framebuffer.Buffer {
	return d.buf
}
