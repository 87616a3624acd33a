// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package framebuffer implements the 1 bit per pixel memory image of a
// PCD8544 panel.
//
// The frame is an image1bit.VerticalLSB, which packs pixels the way the
// controller stores them: the panel is cut in horizontal pages of 8 rows,
// each page holds one byte per column and bit 0 of that byte is the top row
// of the page. Flushing the buffer is thus a straight copy of Pix, page
// after page.
package framebuffer

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	// Width of the panel in pixels.
	Width = 84
	// Height of the panel in pixels.
	Height = 48
	// Pages is the number of 8 rows bands.
	Pages = Height / 8
	// Size is the length in bytes of a full frame.
	Size = Width * Height / 8
)

// ErrInvalidLength is returned by Load when the source is not exactly one
// frame long.
var ErrInvalidLength = errors.New("framebuffer: invalid frame length")

// Color is a pixel value.
//
// image1bit.BitModel converts bright colors to Ink, like a lit pixel on an
// OLED: draw Ink on Paper with white on black.
type Color = image1bit.Bit

const (
	// Ink is a set pixel, dark on the panel.
	Ink = image1bit.On
	// Paper is a clear pixel, the background.
	Paper = image1bit.Off
)

// Buffer is a full frame.
//
// Buffer implements draw.Image so it can be the destination of image/draw
// and golang.org/x/image/font operations. Set and SetPixel track the
// modified area; writing Pix or calling SetBit directly does not.
type Buffer struct {
	*image1bit.VerticalLSB

	dirty image.Rectangle
}

// New returns a blank frame.
func New() *Buffer {
	return &Buffer{VerticalLSB: image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height))}
}

func (b *Buffer) String() string {
	return fmt.Sprintf("framebuffer.Buffer{%dx%d, dirty %s}", Width, Height, b.dirty)
}

// SetPixel sets the pixel at (x, y).
//
// Negative coordinates are replaced by their absolute value. This mirrors
// shapes crossing the top or left edge; callers should not rely on it.
// Anything beyond the right or bottom edge is ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	if x >= Width || y >= Height {
		return
	}
	b.SetBit(x, y, c)
	b.dirty = b.dirty.Union(image.Rect(x, y, x+1, y+1))
}

// Pixel returns the pixel at (x, y), Paper if outside the panel.
func (b *Buffer) Pixel(x, y int) Color {
	return b.BitAt(x, y)
}

// Set implements draw.Image.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(b.Rect) {
		return
	}
	b.SetPixel(x, y, image1bit.BitModel.Convert(c).(Color))
}

// Clear blanks the frame and marks all of it as modified.
func (b *Buffer) Clear() {
	b.Fill(Paper)
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	v := byte(0)
	if c == Ink {
		v = 0xFF
	}
	for i := range b.Pix {
		b.Pix[i] = v
	}
	b.dirty = b.Rect
}

// Invert flips every pixel.
func (b *Buffer) Invert() {
	for i := range b.Pix {
		b.Pix[i] = ^b.Pix[i]
	}
	b.dirty = b.Rect
}

// Load replaces the frame with src, which must be exactly Size bytes in the
// native page layout.
func (b *Buffer) Load(src []byte) error {
	if len(src) != Size {
		return fmt.Errorf("%w; expected %d bytes, got %d bytes", ErrInvalidLength, Size, len(src))
	}
	copy(b.Pix, src)
	b.dirty = b.Rect
	return nil
}

// Page returns the Width bytes of page p.
func (b *Buffer) Page(p int) []byte {
	return b.Pix[p*b.Stride : (p+1)*b.Stride]
}

// Dirty returns the smallest rectangle covering every pixel written since
// the last ResetDirty.
func (b *Buffer) Dirty() image.Rectangle {
	return b.dirty
}

// ResetDirty marks the frame as unmodified.
func (b *Buffer) ResetDirty() {
	b.dirty = image.Rectangle{}
}
