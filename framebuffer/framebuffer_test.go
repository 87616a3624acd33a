// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package framebuffer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestSetPixelRoundTrip(t *testing.T) {
	b := New()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			b.SetPixel(x, y, Ink)
			if got := b.Pixel(x, y); got != Ink {
				t.Fatalf("Pixel(%d, %d) = %s after setting Ink", x, y, got)
			}
			b.SetPixel(x, y, Paper)
			if got := b.Pixel(x, y); got != Paper {
				t.Fatalf("Pixel(%d, %d) = %s after setting Paper", x, y, got)
			}
		}
	}
}

func TestPacking(t *testing.T) {
	for _, tc := range []struct {
		x, y  int
		index int
		value byte
	}{
		{0, 0, 0, 0x01},
		{0, 7, 0, 0x80},
		{1, 0, 1, 0x01},
		{83, 0, 83, 0x01},
		{0, 8, 84, 0x01},
		{10, 13, 94, 0x20},
		{83, 47, Size - 1, 0x80},
	} {
		b := New()
		b.SetPixel(tc.x, tc.y, Ink)
		want := make([]byte, Size)
		want[tc.index] = tc.value
		if !bytes.Equal(b.Pix, want) {
			t.Errorf("SetPixel(%d, %d): Pix[%d] = %#x, want %#x", tc.x, tc.y, tc.index, b.Pix[tc.index], tc.value)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	b := New()
	for _, p := range []image.Point{{Width, 0}, {0, Height}, {Width, Height}, {1000, 3}, {-Width, 0}, {0, -Height}} {
		b.SetPixel(p.X, p.Y, Ink)
		if got := b.Pixel(p.X, p.Y); got != Paper {
			t.Errorf("Pixel(%d, %d) = %s, want Paper", p.X, p.Y, got)
		}
	}
	if !bytes.Equal(b.Pix, make([]byte, Size)) {
		t.Fatal("out of bounds writes modified the frame")
	}
}

func TestNegativeCoordinatesMirror(t *testing.T) {
	b := New()
	b.SetPixel(-3, -5, Ink)
	if b.Pixel(3, 5) != Ink {
		t.Fatal("SetPixel(-3, -5) must set (3, 5)")
	}
	if b.Pixel(-3, -5) != Paper {
		t.Fatal("Pixel() must not mirror negative coordinates")
	}
}

func TestClear(t *testing.T) {
	b := New()
	b.Fill(Ink)
	b.ResetDirty()
	b.Clear()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.Pixel(x, y) != Paper {
				t.Fatalf("Pixel(%d, %d) set after Clear()", x, y)
			}
		}
	}
	if b.Dirty() != b.Bounds() {
		t.Fatalf("Dirty() = %s, want full frame", b.Dirty())
	}
}

func TestInvert(t *testing.T) {
	b := New()
	b.SetPixel(4, 4, Ink)
	b.Invert()
	if b.Pixel(4, 4) != Paper || b.Pixel(5, 4) != Ink {
		t.Fatal("Invert() did not flip pixels")
	}
}

func TestLoad(t *testing.T) {
	b := New()
	src := bytes.Repeat([]byte{0xA5}, Size)
	if err := b.Load(src); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Pix, src) {
		t.Fatal("Load() did not copy the frame")
	}
	if !bytes.Equal(b.Page(1), src[Width:2*Width]) {
		t.Fatal("Page(1) mismatch")
	}
	for _, n := range []int{0, Size - 1, Size + 1} {
		if err := b.Load(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Load(%d bytes) = %v, want ErrInvalidLength", n, err)
		}
	}
	if !bytes.Equal(b.Pix, src) {
		t.Fatal("failed Load() modified the frame")
	}
}

func TestDirty(t *testing.T) {
	b := New()
	if !b.Dirty().Empty() {
		t.Fatal("new buffer must be clean")
	}
	b.SetPixel(3, 4, Ink)
	b.SetPixel(10, 2, Paper)
	b.SetPixel(100, 100, Ink)
	if want := image.Rect(3, 2, 11, 5); b.Dirty() != want {
		t.Fatalf("Dirty() = %s, want %s", b.Dirty(), want)
	}
	b.ResetDirty()
	if !b.Dirty().Empty() {
		t.Fatal("ResetDirty() did not clear the box")
	}
}

func TestImage1bitLayout(t *testing.T) {
	b := New()
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height))
	for _, p := range []image.Point{{0, 0}, {1, 7}, {83, 8}, {42, 23}, {83, 47}} {
		b.SetPixel(p.X, p.Y, Ink)
		img.SetBit(p.X, p.Y, image1bit.On)
	}
	if len(b.Pix) != Size || b.Stride != Width {
		t.Fatalf("len(Pix) = %d, Stride = %d", len(b.Pix), b.Stride)
	}
	if !bytes.Equal(b.Pix, img.Pix) {
		t.Fatal("the frame must use the image1bit.VerticalLSB layout")
	}
}

func TestColorModel(t *testing.T) {
	b := New()
	if b.ColorModel() != image1bit.BitModel {
		t.Fatal("ColorModel() must be image1bit.BitModel")
	}
	for _, tc := range []struct {
		in   color.Color
		want Color
	}{
		{color.White, Ink},
		{color.Black, Paper},
		{color.Transparent, Paper},
		{color.Gray{Y: 0x20}, Paper},
		{color.Gray{Y: 0xE0}, Ink},
		{color.RGBA{R: 0xFF, A: 0xFF}, Ink},
		{Ink, Ink},
		{Paper, Paper},
	} {
		b.Set(1, 1, tc.in)
		if got := b.Pixel(1, 1); got != tc.want {
			t.Errorf("Set(%v): Pixel() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDrawImage(t *testing.T) {
	b := New()
	r := image.Rect(2, 3, 6, 12)
	draw.Draw(b, r, image.White, image.Point{}, draw.Src)
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			in := image.Pt(x, y).In(r)
			if got := b.Pixel(x, y) == Ink; got != in {
				t.Fatalf("Pixel(%d, %d) = %t, want %t", x, y, got, in)
			}
			if b.At(x, y) == Ink {
				n++
			}
		}
	}
	if n != r.Dx()*r.Dy() {
		t.Fatalf("%d pixels set, want %d", n, r.Dx()*r.Dy())
	}
	if b.Dirty() != r {
		t.Fatalf("Dirty() = %s, want %s", b.Dirty(), r)
	}
}
