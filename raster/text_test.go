// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package raster

import (
	"bytes"
	"fmt"
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/GermanBionicSystems/pcd8544/font5x8"
	"github.com/GermanBionicSystems/pcd8544/framebuffer"
)

// checkGlyph verifies the 6x8 cell at (x, y) holds ch drawn with fg.
func checkGlyph(t *testing.T, b *framebuffer.Buffer, x, y int, ch byte, fg framebuffer.Color) {
	t.Helper()
	g := font5x8.Glyph(ch)
	for i := 0; i < font5x8.Advance; i++ {
		for j := 0; j < font5x8.Height; j++ {
			want := !fg
			if i < font5x8.Width && g[i]&(1<<uint(j)) != 0 {
				want = fg
			}
			if got := b.Pixel(x+i, y+j); got != want {
				t.Fatalf("%q at (%d, %d): pixel (%d, %d) = %s, want %s", ch, x, y, i, j, got, want)
			}
		}
	}
}

func TestGlyph(t *testing.T) {
	b := framebuffer.New()
	b.Fill(framebuffer.Ink)
	Glyph(b, 7, 9, 'A', framebuffer.Ink, 1)
	checkGlyph(t, b, 7, 9, 'A', framebuffer.Ink)
	if b.Pixel(6, 9) != framebuffer.Ink || b.Pixel(13, 9) != framebuffer.Ink {
		t.Fatal("Glyph() painted outside its cell")
	}
}

func TestGlyphInverse(t *testing.T) {
	b := framebuffer.New()
	Glyph(b, 0, 0, 'Z', framebuffer.Paper, 1)
	checkGlyph(t, b, 0, 0, 'Z', framebuffer.Paper)
}

func TestGlyphOutside(t *testing.T) {
	for _, p := range []image.Point{{79, 0}, {83, 0}, {0, 48}} {
		b := framebuffer.New()
		Glyph(b, p.X, p.Y, 'A', framebuffer.Ink, 1)
		if got := len(inked(b)); got != 0 {
			t.Errorf("Glyph() at %s drew %d pixels", p, got)
		}
	}
	b := framebuffer.New()
	Glyph(b, 78, 0, 'A', framebuffer.Ink, 1)
	if len(inked(b)) == 0 {
		t.Fatal("Glyph() at x=78 must fit")
	}
}

func TestGlyphScaled(t *testing.T) {
	b := framebuffer.New()
	Glyph(b, 0, 0, 'A', framebuffer.Ink, 2)
	g := font5x8.Glyph('A')
	for i := 0; i < font5x8.Width; i++ {
		for j := 0; j < font5x8.Height; j++ {
			want := framebuffer.Paper
			if g[i]&(1<<uint(j)) != 0 {
				want = framebuffer.Ink
			}
			for _, p := range []image.Point{{2 * i, 2 * j}, {2*i + 1, 2*j + 1}} {
				if got := b.Pixel(p.X, p.Y); got != want {
					t.Fatalf("pixel %s = %s, want %s", p, got, want)
				}
			}
		}
	}
}

func TestGlyphMatchesFace(t *testing.T) {
	want := framebuffer.New()
	got := framebuffer.New()
	for i, c := range []byte("Hi5") {
		Glyph(want, 10+i*font5x8.Advance, 20, c, framebuffer.Ink, 1)
	}
	d := font.Drawer{
		Dst:  got,
		Src:  image.NewUniform(framebuffer.Ink),
		Face: font5x8.Face,
		Dot:  fixed.P(10, 20+font5x8.Height-1),
	}
	d.DrawString("Hi5")
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Fatal("font.Drawer with Face and Glyph() disagree")
	}
}

func TestWriterNewline(t *testing.T) {
	b := framebuffer.New()
	w := NewWriter(b)
	w.DrawString(0, 0, "A\nB")
	checkGlyph(t, b, 0, 0, 'A', framebuffer.Ink)
	checkGlyph(t, b, 0, 8, 'B', framebuffer.Ink)
	if x, y := w.Cursor(); x != 6 || y != 8 {
		t.Fatalf("Cursor() = (%d, %d), want (6, 8)", x, y)
	}
}

func TestWriterCarriageReturn(t *testing.T) {
	b := framebuffer.New()
	w := NewWriter(b)
	if _, err := fmt.Fprint(w, "ab\r\ncd"); err != nil {
		t.Fatal(err)
	}
	checkGlyph(t, b, 6, 0, 'b', framebuffer.Ink)
	checkGlyph(t, b, 6, 8, 'd', framebuffer.Ink)
	if x, y := w.Cursor(); x != 12 || y != 8 {
		t.Fatalf("Cursor() = (%d, %d), want (12, 8)", x, y)
	}
}

func TestWriterWrap(t *testing.T) {
	b := framebuffer.New()
	w := NewWriter(b)
	// 14 glyphs fit on a line.
	_, _ = w.WriteString("0123456789ABCD")
	if x, y := w.Cursor(); x != 0 || y != 8 {
		t.Fatalf("Cursor() = (%d, %d), want (0, 8)", x, y)
	}
	checkGlyph(t, b, 78, 0, 'D', framebuffer.Ink)
	_ = w.WriteByte('E')
	checkGlyph(t, b, 0, 8, 'E', framebuffer.Ink)
}

func TestWriterWrapToTop(t *testing.T) {
	b := framebuffer.New()
	w := NewWriter(b)
	w.SetCursor(30, 40)
	_ = w.WriteByte('\n')
	if x, y := w.Cursor(); x != 0 || y != 0 {
		t.Fatalf("Cursor() = (%d, %d), want (0, 0)", x, y)
	}
	w.SetCursor(78, 40)
	_ = w.WriteByte('x')
	if x, y := w.Cursor(); x != 0 || y != 0 {
		t.Fatalf("Cursor() = (%d, %d), want (0, 0)", x, y)
	}
}

func TestWriterHome(t *testing.T) {
	w := NewWriter(framebuffer.New())
	w.SetCursor(12, 16)
	w.Home()
	if x, y := w.Cursor(); x != 0 || y != 0 {
		t.Fatalf("Cursor() = (%d, %d), want (0, 0)", x, y)
	}
}

func TestWriterScaled(t *testing.T) {
	w := NewWriter(framebuffer.New())
	w.Size = 2
	_, _ = w.Write([]byte("ab\n"))
	if x, y := w.Cursor(); x != 0 || y != 16 {
		t.Fatalf("Cursor() = (%d, %d), want (0, 16)", x, y)
	}
}
