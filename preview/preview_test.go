// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math/bits"
	"strings"
	"testing"

	"github.com/maruel/ansi256"

	"github.com/GermanBionicSystems/pcd8544/framebuffer"
)

func newTestDev() (*Dev, *bytes.Buffer, string, string) {
	var out bytes.Buffer
	opts := DefaultOpts
	opts.W = &out
	d := New(&opts)
	return d, &out, ansi256.Default.Block(opts.Ink), ansi256.Default.Block(opts.Paper)
}

func TestWrite(t *testing.T) {
	d, out, ink, paper := newTestDev()
	if ink == paper {
		t.Fatal("ink and paper must render differently")
	}
	pix := make([]byte, framebuffer.Size)
	for i := range pix {
		pix[i] = byte(i)
	}
	n, err := d.Write(pix)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(pix) {
		t.Errorf("Write() = %d, want %d", n, len(pix))
	}
	want := 0
	for _, b := range pix {
		want += bits.OnesCount8(b)
	}
	s := out.String()
	if got := strings.Count(s, ink); got != want {
		t.Errorf("%d ink pixels printed, want %d", got, want)
	}
	if got := strings.Count(s, paper); got != framebuffer.Width*framebuffer.Height-want {
		t.Errorf("%d paper pixels printed, want %d", got, framebuffer.Width*framebuffer.Height-want)
	}
	if got := strings.Count(s, "\n"); got != framebuffer.Height {
		t.Errorf("%d lines printed, want %d", got, framebuffer.Height)
	}
	if !strings.HasPrefix(s, "\033[H") {
		t.Error("a frame must start at the top of the terminal")
	}
}

func TestWriteInvalid(t *testing.T) {
	d, out, _, _ := newTestDev()
	if _, err := d.Write([]byte{1, 2, 3}); !errors.Is(err, framebuffer.ErrInvalidLength) {
		t.Errorf("Write() = %v, want ErrInvalidLength", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing must be printed, got %q", out.String())
	}
}

func TestDraw(t *testing.T) {
	d, out, ink, _ := newTestDev()
	if err := d.Draw(image.Rect(0, 0, 2, 3), &image.Uniform{C: color.White}, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), ink); got != 6 {
		t.Errorf("%d ink pixels printed, want 6", got)
	}
	if d.Bounds() != image.Rect(0, 0, 84, 48) {
		t.Errorf("Bounds() = %v", d.Bounds())
	}
}

func TestHalt(t *testing.T) {
	d, out, _, _ := newTestDev()
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[0m\n" {
		t.Errorf("Halt() printed %q", got)
	}
	if d.String() != "Preview" {
		t.Errorf("String() = %q", d.String())
	}
}
