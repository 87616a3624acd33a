// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package raster draws shapes, bitmaps and 5x8 text on a 1 bit canvas.
//
// Every function works through Canvas.SetPixel only, so clipping is whatever
// the canvas does. Nothing in this package returns an error: a shape that
// falls outside the canvas is silently cut.
package raster

import (
	"image"

	"github.com/GermanBionicSystems/pcd8544/framebuffer"
)

// Canvas is a 1 bit drawing surface. *framebuffer.Buffer implements it.
type Canvas interface {
	Bounds() image.Rectangle
	SetPixel(x, y int, c framebuffer.Color)
}

// Line draws a line from (x0, y0) to (x1, y1), both ends included, with
// Bresenham's algorithm.
func Line(cv Canvas, x0, y0, x1, y1 int, c framebuffer.Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2
	ystep := -1
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			cv.SetPixel(y0, x0, c)
		} else {
			cv.SetPixel(x0, y0, c)
		}
		err -= dy
		if err < 0 {
			y0 += ystep
			err += dx
		}
	}
}

// FillRect fills the w by h rectangle whose top left corner is (x, y).
func FillRect(cv Canvas, x, y, w, h int, c framebuffer.Color) {
	for i := x; i < x+w; i++ {
		for j := y; j < y+h; j++ {
			cv.SetPixel(i, j, c)
		}
	}
}

// Rect draws the outline of the w by h rectangle whose top left corner is
// (x, y).
func Rect(cv Canvas, x, y, w, h int, c framebuffer.Color) {
	for i := x; i < x+w; i++ {
		cv.SetPixel(i, y, c)
		cv.SetPixel(i, y+h-1, c)
	}
	for j := y; j < y+h; j++ {
		cv.SetPixel(x, j, c)
		cv.SetPixel(x+w-1, j, c)
	}
}

// Circle draws the outline of the circle of radius r centered on (x0, y0)
// with the midpoint algorithm.
func Circle(cv Canvas, x0, y0, r int, c framebuffer.Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	cv.SetPixel(x0, y0+r, c)
	cv.SetPixel(x0, y0-r, c)
	cv.SetPixel(x0+r, y0, c)
	cv.SetPixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		cv.SetPixel(x0+x, y0+y, c)
		cv.SetPixel(x0-x, y0+y, c)
		cv.SetPixel(x0+x, y0-y, c)
		cv.SetPixel(x0-x, y0-y, c)

		cv.SetPixel(x0+y, y0+x, c)
		cv.SetPixel(x0-y, y0+x, c)
		cv.SetPixel(x0+y, y0-x, c)
		cv.SetPixel(x0-y, y0-x, c)
	}
}

// FillCircle fills the circle of radius r centered on (x0, y0).
//
// The disc is covered with vertical spans, one per octant step, starting
// with the center column.
func FillCircle(cv Canvas, x0, y0, r int, c framebuffer.Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for i := y0 - r; i <= y0+r; i++ {
		cv.SetPixel(x0, i, c)
	}

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		for i := y0 - y; i <= y0+y; i++ {
			cv.SetPixel(x0+x, i, c)
			cv.SetPixel(x0-x, i, c)
		}
		for i := y0 - x; i <= y0+x; i++ {
			cv.SetPixel(x0+y, i, c)
			cv.SetPixel(x0-y, i, c)
		}
	}
}

// Bitmap draws the w by h image bitmap at (x, y).
//
// bitmap uses the panel layout: byte i+(j/8)*w holds column i of rows
// (j/8)*8 to (j/8)*8+7, bit 0 on top. Set bits are drawn with c, clear bits
// leave the canvas untouched. A short bitmap is treated as clear past its
// end.
func Bitmap(cv Canvas, x, y int, bitmap []byte, w, h int, c framebuffer.Color) {
	for j := 0; j < h; j++ {
		row := (j / 8) * w
		m := byte(1) << uint(j%8)
		for i := 0; i < w; i++ {
			k := i + row
			if k >= len(bitmap) {
				break
			}
			if bitmap[k]&m != 0 {
				cv.SetPixel(x+i, y+j, c)
			}
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
