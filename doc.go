// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pcd8544 controls a 84x48 monochrome LCD via a PCD8544 controller,
// found in the Nokia 3310 and 5110 phones and many breakout boards.
//
// The controller is write-only. The driver keeps a copy of the frame in
// memory, drawing happens there and Flush sends the whole frame, 504 bytes,
// to the panel. The frame uses the controller layout: one byte holds 8
// vertical pixels, bit 0 on top.
//
// Pixels, lines, rectangles, circles, bitmaps and text in a 5x8 font can be
// drawn with the methods of Dev. The frame is also an image/draw target, so
// anything from the image ecosystem can be rendered through Draw.
//
// The panel is connected with 5 lines: DIN, CLK, D/C, RST and CE. It can be
// driven by a SPI port, or by any 5 general purpose outputs with
// NewBitBang.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/Monochrome/Nokia5110.pdf
package pcd8544
