// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bitbang implements a write-only SPI port in software on top of
// general purpose output pins.
//
// It is meant for slow peripherals wired to arbitrary GPIOs, like the
// PCD8544 LCD controller which accepts at most 4MHz. Each bit costs a few
// pin writes plus a busy wait of half a clock period, so the effective
// rate depends on the host and is usually well below the requested
// frequency.
//
// The Port implements spi.PortCloser and spi.Pins; the Conn it returns
// implements spi.Conn and tinygo's drivers.SPI. All four SPI modes are
// supported, as well as spi.LSBFirst and spi.NoCS. There is no MISO line:
// any attempt to read fails.
package bitbang
