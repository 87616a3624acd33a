// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import "github.com/GermanBionicSystems/pcd8544/framebuffer"

// Basic instruction set (H=0).
const (
	functionSet    byte = 0x20
	displayControl byte = 0x08
	setYAddr       byte = 0x40
	setXAddr       byte = 0x80
)

// Function set flags.
const (
	powerDown           byte = 0x04
	extendedInstruction byte = 0x01
)

// Extended instruction set (H=1).
const (
	setTemp byte = 0x04
	setBias byte = 0x10
	setVop  byte = 0x80
)

const (
	maxVop  = 0x7F
	maxBias = 0x07
	maxTemp = 0x03
)

// mode is the meaning of a transfer, selected by the D/C line at the time
// the bits are shifted.
type mode bool

const (
	modeCommand mode = false
	modeData    mode = true
)

func (m mode) String() string {
	if m == modeData {
		return "data"
	}
	return "command"
}

type controller interface {
	reset()
	sendCommand(cmd ...byte)
	sendData(data []byte)
}

// initDisplay resets the controller and brings it to the basic instruction
// set with a normal display.
func initDisplay(ctrl controller, opts *Opts) {
	ctrl.reset()
	ctrl.sendCommand(
		functionSet|extendedInstruction,
		setBias|clamp(opts.Bias, maxBias),
		setVop|clamp(opts.Contrast, maxVop),
		functionSet,
		displayControl|byte(Normal),
	)
}

// extended sends one command of the extended instruction set and switches
// back to the basic one.
func extended(ctrl controller, cmd byte) {
	ctrl.sendCommand(functionSet|extendedInstruction, cmd, functionSet)
}

// flushFrame sends the whole frame, page after page.
//
// The trailing Y address command is needed by some panels to latch the
// last byte.
func flushFrame(ctrl controller, buf *framebuffer.Buffer) {
	for p := 0; p < framebuffer.Pages; p++ {
		ctrl.sendCommand(setYAddr|byte(p), setXAddr)
		ctrl.sendData(buf.Page(p))
	}
	ctrl.sendCommand(setYAddr)
}

func clamp(v, limit byte) byte {
	if v > limit {
		return limit
	}
	return v
}
