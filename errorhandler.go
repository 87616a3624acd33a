// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler implements controller on a Dev and keeps the first error;
// every call after a failure is a no-op.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

func (eh *errorHandler) cTx(w []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.c.Tx(w, nil)
}

func (eh *errorHandler) reset() {
	eh.rstOut(gpio.Low)
	if eh.err != nil {
		return
	}
	sleep(eh.d.opts.ResetPulse)
	eh.rstOut(gpio.High)
	if eh.err == nil {
		eh.d.halted = false
	}
}

// send drives D/C for m, then shifts b.
func (eh *errorHandler) send(m mode, b []byte) {
	eh.dcOut(gpio.Level(m))
	eh.cTx(b)
}

func (eh *errorHandler) sendCommand(cmd ...byte) {
	if eh.err != nil {
		return
	}
	if eh.d.halted {
		// Transparently power the controller back up.
		cmd = append([]byte{functionSet}, cmd...)
	}
	eh.send(modeCommand, cmd)
	if eh.err == nil {
		eh.d.halted = false
	}
}

func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil {
		return
	}
	if eh.d.halted {
		eh.sendCommand()
	}
	eh.send(modeData, data)
}

// result returns the recorded error, if any, as a hardware fault.
func (eh *errorHandler) result() error {
	if eh.err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrHardwareFault, eh.err)
}
