// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pcd8544

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/pcd8544/bitbang"
	"github.com/GermanBionicSystems/pcd8544/framebuffer"
	"github.com/GermanBionicSystems/pcd8544/raster"
)

var (
	// ErrInvalidArgument is returned for arguments the driver cannot use,
	// like a frame of the wrong size.
	ErrInvalidArgument = errors.New("pcd8544: invalid argument")
	// ErrHardwareFault is returned when a pin or the bus failed during a
	// command sequence. The sequence is abandoned at the first failure.
	ErrHardwareFault = errors.New("pcd8544: hardware fault")
)

// Color is a pixel value, Ink or Paper.
type Color = framebuffer.Color

const (
	// Ink is a dark pixel.
	Ink = framebuffer.Ink
	// Paper is a clear pixel.
	Paper = framebuffer.Paper
)

// DisplayMode selects what the panel shows.
type DisplayMode byte

// Display modes, as the operand of the display control command.
const (
	Blank    DisplayMode = 0x0
	Normal   DisplayMode = 0x4
	AllOn    DisplayMode = 0x1
	Inverted DisplayMode = 0x5
)

func (m DisplayMode) String() string {
	switch m {
	case Blank:
		return "Blank"
	case Normal:
		return "Normal"
	case AllOn:
		return "AllOn"
	case Inverted:
		return "Inverted"
	default:
		return fmt.Sprintf("DisplayMode(%#x)", byte(m))
	}
}

// Opts defines the options for the device.
type Opts struct {
	// Contrast is the operating voltage (VOP) setting, 0 to 0x7F. Larger
	// values are clamped.
	Contrast byte
	// Bias is the bias system, 0 to 7. 4 (1:48) suits the common 84x48
	// panels.
	Bias byte
	// ResetPulse is how long RST is held low during Init.
	ResetPulse time.Duration
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Contrast:   50,
	Bias:       4,
	ResetPulse: 500 * time.Millisecond,
}

// sleep is replaced in tests.
var sleep = time.Sleep

// Dev is an open handle to the display controller.
type Dev struct {
	// Communication
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinOut

	opts Opts

	// Mutable
	buf    *framebuffer.Buffer
	text   *raster.Writer
	mode   DisplayMode
	halted bool
}

// NewSPI returns a Dev that communicates over SPI with a PCD8544 controller
// and initializes it.
//
// The PCD8544 accepts at most 4MHz in SPI mode 0. dc selects command or data
// for each transfer and rst is the active low reset line; both are
// required.
func NewSPI(p spi.Port, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || rst == nil {
		return nil, fmt.Errorf("%w: dc and rst pins are required", ErrInvalidArgument)
	}
	if dc == gpio.INVALID || rst == gpio.INVALID {
		return nil, fmt.Errorf("%w: gpio.INVALID cannot be used for dc or rst", ErrInvalidArgument)
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("pcd8544: %w", err)
	}
	d := newDev(c, dc, rst, opts)
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewBitBang returns a Dev driven by five general purpose outputs, the
// serial link being bit-banged in software.
//
// # Wiring
//
// din to DIN, sclk to CLK, dc to D/C, rst to RST and cs to CE. cs may be
// nil when CE is tied to ground.
func NewBitBang(din, sclk, dc, rst, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	p, err := bitbang.New(din, sclk, cs, &bitbang.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return NewSPI(p, dc, rst, opts)
}

func newDev(c conn.Conn, dc, rst gpio.PinOut, opts *Opts) *Dev {
	buf := framebuffer.New()
	return &Dev{
		c:    c,
		dc:   dc,
		rst:  rst,
		opts: *opts,
		buf:  buf,
		text: raster.NewWriter(buf),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("pcd8544.Dev{%s, %s, %s, %s}", d.c, d.dc, d.rst, d.buf.Bounds().Max)
}

// Init resets the controller and programs bias, contrast and the normal
// display mode. It also homes the text cursor.
//
// RST is pulsed with CE released: the controller resets regardless of SCE,
// and the port only asserts CE around each command transfer.
//
// NewSPI calls it; call it again after an external reset.
func (d *Dev) Init() error {
	d.halted = false
	eh := errorHandler{d: d}
	initDisplay(&eh, &d.opts)
	if err := eh.result(); err != nil {
		return err
	}
	d.opts.Contrast = clamp(d.opts.Contrast, maxVop)
	d.opts.Bias = clamp(d.opts.Bias, maxBias)
	d.mode = Normal
	d.text.Home()
	return nil
}

// SetContrast changes the operating voltage, 0 to 0x7F. Larger values are
// clamped.
func (d *Dev) SetContrast(level byte) error {
	level = clamp(level, maxVop)
	eh := errorHandler{d: d}
	extended(&eh, setVop|level)
	if err := eh.result(); err != nil {
		return err
	}
	d.opts.Contrast = level
	return nil
}

// Contrast returns the current operating voltage setting.
func (d *Dev) Contrast() byte {
	return d.opts.Contrast
}

// SetBias changes the bias system, 0 to 7. Larger values are clamped.
func (d *Dev) SetBias(bias byte) error {
	bias = clamp(bias, maxBias)
	eh := errorHandler{d: d}
	extended(&eh, setBias|bias)
	if err := eh.result(); err != nil {
		return err
	}
	d.opts.Bias = bias
	return nil
}

// SetTemperatureCoefficient selects one of the 4 VLCD temperature
// coefficients, 0 to 3. Larger values are clamped.
func (d *Dev) SetTemperatureCoefficient(tc byte) error {
	eh := errorHandler{d: d}
	extended(&eh, setTemp|clamp(tc, maxTemp))
	return eh.result()
}

// SetDisplayMode changes what the panel shows. The frame is not modified.
func (d *Dev) SetDisplayMode(m DisplayMode) error {
	switch m {
	case Blank, Normal, AllOn, Inverted:
	default:
		return fmt.Errorf("%w: display mode %s", ErrInvalidArgument, m)
	}
	eh := errorHandler{d: d}
	eh.sendCommand(displayControl | byte(m))
	if err := eh.result(); err != nil {
		return err
	}
	d.mode = m
	return nil
}

// DisplayMode returns the current display mode.
func (d *Dev) DisplayMode() DisplayMode {
	return d.mode
}

// Invert the display (clear pixels on dark background vs the opposite).
func (d *Dev) Invert(inverted bool) error {
	if inverted {
		return d.SetDisplayMode(Inverted)
	}
	return d.SetDisplayMode(Normal)
}

// Halt powers the controller down. The display RAM is kept.
//
// Sending any other command afterward powers it back up.
func (d *Dev) Halt() error {
	eh := errorHandler{d: d}
	eh.sendCommand(functionSet | powerDown)
	if err := eh.result(); err != nil {
		return err
	}
	d.halted = true
	return nil
}

// Flush sends the whole frame to the panel.
func (d *Dev) Flush() error {
	eh := errorHandler{d: d}
	flushFrame(&eh, d.buf)
	if err := eh.result(); err != nil {
		return err
	}
	d.buf.ResetDirty()
	return nil
}

// Load replaces the frame with pixels without sending it.
//
// pixels must be exactly one frame in the controller layout: byte
// x+page*84 holds rows page*8 (bit 0) to page*8+7 (bit 7) of column x.
func (d *Dev) Load(pixels []byte) error {
	if err := d.buf.Load(pixels); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

// Write replaces the frame with pixels and sends it.
//
// The format is the one of Load, the same as framebuffer.Buffer.Pix.
func (d *Dev) Write(pixels []byte) (int, error) {
	if err := d.Load(pixels); err != nil {
		return 0, err
	}
	if err := d.Flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// ShowLogo displays Logo.
func (d *Dev) ShowLogo() error {
	_, err := d.Write(Logo[:])
	return err
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit. Bright
// colors are converted to Ink.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.buf.Bounds()
}

// Draw implements display.Drawer.
//
// src is converted into the frame, then the whole frame is sent.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if b, ok := src.(*framebuffer.Buffer); ok {
		src = b.VerticalLSB
	}
	if img, ok := src.(*image1bit.VerticalLSB); ok && r == d.buf.Rect && img.Rect == d.buf.Rect && sp.X == 0 && sp.Y == 0 {
		// Exact size, full frame, image1bit encoding: fast path!
		if err := d.buf.Load(img.Pix); err != nil {
			return err
		}
	} else {
		draw.Src.Draw(d.buf, r, src, sp)
	}
	return d.Flush()
}

var _ display.Drawer = &Dev{}
