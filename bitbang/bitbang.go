// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bitbang

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/cpu"
	"tinygo.org/x/drivers"
)

// BitOrder selects which bit of a byte is shifted out first.
type BitOrder uint8

const (
	// MSBFirst shifts bit 7 first. This is the SPI default.
	MSBFirst BitOrder = iota
	// LSBFirst shifts bit 0 first.
	LSBFirst
)

func (o BitOrder) String() string {
	if o == LSBFirst {
		return "LSBFirst"
	}
	return "MSBFirst"
}

// level returns the level of the i-th bit of b to shift out.
func (o BitOrder) level(b byte, i int) gpio.Level {
	if o == LSBFirst {
		return b&(1<<uint(i)) != 0
	}
	return b&(0x80>>uint(i)) != 0
}

var (
	// ErrReadUnsupported is returned when a read buffer is passed; there is
	// no MISO line.
	ErrReadUnsupported = errors.New("bitbang: read is not supported, the link is write-only")
	// ErrClosed is returned when using a closed port.
	ErrClosed = errors.New("bitbang: port is closed")
)

// Opts defines the port options.
type Opts struct {
	// MaxSpeed caps the clock rate of connections. Zero means no cap.
	MaxSpeed physic.Frequency
	// Spin blocks the calling goroutine for about d without sleeping. It
	// paces the clock edges.
	Spin func(d time.Duration)
}

// DefaultOpts caps the clock to 4MHz and busy waits with cpu.Nanospin.
var DefaultOpts = Opts{
	MaxSpeed: 4 * physic.MegaHertz,
	Spin:     cpu.Nanospin,
}

// Port is a software SPI port.
type Port struct {
	mu       sync.Mutex
	sdo      gpio.PinOut
	sclk     gpio.PinOut
	cs       gpio.PinOut
	spin     func(time.Duration)
	maxSpeed physic.Frequency
	c        *Conn
	closed   bool
}

// New returns a Port shifting data out on sdo, clocked by sclk.
//
// cs may be nil when the peripheral chip select is tied low.
func New(sdo, sclk, cs gpio.PinOut, opts *Opts) (*Port, error) {
	if sdo == nil || sclk == nil {
		return nil, errors.New("bitbang: data and clock pins are required")
	}
	if sdo == gpio.INVALID || sclk == gpio.INVALID || cs == gpio.INVALID {
		return nil, errors.New("bitbang: use nil for cs to leave it unmanaged, do not use gpio.INVALID")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.MaxSpeed < 0 {
		return nil, fmt.Errorf("bitbang: invalid maximum speed %s", opts.MaxSpeed)
	}
	p := &Port{
		sdo:      sdo,
		sclk:     sclk,
		cs:       cs,
		spin:     opts.Spin,
		maxSpeed: opts.MaxSpeed,
	}
	if p.spin == nil {
		p.spin = cpu.Nanospin
	}
	return p, nil
}

func (p *Port) String() string {
	if p.cs == nil {
		return fmt.Sprintf("bitbang{%s, %s}", p.sdo, p.sclk)
	}
	return fmt.Sprintf("bitbang{%s, %s, %s}", p.sdo, p.sclk, p.cs)
}

// Connect implements spi.Port.
//
// Only 8 bits words are supported. A zero frequency means the fastest rate
// allowed by MaxSpeed; with no cap either, edges are not paced at all.
func (p *Port) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if bits != 8 {
		return nil, fmt.Errorf("bitbang: %d bits per word is not supported", bits)
	}
	if f < 0 {
		return nil, fmt.Errorf("bitbang: invalid frequency %s", f)
	}
	if mode&spi.HalfDuplex != 0 {
		return nil, errors.New("bitbang: half duplex mode is not supported")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrClosed
	}
	if p.c != nil {
		return nil, errors.New("bitbang: Connect() can only be called once")
	}
	c := &Conn{
		p:     p,
		mode:  mode & 3,
		order: MSBFirst,
		noCS:  mode&spi.NoCS != 0 || p.cs == nil,
	}
	if mode&spi.LSBFirst != 0 {
		c.order = LSBFirst
	}
	c.setSpeed(f)
	// Park the lines before the first transfer.
	if err := p.sclk.Out(c.idle()); err != nil {
		return nil, err
	}
	if !c.noCS {
		if err := p.cs.Out(gpio.High); err != nil {
			return nil, err
		}
	}
	p.c = c
	return c, nil
}

// LimitSpeed implements spi.Port.
func (p *Port) LimitSpeed(f physic.Frequency) error {
	if f <= 0 {
		return fmt.Errorf("bitbang: invalid maximum speed %s", f)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maxSpeed = f
	if p.c != nil {
		p.c.setSpeed(p.c.f)
	}
	return nil
}

// Close implements io.Closer. The lines are left low, chip select high.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	var errs []error
	if p.cs != nil {
		errs = append(errs, p.cs.Out(gpio.High))
	}
	errs = append(errs, p.sclk.Out(gpio.Low), p.sdo.Out(gpio.Low))
	return errors.Join(errs...)
}

// CLK implements spi.Pins.
func (p *Port) CLK() gpio.PinOut {
	return p.sclk
}

// MOSI implements spi.Pins.
func (p *Port) MOSI() gpio.PinOut {
	return p.sdo
}

// MISO implements spi.Pins. There is none.
func (p *Port) MISO() gpio.PinIn {
	return gpio.INVALID
}

// CS implements spi.Pins.
func (p *Port) CS() gpio.PinOut {
	if p.cs == nil {
		return gpio.INVALID
	}
	return p.cs
}

// Conn is a connection on a Port.
type Conn struct {
	p     *Port
	mode  spi.Mode
	order BitOrder
	noCS  bool
	// f is the requested clock rate; half is the resulting half period,
	// after applying the port's cap.
	f    physic.Frequency
	half time.Duration
}

func (c *Conn) String() string {
	return fmt.Sprintf("%s: %s %s %s", c.p, c.f, c.mode, c.order)
}

// Duplex implements conn.Conn. The link is write-only.
func (c *Conn) Duplex() conn.Duplex {
	return conn.Half
}

// Tx implements conn.Conn.
//
// Chip select is asserted for the whole of w and released on return, even
// when the transfer fails. r must be empty.
func (c *Conn) Tx(w, r []byte) error {
	if len(r) != 0 {
		return ErrReadUnsupported
	}
	c.p.mu.Lock()
	defer c.p.mu.Unlock()
	if c.p.closed {
		return ErrClosed
	}
	if err := c.selectChip(); err != nil {
		return err
	}
	if err := c.write(w); err != nil {
		return errors.Join(err, c.releaseChip())
	}
	return c.releaseChip()
}

// TxPackets implements spi.Conn.
func (c *Conn) TxPackets(pkts []spi.Packet) error {
	for i := range pkts {
		if len(pkts[i].R) != 0 {
			return ErrReadUnsupported
		}
		if b := pkts[i].BitsPerWord; b != 0 && b != 8 {
			return fmt.Errorf("bitbang: %d bits per word is not supported", b)
		}
	}
	c.p.mu.Lock()
	defer c.p.mu.Unlock()
	if c.p.closed {
		return ErrClosed
	}
	selected := false
	for _, pkt := range pkts {
		if !selected {
			if err := c.selectChip(); err != nil {
				return err
			}
			selected = true
		}
		if err := c.write(pkt.W); err != nil {
			return errors.Join(err, c.releaseChip())
		}
		if !pkt.KeepCS {
			if err := c.releaseChip(); err != nil {
				return err
			}
			selected = false
		}
	}
	if selected {
		return c.releaseChip()
	}
	return nil
}

// Transfer implements tinygo's drivers.SPI. It always reads back 0.
func (c *Conn) Transfer(b byte) (byte, error) {
	return 0, c.Tx([]byte{b}, nil)
}

// ShiftOut shifts the 8 bits of b out in the specified order, ignoring the
// order the connection was opened with. Chip select is not touched.
func (c *Conn) ShiftOut(order BitOrder, b byte) error {
	c.p.mu.Lock()
	defer c.p.mu.Unlock()
	if c.p.closed {
		return ErrClosed
	}
	return c.shiftOut(order, b)
}

func (c *Conn) write(w []byte) error {
	for _, b := range w {
		if err := c.shiftOut(c.order, b); err != nil {
			return err
		}
	}
	return nil
}

// shiftOut clocks one byte. With CPHA=0 the data line is set before the
// leading edge, with CPHA=1 right after it; the peripheral samples on the
// following edge.
func (c *Conn) shiftOut(order BitOrder, b byte) error {
	idle := c.idle()
	cpha := c.mode&1 != 0
	for i := 0; i < 8; i++ {
		bit := order.level(b, i)
		if !cpha {
			if err := c.p.sdo.Out(bit); err != nil {
				return err
			}
		}
		if err := c.p.sclk.Out(!idle); err != nil {
			return err
		}
		if cpha {
			if err := c.p.sdo.Out(bit); err != nil {
				return err
			}
		}
		c.wait()
		if err := c.p.sclk.Out(idle); err != nil {
			return err
		}
		c.wait()
	}
	return nil
}

func (c *Conn) selectChip() error {
	if c.noCS {
		return nil
	}
	return c.p.cs.Out(gpio.Low)
}

func (c *Conn) releaseChip() error {
	if c.noCS {
		return nil
	}
	return c.p.cs.Out(gpio.High)
}

// idle is the clock level between transfers, CPOL.
func (c *Conn) idle() gpio.Level {
	return c.mode&2 != 0
}

func (c *Conn) wait() {
	if c.half > 0 {
		c.p.spin(c.half)
	}
}

// setSpeed must be called with p.mu held.
func (c *Conn) setSpeed(f physic.Frequency) {
	c.f = f
	eff := f
	if c.p.maxSpeed != 0 && (eff == 0 || eff > c.p.maxSpeed) {
		eff = c.p.maxSpeed
	}
	c.half = 0
	if eff > 0 {
		c.half = eff.Period() / 2
	}
}

var _ spi.PortCloser = &Port{}
var _ spi.Pins = &Port{}
var _ spi.Conn = &Conn{}
var _ drivers.SPI = &Conn{}
