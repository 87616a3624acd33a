// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// pcd8544demo runs a test pattern on a PCD8544 LCD wired to 5 GPIOs, or on
// the terminal with -preview.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/pcd8544"
	"github.com/GermanBionicSystems/pcd8544/framebuffer"
	"github.com/GermanBionicSystems/pcd8544/preview"
	"github.com/GermanBionicSystems/pcd8544/raster"
)

// screen is either the panel or its terminal preview.
type screen interface {
	display.Drawer
	Write(pixels []byte) (int, error)
}

func openPin(name string) (gpio.PinOut, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown pin %q", name)
	}
	return p, nil
}

func openPanel(din, sclk, dc, rst, cs string, contrast int) (*pcd8544.Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	var pins [5]gpio.PinOut
	for i, n := range []string{din, sclk, dc, rst, cs} {
		p, err := openPin(n)
		if err != nil {
			return nil, err
		}
		pins[i] = p
	}
	if contrast < 0 || contrast > 0x7F {
		return nil, fmt.Errorf("contrast %d out of range [0, 127]", contrast)
	}
	opts := pcd8544.DefaultOpts
	opts.Contrast = byte(contrast)
	return pcd8544.NewBitBang(pins[0], pins[1], pins[2], pins[3], pins[4], &opts)
}

// stepper shows each test frame for a while.
type stepper struct {
	s     screen
	buf   *framebuffer.Buffer
	delay time.Duration
}

func (st *stepper) show(name string) error {
	log.Printf("Test: %s", name)
	if _, err := st.s.Write(st.buf.Pix); err != nil {
		return err
	}
	time.Sleep(st.delay)
	st.buf.Clear()
	return nil
}

// allOn lights every pixel, with the controller when there is one.
func (st *stepper) allOn() error {
	d, ok := st.s.(*pcd8544.Dev)
	if !ok {
		st.buf.Fill(framebuffer.Ink)
		return st.show("All pixels on")
	}
	log.Print("Test: All pixels on")
	if err := d.SetDisplayMode(pcd8544.AllOn); err != nil {
		return err
	}
	time.Sleep(st.delay)
	return d.SetDisplayMode(pcd8544.Normal)
}

func runPattern(st *stepper) error {
	if err := st.allOn(); err != nil {
		return err
	}

	if err := st.buf.Load(pcd8544.Logo[:]); err != nil {
		return err
	}
	if err := st.show("Display logo"); err != nil {
		return err
	}

	st.buf.SetPixel(10, 10, framebuffer.Ink)
	if err := st.show("Display single pixel"); err != nil {
		return err
	}

	for i := 0; i < framebuffer.Width; i += 4 {
		raster.Line(st.buf, 0, 0, i, framebuffer.Height-1, framebuffer.Ink)
	}
	for i := 0; i < framebuffer.Height; i += 4 {
		raster.Line(st.buf, 0, 0, framebuffer.Width-1, i, framebuffer.Ink)
	}
	if err := st.show("Draw many lines"); err != nil {
		return err
	}

	for i := 0; i < framebuffer.Height; i += 2 {
		raster.Rect(st.buf, i, i, 96-i, framebuffer.Height-i, framebuffer.Ink)
	}
	if err := st.show("Draw rectangles"); err != nil {
		return err
	}

	for i := 0; i < framebuffer.Height; i++ {
		raster.FillRect(st.buf, i, i, framebuffer.Width-i, framebuffer.Height-i, framebuffer.Color(i%2 == 1))
	}
	if err := st.show("Draw multiple rectangles"); err != nil {
		return err
	}

	for i := 0; i < framebuffer.Height; i += 2 {
		raster.Circle(st.buf, 41, 23, i, framebuffer.Color((i/2)%2 == 0))
	}
	if err := st.show("Draw multiple circles"); err != nil {
		return err
	}

	for page := 0; page < 2; page++ {
		for i := 0; i < 64; i++ {
			raster.Glyph(st.buf, (i%14)*6, (i/14)*8, byte(i+64*page), framebuffer.Ink, 1)
		}
		if err := st.show(fmt.Sprintf("Draw characters %d to %d", 64*page, 64*page+63)); err != nil {
			return err
		}
	}
	return nil
}

// drawScene renders antialiased text with gg and lets the screen reduce it
// to one bit.
func drawScene(s screen) error {
	log.Print("Test: TrueType text")
	b := s.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	// Bright pixels become Ink.
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 14}))
	dc.DrawStringAnchored("periph", float64(b.Dx())/2, float64(b.Dy())/3, 0.5, 0.5)
	dc.DrawRoundedRectangle(2, 2, float64(b.Dx()-4), float64(b.Dy()-4), 6)
	dc.Stroke()
	for i := 0; i < 6; i++ {
		dc.DrawCircle(float64(14+11*i), float64(b.Dy())-12, 4)
	}
	dc.Fill()
	return s.Draw(b, dc.Image(), image.Point{})
}

func mainImpl() error {
	din := flag.String("din", "GPIO18", "DIN (data) pin")
	sclk := flag.String("sclk", "GPIO23", "SCLK (clock) pin")
	dc := flag.String("dc", "GPIO22", "D/C pin")
	rst := flag.String("rst", "GPIO27", "RST pin")
	cs := flag.String("cs", "GPIO17", "CE pin, empty when tied to ground")
	contrast := flag.Int("contrast", int(pcd8544.DefaultOpts.Contrast), "contrast, 0 to 127")
	delay := flag.Duration("delay", 2*time.Second, "time each test is shown")
	usePreview := flag.Bool("preview", false, "print on the terminal instead of driving a panel")
	httpAddr := flag.String("http", "", "serve the frames at this address instead of driving a panel, e.g. :8010")
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	var s screen
	if *httpAddr != "" {
		stream := preview.NewStream(nil)
		srv := &http.Server{Addr: *httpAddr, Handler: stream}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err)
			}
		}()
		defer srv.Close()
		log.Printf("Serving on http://%s/", *httpAddr)
		s = stream
	} else if *usePreview {
		s = preview.New(&preview.DefaultOpts)
	} else {
		d, err := openPanel(*din, *sclk, *dc, *rst, *cs, *contrast)
		if err != nil {
			return err
		}
		log.Printf("CLK on %s, DIN on %s, DC on %s, CS on %s, RST on %s", *sclk, *din, *dc, *cs, *rst)
		s = d
	}
	log.Printf("device=%s", s)

	st := &stepper{s: s, buf: framebuffer.New(), delay: *delay}
	if err := runPattern(st); err != nil {
		return err
	}
	if err := drawScene(s); err != nil {
		return err
	}
	time.Sleep(*delay)
	return s.Halt()
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "pcd8544demo: %s.\n", err)
		os.Exit(1)
	}
}
