// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/GermanBionicSystems/pcd8544/framebuffer"
)

// MaxScale is the largest magnification a client can request.
const MaxScale = 16

// StreamOpts represents the options available for a Stream.
type StreamOpts struct {
	// Scale is the default magnification, each panel pixel becomes a Scale x
	// Scale block. 0 means 4.
	Scale int
	// Ink and Paper are the colors of the images.
	Ink, Paper color.NRGBA
}

// Stream is a display.Drawer serving the emulated panel over HTTP.
//
// Each GET request receives a "multipart/x-mixed-replace" response, the
// MJPEG protocol of IP cameras but with PNG images, starting with the
// current frame and followed by a new image on every change. Browsers show
// it as a live picture. The "scale" URL parameter overrides the default
// magnification.
type Stream struct {
	scale   int
	palette color.Palette
	enc     png.Encoder

	mu       sync.Mutex
	frame    *framebuffer.Buffer
	clients  map[*client]struct{}
	snapshot map[int][]byte
}

// NewStream returns a Stream showing a clear panel.
func NewStream(opts *StreamOpts) *Stream {
	if opts == nil {
		opts = &StreamOpts{Ink: DefaultOpts.Ink, Paper: DefaultOpts.Paper}
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 4
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	return &Stream{
		scale: scale,
		// Paper is index 0, Ink is index 1.
		palette:  color.Palette{opts.Paper, opts.Ink},
		enc:      png.Encoder{CompressionLevel: png.BestSpeed},
		frame:    framebuffer.New(),
		clients:  map[*client]struct{}{},
		snapshot: map[int][]byte{},
	}
}

func (s *Stream) String() string {
	return "PreviewStream"
}

// Halt implements conn.Resource and terminates all running client requests
// asynchronously.
func (s *Stream) Halt() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.terminate <- struct{}{}:
		default:
		}
	}
	return nil
}

// ColorModel implements display.Drawer.
func (s *Stream) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (s *Stream) Bounds() image.Rectangle {
	return s.frame.Bounds()
}

// Draw implements display.Drawer.
func (s *Stream) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	draw.Src.Draw(s.frame, r, src, sp)
	s.frameChangedLocked()
	return nil
}

// Write accepts a frame in the PCD8544 layout, like pcd8544.Dev.Write.
func (s *Stream) Write(pixels []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.frame.Load(pixels); err != nil {
		return 0, fmt.Errorf("preview: %w", err)
	}
	s.frameChangedLocked()
	return len(pixels), nil
}

type client struct {
	refresh   chan struct{}
	terminate chan struct{}
}

func (s *Stream) frameChangedLocked() {
	clear(s.snapshot)
	for c := range s.clients {
		select {
		case c.refresh <- struct{}{}:
		default:
		}
	}
}

// render returns the frame magnified by scale.
func (s *Stream) render(scale int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, framebuffer.Width*scale, framebuffer.Height*scale), s.palette)
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < img.Rect.Dx(); x++ {
			if s.frame.Pixel(x/scale, y/scale) == framebuffer.Ink {
				row[x] = 1
			}
		}
	}
	return img
}

// grabSnapshot returns the current frame as a PNG image, encoding it once
// per change and scale.
func (s *Stream) grabSnapshot(scale int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.snapshot[scale]; ok {
		return b, nil
	}
	var buf bytes.Buffer
	if err := s.enc.Encode(&buf, s.render(scale)); err != nil {
		return nil, err
	}
	s.snapshot[scale] = buf.Bytes()
	return buf.Bytes(), nil
}

func (s *Stream) scaleFromQuery(values url.Values) (int, error) {
	v := values.Get("scale")
	if v == "" {
		return s.scale, nil
	}
	scale, err := strconv.Atoi(v)
	if err != nil || scale < 1 || scale > MaxScale {
		return 0, fmt.Errorf("scale must be between 1 and %d, got %q", MaxScale, v)
	}
	return scale, nil
}

// ServeHTTP handles HTTP GET requests and sends a stream of images
// representing the panel in response.
func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.Body.Close(); err != nil {
		log.Printf("Closing request body failed: %v", err)
	}
	if r.Method != http.MethodGet {
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}
	scale, err := s.scaleFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	feed, err := newPNGFeed(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", feed.contentType())

	c := &client{
		refresh:   make(chan struct{}, 1),
		terminate: make(chan struct{}, 1),
	}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
	}()

	for {
		payload, err := s.grabSnapshot(scale)
		if err != nil {
			log.Printf("Encoding frame failed: %v", err)
			return
		}
		// Errors silently terminate the request, there's no way to report
		// them within an image stream.
		if err := feed.writeFrame(payload); err != nil {
			return
		}
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}

		select {
		case <-c.refresh:
		case <-c.terminate:
			return
		case <-r.Context().Done():
			return
		}
	}
}

var _ display.Drawer = &Stream{}
var _ http.Handler = &Stream{}
