// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/GermanBionicSystems/pcd8544/framebuffer"
)

var (
	black = color.NRGBA{A: 0xFF}
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func startStream(t *testing.T, s *Stream, target string) *multipart.Reader {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	t.Cleanup(cancel)

	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	t.Cleanup(srv.CloseClientConnections)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+target, nil)
	if err != nil {
		t.Fatalf("NewRequest() failed: %v", err)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if got, want := resp.StatusCode, http.StatusOK; got != want {
		t.Fatalf("ServeHTTP() status %d, want %d", got, want)
	}
	mediaType, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		t.Fatalf("ParseMediaType() failed: %v", err)
	}
	if mediaType != "multipart/x-mixed-replace" {
		t.Fatalf("Content-Type is %q, want multipart/x-mixed-replace", mediaType)
	}
	return multipart.NewReader(resp.Body, params["boundary"])
}

func nextImage(t *testing.T, mr *multipart.Reader) image.Image {
	t.Helper()
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("NextPart() failed: %v", err)
	}
	if got := part.Header.Get("Content-Type"); got != "image/png" {
		t.Errorf("Content-Type is %q, want image/png", got)
	}
	content, err := io.ReadAll(part)
	if err != nil {
		t.Fatalf("ReadAll() failed: %v", err)
	}
	if l, err := strconv.Atoi(part.Header.Get("Content-Length")); err != nil || l != len(content) {
		t.Errorf("Read %d bytes, Content-Length header is %q", len(content), part.Header.Get("Content-Length"))
	}
	img, err := png.Decode(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("Decoding image failed: %v", err)
	}
	return img
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestStream(t *testing.T) {
	s := NewStream(&StreamOpts{Scale: 2, Ink: black, Paper: white})
	pix := make([]byte, framebuffer.Size)
	// Pixel (1, 1).
	pix[1] = 0x02
	if _, err := s.Write(pix); err != nil {
		t.Fatal(err)
	}

	mr := startStream(t, s, "/")

	img := nextImage(t, mr)
	if got, want := img.Bounds().Size(), image.Pt(168, 96); got != want {
		t.Fatalf("Got image size %v, want %v", got, want)
	}
	for _, tc := range []struct {
		x, y int
		want color.Color
	}{
		{0, 0, white},
		{1, 1, white},
		{2, 2, black},
		{3, 3, black},
		{4, 4, white},
		{167, 95, white},
	} {
		if got := img.At(tc.x, tc.y); !sameColor(got, tc.want) {
			t.Errorf("At(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}

	if err := s.Draw(s.Bounds(), &image.Uniform{C: color.White}, image.Point{}); err != nil {
		t.Fatal(err)
	}
	img = nextImage(t, mr)
	if got := img.At(100, 50); !sameColor(got, black) {
		t.Errorf("At(100, 50) = %v after Draw, want ink", got)
	}

	if err := s.Halt(); err != nil {
		t.Fatal(err)
	}
	if _, err := mr.NextPart(); err == nil {
		t.Error("Halt() must end the stream")
	}
}

func TestStreamScaleParam(t *testing.T) {
	s := NewStream(nil)
	mr := startStream(t, s, "/?scale=1")
	img := nextImage(t, mr)
	if got, want := img.Bounds().Size(), image.Pt(84, 48); got != want {
		t.Errorf("Got image size %v, want %v", got, want)
	}
	if !sameColor(img.At(0, 0), DefaultOpts.Paper) {
		t.Errorf("At(0, 0) = %v, want paper", img.At(0, 0))
	}
}

func TestStreamRequestStatus(t *testing.T) {
	for _, tc := range []struct {
		method     string
		target     string
		wantStatus int
	}{
		{
			target:     "/?scale=",
			wantStatus: http.StatusOK,
		},
		{
			target:     "/?scale=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			target:     "/?scale=17",
			wantStatus: http.StatusBadRequest,
		},
		{
			target:     "/?scale=big",
			wantStatus: http.StatusBadRequest,
		},
		{
			method:     http.MethodPost,
			target:     "/",
			wantStatus: http.StatusMethodNotAllowed,
		},
	} {
		t.Run(fmt.Sprint(tc), func(t *testing.T) {
			s := NewStream(nil)

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			t.Cleanup(cancel)

			srv := httptest.NewServer(s)
			t.Cleanup(srv.Close)
			t.Cleanup(srv.CloseClientConnections)

			req, err := http.NewRequestWithContext(ctx, tc.method, srv.URL+tc.target, nil)
			if err != nil {
				t.Fatalf("NewRequest() failed: %v", err)
			}
			resp, err := srv.Client().Do(req)
			if err != nil {
				t.Fatalf("Do() failed: %v", err)
			}
			defer resp.Body.Close()
			if got, want := resp.StatusCode, tc.wantStatus; got != want {
				t.Errorf("Request for %s %s returned status %d (%s), want %d",
					req.Method, req.URL.String(), got, resp.Status, want)
			}
		})
	}
}

func TestStreamWriteInvalid(t *testing.T) {
	s := NewStream(nil)
	if _, err := s.Write(nil); err == nil {
		t.Error("Write() must reject a short frame")
	}
}

