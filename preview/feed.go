// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
)

// newBoundary returns 30 random bytes in hex, a valid RFC 2046 boundary.
func newBoundary() (string, error) {
	var b [30]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("preview: boundary: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

// pngFeed streams PNG frames as a multipart/x-mixed-replace body.
//
// Every frame is written with the boundary that closes it, so a browser
// shows it without waiting for the next one. mime/multipart.Writer only
// emits a boundary when the next part starts.
type pngFeed struct {
	bw       *bufio.Writer
	boundary string
	// delim is the boundary line between frames.
	delim  string
	frames int
}

func newPNGFeed(w io.Writer) (*pngFeed, error) {
	boundary, err := newBoundary()
	if err != nil {
		return nil, err
	}
	return &pngFeed{
		bw:       bufio.NewWriter(w),
		boundary: boundary,
		delim:    "\r\n--" + boundary + "\r\n",
	}, nil
}

// contentType is the value of the response Content-Type header.
func (f *pngFeed) contentType() string {
	return mime.FormatMediaType("multipart/x-mixed-replace", map[string]string{"boundary": f.boundary})
}

// writeFrame sends one encoded PNG.
func (f *pngFeed) writeFrame(png []byte) error {
	if f.frames == 0 {
		// The first part has no preceding CRLF.
		f.bw.WriteString(f.delim[2:])
	}
	fmt.Fprintf(f.bw, "Content-Type: image/png\r\nContent-Length: %d\r\n\r\n", len(png))
	f.bw.Write(png)
	f.bw.WriteString(f.delim)
	if err := f.bw.Flush(); err != nil {
		return err
	}
	f.frames++
	return nil
}
