/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package render implements the typed rendering socket: a sink
// offering one send method per wire opcode, layered over an image cache
// that turns a repeated bitmap into a cheap copy-from-buffer instruction
// instead of a full retransmission.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/nabbar/guacd/instruction"
	"github.com/nabbar/guacd/status"
)

// Socket is the high-level sender handed to a plugin's output hook. It
// owns the image cache used by SendImage. Each send writes its
// instruction straight through to the wrapped writer; short writes are
// not coalesced (the buf field is unused).
type Socket struct {
	mu  sync.Mutex
	w   *instruction.Writer
	buf bytes.Buffer

	cache *ImageCache

	errored bool
}

// NewSocket wraps w (typically an instruction.Writer over a net.Conn, a
// Nested socket, or a Tee) as a typed rendering socket.
func NewSocket(w *instruction.Writer) *Socket {
	return &Socket{w: w, cache: NewImageCache()}
}

func (s *Socket) send(opcode string, args ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errored {
		return status.New(status.IO, "rendering socket: write after error")
	}
	if err := s.w.WriteInstruction(opcode, args...); err != nil {
		s.errored = true
		return status.Wrap(status.IO, err)
	}
	return nil
}

// Errored reports whether a prior write has failed; the owning client
// transitions to STOPPING once this is true.
func (s *Socket) Errored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errored
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }

// SendSync emits the liveness heartbeat carrying the given monotonic
// millisecond timestamp.
func (s *Socket) SendSync(timestampMs int64) error {
	return s.send("sync", fmt.Sprintf("%d", timestampMs))
}

// SendSize announces a layer's dimensions.
func (s *Socket) SendSize(layer, width, height int) error {
	return s.send("size", itoa(layer), itoa(width), itoa(height))
}

// SendCopy instructs the client to copy a rectangle from one buffer/layer
// to another, the cheap path taken on an image-cache hit.
func (s *Socket) SendCopy(srcLayer, srcX, srcY, w, h, dstLayer, dstX, dstY int) error {
	return s.send("copy",
		itoa(srcLayer), itoa(srcX), itoa(srcY), itoa(w), itoa(h),
		itoa(dstLayer), itoa(dstX), itoa(dstY))
}

// SendRect draws a filled rectangle (used for solid-color fills without
// an image payload).
func (s *Socket) SendRect(layer, x, y, w, h int) error {
	return s.send("rect", itoa(layer), itoa(x), itoa(y), itoa(w), itoa(h))
}

// SendCursor sets the hotspot of the client-rendered cursor layer.
func (s *Socket) SendCursor(x, y, layer, srcX, srcY, w, h int) error {
	return s.send("cursor", itoa(x), itoa(y), itoa(layer), itoa(srcX), itoa(srcY), itoa(w), itoa(h))
}

// SendDisconnect tells the client the session is ending.
func (s *Socket) SendDisconnect() error {
	return s.send("disconnect")
}

// SendError reports a failure status to the client before disconnecting.
func (s *Socket) SendError(message string, kind status.Kind) error {
	return s.send("error", message, fmt.Sprintf("%d", kind.Uint16()))
}

// SendClipboard opens stream as a clipboard data stream of the given
// mimetype. The caller follows up with SendBlob and finally SendEnd.
func (s *Socket) SendClipboard(stream int, mimetype string) error {
	return s.send("clipboard", itoa(stream), mimetype)
}

// SendBlob writes one chunk of an open stream's data, base64-encoded per
// the wire contract for binary payloads.
func (s *Socket) SendBlob(stream int, data []byte) error {
	return s.send("blob", itoa(stream), base64.StdEncoding.EncodeToString(data))
}

// SendEnd closes a stream previously opened by SendClipboard.
func (s *Socket) SendEnd(stream int) error {
	return s.send("end", itoa(stream))
}
