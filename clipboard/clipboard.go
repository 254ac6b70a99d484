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

// Package clipboard buffers the host-side clipboard contents a plugin
// wants to broadcast to a session, splitting it into wire-sized blobs
// when the time comes to send it.
package clipboard

import (
	"sync"

	"github.com/nabbar/guacd/render"
)

// BlockSize is the maximum number of bytes sent in a single blob
// instruction when broadcasting clipboard contents.
const BlockSize = 4096

// Clipboard holds the most recently received clipboard contents along
// with the mimetype they were tagged with, guarded by a lock so a
// concurrent Reset/Append sequence can't interleave with a Send.
type Clipboard struct {
	mu       sync.Mutex
	mimetype string
	data     []byte
	limit    int
}

// New returns an empty Clipboard capped at limit bytes; a limit of zero
// means unbounded.
func New(limit int) *Clipboard {
	return &Clipboard{limit: limit}
}

// Reset clears the buffered contents and records the mimetype of the
// data that will follow via Append.
func (c *Clipboard) Reset(mimetype string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mimetype = mimetype
	c.data = c.data[:0]
}

// Append adds data to the buffered contents, truncating it if doing so
// would exceed the configured limit.
func (c *Clipboard) Append(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.limit > 0 {
		remaining := c.limit - len(c.data)
		if remaining <= 0 {
			return
		}
		if len(data) > remaining {
			data = data[:remaining]
		}
	}
	c.data = append(c.data, data...)
}

// Send broadcasts the current contents down sock as a single clipboard
// stream, split into BlockSize chunks, closing the stream whether or not
// a chunk write fails partway through.
func (c *Clipboard) Send(sock *render.Socket, stream int) error {
	c.mu.Lock()
	mimetype := c.mimetype
	data := append([]byte(nil), c.data...)
	c.mu.Unlock()

	if err := sock.SendClipboard(stream, mimetype); err != nil {
		return err
	}

	for offset := 0; offset < len(data); offset += BlockSize {
		end := offset + BlockSize
		if end > len(data) {
			end = len(data)
		}
		if err := sock.SendBlob(stream, data[offset:end]); err != nil {
			_ = sock.SendEnd(stream)
			return err
		}
	}

	return sock.SendEnd(stream)
}

// Mimetype returns the mimetype tagged by the most recent Reset.
func (c *Clipboard) Mimetype() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mimetype
}

// Len returns the number of bytes currently buffered.
func (c *Clipboard) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}
