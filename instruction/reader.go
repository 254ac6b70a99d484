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

package instruction

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/nabbar/guacd/status"
)

// deadlineReader is satisfied by net.Conn and anything else that supports
// a read deadline; Reader uses it to bound how long it will wait for the
// next instruction without tying itself to net.Conn directly.
type deadlineReader interface {
	io.Reader
	SetReadDeadline(t time.Time) error
}

// Reader pulls whole instructions off a stream, reusing one Parser and
// one scratch buffer across calls so steady-state operation does not
// allocate.
type Reader struct {
	src deadlineReader
	buf []byte
	off int
	n   int
	p   *Parser
}

// NewReader returns a Reader pulling instructions from src.
func NewReader(src deadlineReader) *Reader {
	return &Reader{src: src, buf: make([]byte, DefaultBufferSize), p: NewParser()}
}

// DefaultBufferSize is the scratch-buffer size used to fill Reader's
// internal buffer from the underlying stream.
const DefaultBufferSize = 8192

// ReadInstruction blocks until one full instruction has been decoded,
// timeout elapses, or the stream fails. The timeout is reapplied before
// every underlying read so the deadline bounds inactivity, not the total
// decode time of a large instruction.
func (r *Reader) ReadInstruction(timeout time.Duration) (Instruction, error) {
	r.p.Reset()

	for {
		if r.off < r.n {
			consumed := r.p.Append(r.buf[r.off:r.n])
			r.off += consumed
			if r.p.Done() {
				break
			}
		}

		if err := r.src.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return Instruction{}, classifyReadError(err)
		}

		nr, err := r.src.Read(r.buf)
		if nr > 0 {
			r.off = 0
			r.n = nr
			continue
		}
		if err != nil {
			return Instruction{}, classifyReadError(err)
		}
	}

	if r.p.Err() != nil {
		return Instruction{}, status.Wrap(status.Protocol, r.p.Err())
	}
	return New(r.p.Opcode(), r.p.Args()...), nil
}

func classifyReadError(err error) error {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return status.Wrap(status.InputTimeout, err)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
		return status.New(status.Closed, "connection closed")
	}
	return status.Wrap(status.IO, err)
}
