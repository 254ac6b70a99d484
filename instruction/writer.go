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
	"bytes"
	"io"
	"strconv"
	"sync"
)

// Writer serializes instructions onto an underlying sink, one at a time,
// guarding the sink with a mutex so concurrent senders (the output task
// and an out-of-band error path, for instance) never interleave their
// bytes mid-instruction.
type Writer struct {
	mu  sync.Mutex
	dst io.Writer
	buf bytes.Buffer
}

// NewWriter returns a Writer that serializes onto dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst}
}

// WriteInstruction encodes opcode and args as a single instruction and
// writes it to the underlying sink in one Write call.
func (w *Writer) WriteInstruction(opcode string, args ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Reset()
	w.writeElement(opcode)

	for _, a := range args {
		w.buf.WriteByte(',')
		w.writeElement(a)
	}
	w.buf.WriteByte(';')

	_, err := w.dst.Write(w.buf.Bytes())
	return err
}

func (w *Writer) writeElement(s string) {
	w.buf.WriteString(strconv.Itoa(CountCodePoints(s)))
	w.buf.WriteByte('.')
	w.buf.WriteString(s)
}
