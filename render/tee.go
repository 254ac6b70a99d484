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

package render

import "io"

// Tee duplicates every write to a secondary sink in addition to the
// primary one, used by the recording writer to capture the exact bytes a
// session sent without altering the client-facing stream.
type Tee struct {
	primary   io.Writer
	secondary io.Writer
}

// NewTee returns a Writer that forwards every Write to primary and then,
// if that write succeeded, to secondary.
func NewTee(primary, secondary io.Writer) *Tee {
	return &Tee{primary: primary, secondary: secondary}
}

// Write writes p to the primary sink; only if that succeeds does it also
// write p to the secondary sink, and a secondary-sink failure does not
// fail the primary write —
// recording is best-effort and must never interrupt a live session.
func (t *Tee) Write(p []byte) (int, error) {
	n, err := t.primary.Write(p)
	if err == nil {
		_, _ = t.secondary.Write(p)
	}
	return n, err
}
