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

package render_test

import (
	"bytes"
	"testing"

	"github.com/nabbar/guacd/render"
)

func TestTee_DuplicatesWrites(t *testing.T) {
	var a, b bytes.Buffer
	tee := render.NewTee(&a, &b)

	if _, err := tee.Write([]byte("payload")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if a.String() != "payload" || b.String() != "payload" {
		t.Fatalf("a=%q b=%q, want both %q", a.String(), b.String(), "payload")
	}
}

type alwaysFail struct{ calls int }

func (f *alwaysFail) Write(p []byte) (int, error) {
	f.calls++
	return 0, bytes.ErrTooLarge
}

func TestTee_SecondaryFailureDoesNotFailPrimary(t *testing.T) {
	var primary bytes.Buffer
	secondary := &alwaysFail{}
	tee := render.NewTee(&primary, secondary)

	if _, err := tee.Write([]byte("x")); err != nil {
		t.Fatalf("Write should succeed despite secondary failure: %v", err)
	}
	if secondary.calls != 1 {
		t.Fatalf("secondary should have been attempted once")
	}
}
