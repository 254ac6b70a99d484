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

package imaging_test

import (
	"testing"

	"github.com/nabbar/guacd/imaging"
)

// TestHash24Identity checks the literal property from the hashing
// pipeline's contract: the hash of a 1x1 surface whose pixel equals v
// equals v, for every 24-bit value.
func TestHash24Identity(t *testing.T) {
	samples := []uint32{0x000000, 0x000001, 0xABCDEF, 0xFFFFFF, 0x123456, 0x7F7F7F}
	for _, v := range samples {
		got := imaging.Hash24([]uint32{v})
		if got != v {
			t.Fatalf("Hash24([%#x]) = %#x, want %#x", v, got, v)
		}
	}
}

func TestHash24DifferentPixelsDifferentHashes(t *testing.T) {
	a := imaging.Hash24([]uint32{0x11223344, 0x55667788})
	b := imaging.Hash24([]uint32{0x11223344, 0x55667789})
	if a == b {
		t.Fatalf("expected different hashes for differing surfaces, got %#x for both", a)
	}
}

func TestHash24Deterministic(t *testing.T) {
	px := []uint32{0x01020304, 0x05060708, 0x090A0B0C}
	a := imaging.Hash24(px)
	b := imaging.Hash24(px)
	if a != b {
		t.Fatalf("Hash24 not deterministic: %#x != %#x", a, b)
	}
}

func TestCompareSurface(t *testing.T) {
	a := []uint32{1, 2, 3}
	b := []uint32{1, 2, 3}
	c := []uint32{1, 2, 4}
	if !imaging.CompareSurface(a, b) {
		t.Fatalf("identical surfaces should compare equal")
	}
	if imaging.CompareSurface(a, c) {
		t.Fatalf("differing surfaces should not compare equal")
	}
	if imaging.CompareSurface(a, []uint32{1, 2}) {
		t.Fatalf("differing lengths should not compare equal")
	}
}
