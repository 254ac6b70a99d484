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

// Package imaging implements the pixel-pipeline primitives the rendering
// socket's image cache depends on: a 24-bit rolling fingerprint over raw
// pixel data, a byte-wise surface comparator to confirm a fingerprint
// hit before reuse, and a capped palette builder for paletted encodes.
package imaging

// fold32to24 maps a 32-bit pixel onto a 24-bit value, evenly across all
// 32-bit inputs, while leaving every already-24-bit value fixed: the
// upper byte (zero for a 24-bit input) is XORed into the lower three
// bytes instead of discarded.
func fold32to24(v uint32) uint32 {
	upper := v & 0xFF000000
	return (v & 0xFFFFFF) ^ (upper >> 8) ^ (upper >> 16) ^ (upper >> 24)
}

// rotate1 rotates a 32-bit accumulator left by one bit.
func rotate1(h uint32) uint32 {
	return (h << 1) | (h >> 31)
}

// Hash24 computes the 24-bit fingerprint of an RGBA surface given as
// row-major 32-bit pixels. It is the image cache's dedup key: each pixel
// is folded to 24 bits before being XORed into the rotated accumulator,
// and the accumulator is folded to 24 bits once more at the end, which
// is why a one-pixel surface hashes to its own pixel value (see
// TestHash24Identity).
func Hash24(pixels []uint32) uint32 {
	var h uint32
	for _, p := range pixels {
		h = rotate1(h) ^ fold32to24(p)
	}
	return fold32to24(h)
}

// CompareSurface reports whether two equally-shaped pixel buffers are
// byte-identical, used to confirm a Hash24 hit is not a collision before
// the rendering socket reuses a cached buffer layer.
func CompareSurface(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
