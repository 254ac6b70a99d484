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

// Package strutil provides the bounded-length string helpers used
// wherever a field has a fixed wire or buffer budget — a clipboard
// mimetype, a log line, a recording filename — so truncation always
// happens on a UTF-8 boundary instead of splitting a multi-byte rune.
package strutil

// Truncate returns s cut to at most n bytes, never splitting a UTF-8
// rune in the middle. If s already fits, it is returned unchanged.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}

	// Back off from n until we land on a rune boundary; a continuation
	// byte has its top two bits set to 10.
	cut := n
	for cut > 0 && isContinuationByte(s[cut]) {
		cut--
	}
	return s[:cut]
}

func isContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}

// Join concatenates elements with delim between them, truncating the
// result to at most n bytes on a UTF-8 boundary, the way a fixed-size
// log or protocol field must.
func Join(elements []string, delim string, n int) string {
	if len(elements) == 0 {
		return ""
	}

	out := elements[0]
	for _, e := range elements[1:] {
		out += delim + e
	}
	return Truncate(out, n)
}
