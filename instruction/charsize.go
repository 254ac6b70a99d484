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

// CharSize returns the number of bytes a UTF-8 encoded code point occupies,
// given its leading byte. It follows the standard UTF-8 lead-byte
// classification (0xxxxxxx=1, 110xxxxx=2, 1110xxxx=3, 11110xxx=4) and also
// recognises the 5- and 6-byte forms accepted by legacy encoders
// (111110xx=5, 1111110x=6). Continuation bytes (10xxxxxx) and otherwise
// invalid lead bytes return 1, which keeps a streaming decoder's skip logic
// from stalling on malformed input instead of trying to resynchronise.
//
// The encoder side of this package never emits anything but the 1..4 byte
// forms; the 5/6 byte cases exist purely so the decoder does not choke on
// a legacy client that still produces them.
func CharSize(b byte) int {
	switch {
	case b&0x80 == 0x00: // 0xxxxxxx
		return 1
	case b&0xE0 == 0xC0: // 110xxxxx
		return 2
	case b&0xF0 == 0xE0: // 1110xxxx
		return 3
	case b&0xF8 == 0xF0: // 11110xxx
		return 4
	case b&0xFC == 0xF8: // 111110xx (legacy)
		return 5
	case b&0xFE == 0xFC: // 1111110x (legacy)
		return 6
	default: // continuation byte or invalid lead byte
		return 1
	}
}

// CountCodePoints returns the number of UTF-8 code points (not bytes) that
// begin within s. It counts leading bytes only: any byte that is not a
// continuation byte (10xxxxxx) starts a new code point.
func CountCodePoints(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i]&0xC0 != 0x80 {
			n++
		}
	}
	return n
}
