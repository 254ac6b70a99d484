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

package instruction_test

import (
	"testing"
	"unicode/utf8"

	"github.com/nabbar/guacd/instruction"
)

func TestCharSize_LeadByteTable(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := instruction.CharSize(byte(b))
		var want int
		switch {
		case b&0x80 == 0x00:
			want = 1
		case b&0xE0 == 0xC0:
			want = 2
		case b&0xF0 == 0xE0:
			want = 3
		case b&0xF8 == 0xF0:
			want = 4
		case b&0xFC == 0xF8:
			want = 5
		case b&0xFE == 0xFC:
			want = 6
		default:
			want = 1
		}
		if got != want {
			t.Fatalf("CharSize(0x%02x) = %d, want %d", b, got, want)
		}
	}
}

func TestCountCodePoints_MatchesStdlib(t *testing.T) {
	samples := []string{
		"",
		"hello",
		"a犬b",
		"日本語のテスト",
		"emoji: 😀😀",
	}
	for _, s := range samples {
		got := instruction.CountCodePoints(s)
		want := utf8.RuneCountInString(s)
		if got != want {
			t.Fatalf("CountCodePoints(%q) = %d, want %d", s, got, want)
		}
	}
}
