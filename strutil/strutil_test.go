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

package strutil

import "testing"

func TestTruncate_ShorterThanLimitUnchanged(t *testing.T) {
	if got := Truncate("hi", 10); got != "hi" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
}

func TestTruncate_CutsOnRuneBoundary(t *testing.T) {
	s := "héllo" // 'é' is a 2-byte UTF-8 rune
	got := Truncate(s, 2)

	if len(got) > 2 {
		t.Fatalf("expected at most 2 bytes, got %d (%q)", len(got), got)
	}
	for i := 0; i < len(got); {
		r := got[i]
		if r&0xC0 == 0x80 {
			t.Fatalf("truncated string starts mid-rune: %q", got)
		}
		i++
	}
}

func TestJoin_BoundsTotalLength(t *testing.T) {
	got := Join([]string{"aaaa", "bbbb", "cccc"}, ",", 6)
	if len(got) > 6 {
		t.Fatalf("expected at most 6 bytes, got %d (%q)", len(got), got)
	}
}

func TestJoin_EmptyElementsReturnsEmpty(t *testing.T) {
	if got := Join(nil, ",", 10); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
