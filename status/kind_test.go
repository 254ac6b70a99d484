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

package status_test

import (
	"testing"

	"github.com/nabbar/guacd/status"
)

func TestKind_StringKnown(t *testing.T) {
	cases := map[status.Kind]string{
		status.Success:     "Success",
		status.Protocol:     "Protocol",
		status.InputTimeout: "InputTimeout",
		status.UpstreamRefused: "UpstreamRefused",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint16(k), got, want)
		}
	}
}

func TestKind_StringUnknownFallsBackToHex(t *testing.T) {
	k := status.Kind(0x09ff)
	if got := k.String(); got != "0x9ff" {
		t.Errorf("String() = %q, want %q", got, "0x9ff")
	}
}

func TestKind_Uint16RoundTrips(t *testing.T) {
	if status.BadState.Uint16() != uint16(status.BadState) {
		t.Errorf("Uint16() did not round-trip")
	}
}
