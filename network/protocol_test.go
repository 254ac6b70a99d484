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

package network_test

import (
	"testing"

	"github.com/nabbar/guacd/network"
)

func TestProtocol_String(t *testing.T) {
	cases := map[network.Protocol]string{
		network.TCP:   "tcp",
		network.TCP4:  "tcp4",
		network.TCP6:  "tcp6",
		network.Empty: "",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("Protocol(%d).String() = %q, want %q", p, got, want)
		}
	}
	if got := network.Protocol(99).String(); got != "" {
		t.Errorf("undefined protocol String() = %q, want empty", got)
	}
}

func TestProtocol_Int(t *testing.T) {
	if network.TCP.Int() != int(network.TCP) {
		t.Fatalf("Int() mismatch for TCP")
	}
	if network.Protocol(255).Int() != 0 {
		t.Fatalf("out-of-range protocol Int() should be 0")
	}
}
