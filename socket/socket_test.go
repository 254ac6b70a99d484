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

package socket_test

import (
	"fmt"
	"testing"

	"github.com/nabbar/guacd/socket"
)

func TestConnState_String(t *testing.T) {
	cases := []struct {
		s    socket.ConnState
		want string
	}{
		{socket.ConnectionDial, "Dial Connection"},
		{socket.ConnectionNew, "New Connection"},
		{socket.ConnectionRead, "Read Incoming Stream"},
		{socket.ConnectionCloseRead, "Close Incoming Stream"},
		{socket.ConnectionHandler, "Run HandlerFunc"},
		{socket.ConnectionWrite, "Write Outgoing Steam"},
		{socket.ConnectionCloseWrite, "Close Outgoing Stream"},
		{socket.ConnectionClose, "Close Connection"},
		{socket.ConnState(255), "unknown connection state"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("%d.String() = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestErrorFilter(t *testing.T) {
	if socket.ErrorFilter(nil) != nil {
		t.Fatalf("ErrorFilter(nil) should be nil")
	}
	closed := fmt.Errorf("read tcp: use of closed network connection")
	if socket.ErrorFilter(closed) != nil {
		t.Fatalf("ErrorFilter should drop closed-connection errors")
	}
	other := fmt.Errorf("connection reset by peer")
	if socket.ErrorFilter(other) == nil {
		t.Fatalf("ErrorFilter should not drop unrelated errors")
	}
}
