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

// Package network names the transport protocols the listener can bind,
// trimmed to the handful the daemon actually exposes: a plain TCP socket
// (the Guacamole wire protocol has no UDP or Unix-domain framing defined
// upstream of this core).
package network

// Protocol identifies a transport the listener binds to.
type Protocol uint8

const (
	Empty Protocol = iota
	TCP
	TCP4
	TCP6
)

var names = map[Protocol]string{
	TCP:  "tcp",
	TCP4: "tcp4",
	TCP6: "tcp6",
}

// String returns the net.Dial/net.Listen network name for the protocol,
// or the empty string if p is not one of the defined constants.
func (p Protocol) String() string {
	return names[p]
}

// Int returns the protocol's ordinal value, or 0 (Empty) if out of range.
func (p Protocol) Int() int {
	if int(p) < 0 || int(p) > int(TCP6) {
		return 0
	}
	return int(p)
}
