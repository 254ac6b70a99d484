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

package tcp

import (
	"context"
	"net"
	"time"
)

// connContext adapts a net.Conn into a socket.Context, layering a
// cancelable context.Context and, when idle > 0, a read deadline that is
// pushed forward on every successful Read/Write so the connection is
// closed only after a true idle period rather than a fixed session cap.
type connContext struct {
	net.Conn
	ctx    context.Context
	cancel context.CancelFunc
	idle   time.Duration
}

func newContext(parent context.Context, conn net.Conn, idle time.Duration) *connContext {
	ctx, cancel := context.WithCancel(parent)
	c := &connContext{Conn: conn, ctx: ctx, cancel: cancel, idle: idle}
	c.touch()
	return c
}

func (c *connContext) touch() {
	if c.idle > 0 {
		_ = c.Conn.SetDeadline(time.Now().Add(c.idle))
	}
}

func (c *connContext) Read(b []byte) (int, error) {
	n, err := c.Conn.Read(b)
	if err == nil {
		c.touch()
	}
	return n, err
}

func (c *connContext) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	if err == nil {
		c.touch()
	}
	return n, err
}

func (c *connContext) IsConnected() bool {
	return c.ctx.Err() == nil
}

func (c *connContext) LocalHost() string  { return c.Conn.LocalAddr().String() }
func (c *connContext) RemoteHost() string { return c.Conn.RemoteAddr().String() }

func (c *connContext) Deadline() (time.Time, bool) { return c.ctx.Deadline() }
func (c *connContext) Done() <-chan struct{}       { return c.ctx.Done() }
func (c *connContext) Err() error                  { return c.ctx.Err() }
func (c *connContext) Value(key any) any           { return c.ctx.Value(key) }
