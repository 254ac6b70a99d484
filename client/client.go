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

// Package client implements the per-session state every protocol plugin
// is handed at handshake time: identifier pools for layers, buffers, and
// streams, the pluggable handler table the I/O engine dispatches into,
// the RUNNING/STOPPING lifecycle flag, and the rendering socket plugins
// draw through.
package client

import (
	"time"

	atmlib "github.com/nabbar/guacd/atomic"
	"github.com/nabbar/guacd/idpool"
	"github.com/nabbar/guacd/render"
)

// State is the client's lifecycle flag. It only ever moves forward, from
// Running to Stopping, and never back.
type State int32

const (
	Running State = iota
	Stopping
)

// Handlers holds the function slots a plugin's Init populates. Every
// handler returns a non-nil error to request the connection be torn
// down; a nil handler for an opcode the input task sees is silently
// ignored for forward compatibility.
type Handlers struct {
	HandleMessages   func(c *Client) error
	KeyHandler       func(c *Client, keysym int, pressed bool) error
	MouseHandler     func(c *Client, x, y, mask int) error
	SizeHandler      func(c *Client, width, height int) error
	ClipboardHandler func(c *Client, data []byte, mimetype string) error
	JoinHandler      func(c *Client, userID string) error
	LeaveHandler     func(c *Client, userID string) error
	FreeHandler      func(c *Client) error
}

// Client is the per-connection object threaded through the I/O engine
// and the protocol plugin. It is created after a successful handshake
// and destroyed once both I/O tasks have observed Stopping and
// Handlers.FreeHandler has run.
type Client struct {
	ID string

	Layers  *idpool.Pool
	Buffers *idpool.Pool
	Streams *idpool.Pool

	Render *render.Socket

	Handlers Handlers

	// Data is the plugin-private state slot; the plugin owns its type,
	// the client never inspects it. A plugin must not store a pointer
	// back to its Client here — ownership is one-directional.
	Data any

	state               atmlib.Value[State]
	lastSentTimestamp   atmlib.Value[int64]
	lastReceivedTs      atmlib.Value[int64]
}

// New returns a Client ready for a plugin's Init, with fresh ID pools.
// minFloor is the reuse-floor each pool uses (see idpool.Pool).
func New(id string, minFloor int) *Client {
	c := &Client{
		ID:      id,
		Layers:  idpool.New(minFloor),
		Buffers: idpool.New(minFloor),
		Streams: idpool.New(minFloor),
	}
	c.state.Store(Running)
	now := nowMillis()
	c.lastSentTimestamp.Store(now)
	c.lastReceivedTs.Store(now)
	return c
}

// State returns the client's current lifecycle state.
func (c *Client) State() State {
	return c.state.Load()
}

// Stop sets the lifecycle flag to Stopping. It is idempotent and safe to
// call from either I/O task, or from a handler itself.
func (c *Client) Stop() {
	c.state.Store(Stopping)
}

// LastSentTimestamp and LastReceivedTimestamp are monotonic milliseconds
// used by the output task's SYNC_THRESHOLD backpressure check.
func (c *Client) LastSentTimestamp() int64     { return c.lastSentTimestamp.Load() }
func (c *Client) SetLastSentTimestamp(ms int64) { c.lastSentTimestamp.Store(ms) }

func (c *Client) LastReceivedTimestamp() int64      { return c.lastReceivedTs.Load() }
func (c *Client) SetLastReceivedTimestamp(ms int64) { c.lastReceivedTs.Store(ms) }

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
