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

// Package socket provides the transport-layer abstractions the listener
// and the rendering socket build on: a per-connection Context handed to
// a HandlerFunc, a Server lifecycle interface, and the connection-state
// enumeration used to drive info callbacks for logging and metrics.
package socket

import (
	"context"
	"net"
	"strings"
)

// DefaultBufferSize is the scratch-buffer size used by socket readers
// when none is specified by the caller.
const DefaultBufferSize = 32 * 1024

// EOL is the line terminator socket-level line readers split on.
const EOL = byte('\n')

// ConnState identifies a connection's position in its handling life
// cycle, reported to a FuncInfo callback for logging and metrics.
type ConnState uint8

const (
	ConnectionDial ConnState = iota
	ConnectionNew
	ConnectionRead
	ConnectionCloseRead
	ConnectionHandler
	ConnectionWrite
	ConnectionCloseWrite
	ConnectionClose
)

func (c ConnState) String() string {
	switch c {
	case ConnectionDial:
		return "Dial Connection"
	case ConnectionNew:
		return "New Connection"
	case ConnectionRead:
		return "Read Incoming Stream"
	case ConnectionCloseRead:
		return "Close Incoming Stream"
	case ConnectionHandler:
		return "Run HandlerFunc"
	case ConnectionWrite:
		return "Write Outgoing Steam"
	case ConnectionCloseWrite:
		return "Close Outgoing Stream"
	case ConnectionClose:
		return "Close Connection"
	default:
		return "unknown connection state"
	}
}

// Context is the per-connection handle passed to a HandlerFunc. It wraps
// net.Conn with liveness information a handler needs without reaching
// into the server's own bookkeeping.
type Context interface {
	context.Context

	net.Conn

	// IsConnected reports whether the underlying connection is still open.
	IsConnected() bool

	// LocalHost and RemoteHost return the "host:port" form of each end of
	// the connection, convenient for logging.
	LocalHost() string
	RemoteHost() string
}

// UpdateConn is called on a freshly accepted net.Conn before it is wrapped
// in a Context, letting a caller tweak socket options (e.g. TCP keepalive)
// without needing its own accept loop.
type UpdateConn func(conn net.Conn)

// HandlerFunc processes one accepted connection. It returns when the
// connection should be closed; the server closes it regardless of
// whether HandlerFunc already did.
type HandlerFunc func(ctx Context)

// FuncError receives background errors the server cannot return directly
// to a caller (accept-loop failures, per-connection I/O errors).
type FuncError func(errs ...error)

// FuncInfo receives a connection-state transition, with both endpoints'
// addresses, for logging or metrics.
type FuncInfo func(local, remote net.Addr, state ConnState)

// FuncInfoServer receives a free-form informational message about the
// server itself (listening, shutting down), not tied to one connection.
type FuncInfoServer func(msg string)

// Server is implemented by every listener (TCP today; the shape leaves
// room for others without touching call sites).
type Server interface {
	// RegisterFuncError installs the callback used for background errors.
	RegisterFuncError(fct FuncError)
	// RegisterFuncInfo installs the callback used for per-connection state.
	RegisterFuncInfo(fct FuncInfo)
	// RegisterFuncInfoServer installs the callback used for server-level messages.
	RegisterFuncInfoServer(fct FuncInfoServer)

	// IsRunning reports whether Listen has been called and has not returned.
	IsRunning() bool
	// IsGone reports whether the server is not listening: true before
	// Listen has started and again after it has returned.
	IsGone() bool
	// OpenConnections returns the number of connections currently being handled.
	OpenConnections() int64

	// Listen blocks accepting and dispatching connections until ctx is
	// canceled or Shutdown is called.
	Listen(ctx context.Context) error
	// Shutdown stops accepting new connections and waits (bounded by ctx)
	// for in-flight connections to finish.
	Shutdown(ctx context.Context) error
}

// ErrorFilter drops errors that are just the ordinary noise of a
// connection going away during shutdown, so background error callbacks
// aren't spammed by every closed socket.
func ErrorFilter(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "use of closed network connection") {
		return nil
	}
	return err
}
