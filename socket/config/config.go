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

// Package config holds the listener's bind configuration: network,
// address, optional TLS, and the idle-connection timeout, validated
// before a server is constructed from it.
package config

import (
	"errors"

	"github.com/nabbar/guacd/duration"
	"github.com/nabbar/guacd/network"
)

// ErrInvalidNetwork is returned by Validate when Network is not a
// supported protocol.
var ErrInvalidNetwork = errors.New("socket/config: invalid network protocol")

// ErrMissingAddress is returned by Validate when Address is empty.
var ErrMissingAddress = errors.New("socket/config: missing bind address")

// ErrInvalidTLSConfig is returned by Validate when TLS is enabled but
// incompletely configured.
var ErrInvalidTLSConfig = errors.New("socket/config: invalid TLS config")

// TLS configures optional transport encryption for the listener.
type TLS struct {
	Enable   bool
	CertFile string
	KeyFile  string
}

func (t TLS) validate() error {
	if !t.Enable {
		return nil
	}
	if t.CertFile == "" || t.KeyFile == "" {
		return ErrInvalidTLSConfig
	}
	return nil
}

// Server is the bind configuration for a listener.
type Server struct {
	Network network.Protocol
	Address string

	TLS TLS

	// ConIdleTimeout, if non-zero, closes a connection that has exchanged
	// no instruction for this long.
	ConIdleTimeout duration.Duration

	// Backlog is the listen(2) backlog size. Zero selects a small default
	// suitable for an interactive-session daemon, not a high-churn server.
	Backlog int
}

// DefaultBacklog is used when Backlog is zero.
const DefaultBacklog = 5

// Validate reports whether the configuration is usable to construct a
// listener.
func (c Server) Validate() error {
	if c.Network != network.TCP && c.Network != network.TCP4 && c.Network != network.TCP6 {
		return ErrInvalidNetwork
	}
	if c.Address == "" {
		return ErrMissingAddress
	}
	return c.TLS.validate()
}

// BacklogOrDefault returns Backlog, or DefaultBacklog if it is zero.
func (c Server) BacklogOrDefault() int {
	if c.Backlog <= 0 {
		return DefaultBacklog
	}
	return c.Backlog
}
