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

// Package plugin provides the protocol-module contract the daemon loads
// at handshake time: a registry keyed by protocol name, an argument
// schema per plugin, and an init function that wires a client's handler
// table for that protocol.
package plugin

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Open for an unregistered protocol name.
var ErrNotFound = errors.New("plugin: protocol not registered")

// ErrAlreadyRegistered is returned by Register when name is already bound.
var ErrAlreadyRegistered = errors.New("plugin: protocol already registered")

// InitFunc populates client-owned state for one connection given the
// positional argument values supplied by the client's `connect`
// instruction, in the order of the plugin's Schema. Returning a non-nil
// error aborts the handshake: the caller sends an `error,<msg>,<status>`
// instruction and disconnects.
type InitFunc func(client any, argv []string) error

// Plugin is one registered protocol module.
type Plugin struct {
	// Name is the protocol identifier as sent in the client's
	// `select,<protocol>` instruction.
	Name string
	// Schema is the ordered list of argument names; its length and order
	// define how `connect` argv values are positionally interpreted.
	Schema []string
	// Init wires the client's handlers for this protocol.
	Init InitFunc
}

// Registry is a protocol-name-keyed set of plugins. It owns no
// per-connection state: Open just looks up a handle, Close is a no-op
// placeholder for callers that want symmetry with a real dynamic loader.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register adds p under p.Name.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plugins[p.Name]; ok {
		return ErrAlreadyRegistered
	}
	r.plugins[p.Name] = p
	return nil
}

// Open returns the plugin registered under protocol, or ErrNotFound.
func (r *Registry) Open(protocol string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[protocol]
	if !ok {
		return Plugin{}, ErrNotFound
	}
	return p, nil
}

// Close releases any resources held for p. The in-process registry holds
// none; Close exists so callers driving the handshake don't special-case
// an in-process loader versus a future out-of-process one.
func (r *Registry) Close(p Plugin) error {
	return nil
}

// InitClient runs p's Init against client with the given connect argv.
func (r *Registry) InitClient(p Plugin, client any, argv []string) error {
	return p.Init(client, argv)
}
