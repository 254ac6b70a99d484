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

// Package noop is a reference protocol plugin: it accepts any argv,
// installs handlers that do nothing but acknowledge the call, and is
// used by the I/O engine's own tests as a stand-in for a real RDP/VNC/SSH
// module.
package noop

import (
	"github.com/nabbar/guacd/client"
	"github.com/nabbar/guacd/plugin"
)

// Schema is the (empty) argument schema: noop accepts a connection with
// no protocol-specific arguments.
var Schema []string

// New returns the noop plugin.Plugin, ready to register.
func New() plugin.Plugin {
	return plugin.Plugin{
		Name:   "noop",
		Schema: Schema,
		Init:   Init,
	}
}

// Init wires handlers that accept every event without side effects.
func Init(c any, argv []string) error {
	cl, ok := c.(*client.Client)
	if !ok {
		return nil
	}
	cl.Handlers = client.Handlers{
		HandleMessages: func(*client.Client) error { return nil },
		KeyHandler:     func(*client.Client, int, bool) error { return nil },
		MouseHandler:   func(*client.Client, int, int, int) error { return nil },
		SizeHandler:    func(*client.Client, int, int) error { return nil },
		ClipboardHandler: func(*client.Client, []byte, string) error {
			return nil
		},
		FreeHandler: func(*client.Client) error { return nil },
	}
	return nil
}
