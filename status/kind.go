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

// Package status implements the guacd error taxonomy: a small, fixed set
// of status kinds (similar in spirit to HTTP status codes) that every
// layer of the daemon — the codec, the transport, the handshake, the
// plugin boundary — raises instead of ad-hoc error strings, so the
// outbound `error,<msg>,<status>` instruction always carries a value the
// browser-side client can branch on.
package status

import "strconv"

// Kind is a numeric status code raised by the core. It plays the same
// role as an HTTP status code: a coarse, wire-stable classification that
// a human message supplements but does not replace.
type Kind uint16

// The kinds the core itself raises or surfaces from a plugin. Values are
// stable across releases since they are part of the wire contract with
// the browser-side client.
const (
	Success     Kind = 0x0000
	UnknownKind Kind = 0x0100
	NoMemory    Kind = 0x0206

	IO           Kind = 0x0201
	OutputError  Kind = 0x0202
	NoInput      Kind = 0x0203
	InputTimeout Kind = 0x0204
	Closed       Kind = 0x0205

	// NotFound is raised when the handshake's protocol loader cannot find
	// a plugin for the requested protocol. Its value is part of the wire
	// contract with the browser-side client, which matches upstream
	// guacd's SERVER_ERROR code for this case: 0x0200.
	NotFound Kind = 0x0200

	BadArgument Kind = 0x0300
	Protocol    Kind = 0x0301
	Forbidden   Kind = 0x030A
	BadState    Kind = 0x031D

	UpstreamError       Kind = 0x0500
	UpstreamTimeout     Kind = 0x0504
	UpstreamUnsupported Kind = 0x050A
	UpstreamRefused     Kind = 0x050B
)

var names = map[Kind]string{
	Success:             "Success",
	UnknownKind:         "Unknown",
	NoMemory:            "NoMemory",
	BadArgument:         "BadArgument",
	Protocol:            "Protocol",
	NotFound:            "NotFound",
	Forbidden:           "Forbidden",
	BadState:            "BadState",
	IO:                  "Io",
	OutputError:         "OutputError",
	NoInput:             "NoInput",
	InputTimeout:        "InputTimeout",
	Closed:              "Closed",
	UpstreamError:       "UpstreamError",
	UpstreamTimeout:     "UpstreamTimeout",
	UpstreamUnsupported: "UpstreamUnsupported",
	UpstreamRefused:     "UpstreamRefused",
}

// String returns the kind's symbolic name, or its numeric value formatted
// as hex if it is not one of the predefined kinds.
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "0x" + strconv.FormatUint(uint64(k), 16)
}

// Uint16 returns the wire value sent as the `<status>` argument of an
// `error` instruction.
func (k Kind) Uint16() uint16 {
	return uint16(k)
}
