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

package ioengine

import (
	"strconv"

	"github.com/nabbar/guacd/client"
	"github.com/nabbar/guacd/instruction"
	"github.com/nabbar/guacd/plugin"
	"github.com/nabbar/guacd/render"
	"github.com/nabbar/guacd/status"
)

// HandshakeTimeout bounds how long the handshake's instruction exchange
// may take before the connection is abandoned as unresponsive.
const HandshakeTimeout = USecTimeout

// framedError marks a handshake failure that has already put an
// `error,<msg>,<status>` plus `disconnect` frame on the wire, so the
// caller driving Handshake knows not to send a second one.
type framedError struct{ err error }

func (f *framedError) Error() string { return f.err.Error() }
func (f *framedError) Unwrap() error { return f.err }

// ClientInfo carries the capability-advertisement instructions a client
// sends during the handshake, ahead of the positional connect argv.
type ClientInfo struct {
	Width, Height, DPI int
	AudioMimetypes     []string
	VideoMimetypes     []string
	ImageMimetypes     []string
}

// Handshake runs the protocol-select / capability / connect exchange
// described by the listener's handshake sequence, returning a fully
// initialized Client on success.
//
// On an unknown protocol or a plugin init failure, Handshake itself
// writes the `error,<msg>,<status>;` and `disconnect;` instructions to w
// before returning; the returned error satisfies errors.As(*framedError)
// so a caller driving Handshake knows the frame is already sent.
func Handshake(r *instruction.Reader, w *instruction.Writer, registry *plugin.Registry, minFloor int) (*client.Client, error) {
	sel, err := r.ReadInstruction(HandshakeTimeout)
	if err != nil {
		return nil, err
	}
	if sel.Opcode != "select" || len(sel.Args) < 1 {
		return nil, status.New(status.Protocol, "expected select instruction, got %q", sel.Opcode)
	}

	p, err := registry.Open(sel.Args[0])
	if err != nil {
		_ = w.WriteInstruction("error", "Protocol not supported.", strconv.Itoa(int(status.NotFound.Uint16())))
		_ = w.WriteInstruction("disconnect")
		return nil, &framedError{err}
	}

	if err := w.WriteInstruction("args", p.Schema...); err != nil {
		return nil, status.Wrap(status.IO, err)
	}

	info, err := readClientInfo(r)
	if err != nil {
		return nil, err
	}

	conn, err := r.ReadInstruction(HandshakeTimeout)
	if err != nil {
		return nil, err
	}
	if conn.Opcode != "connect" {
		return nil, status.New(status.Protocol, "expected connect instruction, got %q", conn.Opcode)
	}

	c := client.New(sel.Args[0], minFloor)
	c.Render = render.NewSocket(w)

	if err := registry.InitClient(p, c, conn.Args); err != nil {
		_ = w.WriteInstruction("error", err.Error(), strconv.Itoa(int(status.BadArgument.Uint16())))
		_ = w.WriteInstruction("disconnect")
		return nil, &framedError{status.Wrap(status.BadArgument, err)}
	}

	_ = info // capability info is plugin-specific; core only parses it

	return c, nil
}

func readClientInfo(r *instruction.Reader) (ClientInfo, error) {
	var info ClientInfo

	sizeInst, err := r.ReadInstruction(HandshakeTimeout)
	if err != nil {
		return info, err
	}
	if sizeInst.Opcode != "size" || len(sizeInst.Args) < 2 {
		return info, status.New(status.Protocol, "expected size instruction, got %q", sizeInst.Opcode)
	}
	info.Width, _ = strconv.Atoi(sizeInst.Args[0])
	info.Height, _ = strconv.Atoi(sizeInst.Args[1])
	if len(sizeInst.Args) >= 3 {
		info.DPI, _ = strconv.Atoi(sizeInst.Args[2])
	}

	for {
		inst, err := r.ReadInstruction(HandshakeTimeout)
		if err != nil {
			return info, err
		}
		switch inst.Opcode {
		case "audio":
			info.AudioMimetypes = inst.Args
		case "video":
			info.VideoMimetypes = inst.Args
		case "image":
			info.ImageMimetypes = inst.Args
		default:
			return info, backUpOneInstruction(inst)
		}
		if inst.Opcode == "image" {
			return info, nil
		}
	}
}

// backUpOneInstruction exists because the core's Reader has no facility
// to push an instruction back onto the stream; the handshake's capability
// block is terminated by "image" per the wire contract, so in practice
// this path only triggers on a misbehaving client and is surfaced as a
// protocol error rather than silently resyncing.
func backUpOneInstruction(inst instruction.Instruction) error {
	return status.New(status.Protocol, "unexpected instruction %q during handshake capability exchange", inst.Opcode)
}
