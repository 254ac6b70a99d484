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
	"github.com/nabbar/guacd/status"
)

// InputLoop reads instructions from r until the client stops, the read
// times out, or a handler reports a fatal error. It owns no goroutine of
// its own; callers run it in one.
func InputLoop(c *client.Client, r *instruction.Reader, slot *status.Slot) {
	for c.State() == client.Running {
		inst, err := r.ReadInstruction(USecTimeout)
		if err != nil {
			if e, ok := err.(*status.Error); ok {
				slot.Set(e)
			} else {
				slot.Set(status.Wrap(status.IO, err))
			}
			c.Stop()
			return
		}

		if dispatch(c, inst, slot) {
			c.Stop()
			return
		}
	}
}

// dispatch routes one decoded instruction to the client's handler table,
// returning true if the connection should terminate (either because the
// opcode was "disconnect" or because a handler reported failure).
func dispatch(c *client.Client, inst instruction.Instruction, slot *status.Slot) bool {
	switch inst.Opcode {
	case "sync":
		if len(inst.Args) > 0 {
			if ms, err := strconv.ParseInt(inst.Args[0], 10, 64); err == nil {
				c.SetLastReceivedTimestamp(ms)
			}
		}
		return false

	case "mouse":
		if c.Handlers.MouseHandler == nil || len(inst.Args) < 3 {
			return false
		}
		x, _ := strconv.Atoi(inst.Args[0])
		y, _ := strconv.Atoi(inst.Args[1])
		mask, _ := strconv.Atoi(inst.Args[2])
		if err := c.Handlers.MouseHandler(c, x, y, mask); err != nil {
			slot.Set(status.Wrap(status.BadState, err))
			return true
		}
		return false

	case "key":
		if c.Handlers.KeyHandler == nil || len(inst.Args) < 2 {
			return false
		}
		keysym, _ := strconv.Atoi(inst.Args[0])
		pressed := inst.Args[1] == "1"
		if err := c.Handlers.KeyHandler(c, keysym, pressed); err != nil {
			slot.Set(status.Wrap(status.BadState, err))
			return true
		}
		return false

	case "size":
		if c.Handlers.SizeHandler == nil || len(inst.Args) < 2 {
			return false
		}
		w, _ := strconv.Atoi(inst.Args[0])
		h, _ := strconv.Atoi(inst.Args[1])
		if err := c.Handlers.SizeHandler(c, w, h); err != nil {
			slot.Set(status.Wrap(status.BadState, err))
			return true
		}
		return false

	case "clipboard":
		if c.Handlers.ClipboardHandler == nil || len(inst.Args) < 1 {
			return false
		}
		mimetype := ""
		if len(inst.Args) > 1 {
			mimetype = inst.Args[1]
		}
		if err := c.Handlers.ClipboardHandler(c, []byte(inst.Args[0]), mimetype); err != nil {
			slot.Set(status.Wrap(status.BadState, err))
			return true
		}
		return false

	case "disconnect":
		return true

	default:
		// Unknown opcodes are ignored for forward compatibility.
		return false
	}
}
