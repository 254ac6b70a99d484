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

// Package instruction implements the Guacamole wire format: a
// length-prefixed, UTF-8, text-framed instruction stream.
//
// Every instruction is an opcode followed by zero or more argument strings.
// On the wire each string is prefixed by its code-point count (not its byte
// count), a dot, the raw UTF-8 bytes, then a ',' if more elements follow or
// a ';' if it was the last one:
//
//	<codepoints>.<bytes>,<codepoints>.<bytes>;
package instruction

// Instruction is a single parsed or to-be-encoded Guacamole protocol unit:
// an opcode and its arguments.
type Instruction struct {
	Opcode string
	Args   []string
}

// New builds an Instruction from an opcode and its arguments.
func New(opcode string, args ...string) Instruction {
	return Instruction{Opcode: opcode, Args: args}
}

// Elements returns the opcode followed by the arguments as a single slice,
// in wire order. This is the order encode walks when framing each element.
func (i Instruction) Elements() []string {
	out := make([]string, 0, len(i.Args)+1)
	out = append(out, i.Opcode)
	out = append(out, i.Args...)
	return out
}
