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

package instruction

import (
	"fmt"
	"strconv"
)

// state is the parser's current position in the element state machine
// described by the wire grammar: a code-point count, then its bytes, then
// a terminator, repeated until ';' closes the instruction.
type state int

const (
	stateLength state = iota
	stateContent
	stateTerminator
	stateComplete
	stateError
)

// Parser is an incremental, allocation-light decoder for one Guacamole
// instruction. Feed it arbitrary byte slices with Append; it reports how
// many bytes it consumed, so a caller driving it off a raw socket read
// never has to know where an instruction boundary falls inside a buffer.
//
// A Parser decodes exactly one instruction per life cycle: once Append
// returns with State() == Complete (or Error), call Opcode/Args to collect
// the result, then Reset before feeding it more data.
type Parser struct {
	st state

	lenBuf []byte
	elem   int // declared code-point count of the current element
	cpLeft int // code points still to be consumed for the current element
	residue int // bytes still owed to complete the current multi-byte code point

	cur []byte

	haveOpcode bool
	opcode     string
	args       []string

	err error
}

// NewParser returns a Parser ready to decode the first element of a new
// instruction.
func NewParser() *Parser {
	return &Parser{}
}

// Reset clears all decoded state so the Parser can decode another
// instruction. It does not touch any buffered-but-unconsumed bytes — those
// live in the caller, not the Parser.
func (p *Parser) Reset() {
	p.st = stateLength
	p.lenBuf = p.lenBuf[:0]
	p.elem = 0
	p.cpLeft = 0
	p.residue = 0
	p.cur = p.cur[:0]
	p.haveOpcode = false
	p.opcode = ""
	p.args = nil
	p.err = nil
}

// State reports the parser's current position: Length/Content/Terminator
// while mid-instruction, Complete once an instruction has been fully
// decoded, or Error if the byte stream violated the grammar.
func (p *Parser) State() string {
	switch p.st {
	case stateLength:
		return "LENGTH"
	case stateContent:
		return "CONTENT"
	case stateTerminator:
		return "TERMINATOR"
	case stateComplete:
		return "COMPLETE"
	default:
		return "ERROR"
	}
}

// Done reports whether the parser has reached a terminal state (Complete
// or Error) and must be drained (Opcode/Args or Err) and Reset before
// accepting more bytes.
func (p *Parser) Done() bool {
	return p.st == stateComplete || p.st == stateError
}

// Err returns the decode failure, if the parser reached the Error state.
func (p *Parser) Err() error {
	return p.err
}

// Opcode returns the decoded opcode. Valid only once Done() reports true
// and Err() is nil.
func (p *Parser) Opcode() string {
	return p.opcode
}

// Args returns the decoded argument list, in wire order. Valid only once
// Done() reports true and Err() is nil.
func (p *Parser) Args() []string {
	return p.args
}

// Append feeds data into the parser and returns how many leading bytes of
// data were consumed. It stops consuming as soon as the parser reaches a
// terminal state, so trailing bytes belonging to the next instruction are
// left for the caller to resubmit after Reset.
func (p *Parser) Append(data []byte) (consumed int) {
	i := 0
	for i < len(data) {
		if p.Done() {
			return i
		}
		b := data[i]
		switch p.st {
		case stateLength:
			if b >= '0' && b <= '9' {
				p.lenBuf = append(p.lenBuf, b)
				i++
				continue
			}
			if b == '.' {
				n, err := strconv.Atoi(string(p.lenBuf))
				if err != nil || n < 0 {
					p.fail(fmt.Errorf("instruction: invalid element length %q", p.lenBuf))
					return i + 1
				}
				p.lenBuf = p.lenBuf[:0]
				p.elem = n
				p.cpLeft = n
				p.residue = 0
				p.cur = p.cur[:0]
				if n == 0 {
					p.st = stateTerminator
				} else {
					p.st = stateContent
				}
				i++
				continue
			}
			p.fail(fmt.Errorf("instruction: unexpected byte %q in length prefix", b))
			return i + 1

		case stateContent:
			if p.residue == 0 {
				size := CharSize(b)
				p.residue = size - 1
				p.cpLeft--
			} else {
				p.residue--
			}
			p.cur = append(p.cur, b)
			i++
			if p.residue == 0 && p.cpLeft == 0 {
				p.st = stateTerminator
			}
			continue

		case stateTerminator:
			switch b {
			case ',':
				p.commit()
				p.st = stateLength
				i++
				continue
			case ';':
				p.commit()
				p.st = stateComplete
				i++
				return i
			default:
				p.fail(fmt.Errorf("instruction: expected ',' or ';', got %q", b))
				return i + 1
			}
		}
	}
	return i
}

// commit finalizes the currently buffered element as either the opcode
// (the first element of the instruction) or the next argument.
func (p *Parser) commit() {
	s := string(p.cur)
	if !p.haveOpcode {
		p.opcode = s
		p.haveOpcode = true
	} else {
		p.args = append(p.args, s)
	}
	p.cur = p.cur[:0]
}

func (p *Parser) fail(err error) {
	p.st = stateError
	p.err = err
}
