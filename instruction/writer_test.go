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

package instruction_test

import (
	"bytes"
	"testing"

	"github.com/nabbar/guacd/instruction"
)

func TestWriter_WriteInstruction(t *testing.T) {
	var buf bytes.Buffer
	w := instruction.NewWriter(&buf)

	if err := w.WriteInstruction("size", "1024", "768"); err != nil {
		t.Fatalf("WriteInstruction: %v", err)
	}

	want := "4.size,4.1024,3.768;"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriter_RoundTripsThroughParser(t *testing.T) {
	var buf bytes.Buffer
	w := instruction.NewWriter(&buf)

	if err := w.WriteInstruction("blob", "3", "YWJj"); err != nil {
		t.Fatalf("WriteInstruction: %v", err)
	}

	p := instruction.NewParser()
	p.Append(buf.Bytes())
	if !p.Done() || p.Err() != nil {
		t.Fatalf("round-trip decode failed: %v", p.Err())
	}
	if p.Opcode() != "blob" {
		t.Fatalf("opcode = %q", p.Opcode())
	}
}

func TestWriter_EncodesUTF8ElementsByCodepoint(t *testing.T) {
	var buf bytes.Buffer
	w := instruction.NewWriter(&buf)

	if err := w.WriteInstruction("name", "a犬b"); err != nil {
		t.Fatalf("WriteInstruction: %v", err)
	}
	want := "4.name,3.a犬b;"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
