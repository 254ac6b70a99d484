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

package render

import (
	"io"
	"sync"

	"github.com/nabbar/guacd/instruction"
)

// maxNestChunk is the largest payload carried by one "nest" instruction;
// kept well under typical TCP segment sizes so a single sub-channel write
// never monopolizes the parent stream.
const maxNestChunk = 8 * 1024

// Nested multiplexes writes onto a parent writer by wrapping every chunk
// as a `nest,<index>,<payload>` instruction, splitting at UTF-8 boundaries
// so a multi-byte code point is never split across two chunks.
type Nested struct {
	mu     sync.Mutex
	parent *instruction.Writer
	index  int
}

// NewNested returns a sink multiplexed onto parent under index.
func NewNested(parent *instruction.Writer, index int) *Nested {
	return &Nested{parent: parent, index: index}
}

// Write implements io.Writer, splitting p into UTF-8-safe chunks of at
// most maxNestChunk bytes and forwarding each as a nest instruction.
func (n *Nested) Write(p []byte) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	total := 0
	for len(p) > 0 {
		chunk := chunkUTF8Safe(p, maxNestChunk)
		if err := n.parent.WriteInstruction("nest", itoa(n.index), string(chunk)); err != nil {
			return total, err
		}
		total += len(chunk)
		p = p[len(chunk):]
	}
	return total, nil
}

// chunkUTF8Safe returns a prefix of p of at most max bytes, trimmed back
// so it never ends mid-codepoint.
func chunkUTF8Safe(p []byte, max int) []byte {
	if len(p) <= max {
		return p
	}
	end := max
	for end > 0 && isUTF8Continuation(p[end]) {
		end--
	}
	if end == 0 {
		return p[:max]
	}
	return p[:end]
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

var _ io.Writer = (*Nested)(nil)
