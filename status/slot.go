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

package status

import "sync"

// Slot is a per-connection, per-task substitute for the process-global
// errno/guac_error convention: each goroutine driving an engine task owns
// one Slot, so a failure recorded by the input task never races with one
// recorded by the output task of the same connection.
type Slot struct {
	mu  sync.Mutex
	err *Error
}

// Set records err as the slot's current failure, replacing any failure
// recorded before it. A nil err clears it.
func (s *Slot) Set(err *Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.err = nil
		return
	}
	s.err = err
}

// Get returns the slot's current failure, or nil if none is recorded.
func (s *Slot) Get() *Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Clear removes any recorded failure.
func (s *Slot) Clear() {
	s.Set(nil)
}

// Kind returns the Kind of the recorded failure, or Success if the slot
// is clear. This is the value placed in the outbound error instruction's
// <status> argument.
func (s *Slot) Kind() Kind {
	if e := s.Get(); e != nil {
		return e.Kind
	}
	return Success
}
