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

// Package idpool maintains a dynamically allocated and freed pool of
// non-negative integers, reused by the client package to hand out layer,
// stream, and buffer identifiers without ever colliding with one still in
// use by the browser-side client.
package idpool

import "sync"

// Pool hands out non-negative integers, starting from zero and counting
// up, reusing a freed integer only once at least MinFloor fresh integers
// have been issued. That floor keeps a recently-freed identifier out of
// circulation for a little while, giving any in-flight instruction that
// still references it a chance to finish before it is reassigned.
type Pool struct {
	MinFloor int

	mu   sync.Mutex
	next int
	free []int
}

// New returns an empty Pool with the given reuse floor.
func New(minFloor int) *Pool {
	return &Pool{MinFloor: minFloor}
}

// Next returns the next available integer: a freed one if the pool has
// issued at least MinFloor fresh integers already, otherwise a new one.
func (p *Pool) Next() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.next >= p.MinFloor && len(p.free) > 0 {
		v := p.free[0]
		p.free = p.free[1:]
		return v
	}

	v := p.next
	p.next++
	return v
}

// Free returns value to the pool, making it eligible for a future Next
// once the reuse floor has been reached. Freeing a value not obtained
// from this Pool is the caller's mistake: Free does not validate it.
func (p *Pool) Free(value int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, value)
}
