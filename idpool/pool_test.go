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

package idpool_test

import (
	"testing"

	"github.com/nabbar/guacd/idpool"
)

// TestPool_NextFree mirrors the original pool's next_free property test:
// fill the pool to its reuse floor freeing each value immediately, then
// drain it again and confirm only previously seen values come back before
// the pool starts minting fresh ones past the floor.
func TestPool_NextFree(t *testing.T) {
	const size = 128
	p := idpool.New(size)

	seen := make(map[int]int)
	for i := 0; i < size; i++ {
		v := p.Next()
		if v < 0 || v >= size {
			t.Fatalf("value %d out of range [0,%d)", v, size)
		}
		if seen[v] != 0 {
			t.Fatalf("value %d seen twice on first pass", v)
		}
		seen[v]++
		p.Free(v)
	}

	for i := 0; i < size; i++ {
		v := p.Next()
		if v < 0 || v >= size {
			t.Fatalf("value %d out of range [0,%d)", v, size)
		}
		if seen[v] != 1 {
			t.Fatalf("value %d should have been seen exactly once, got %d", v, seen[v])
		}
		seen[v]++
	}

	if v := p.Next(); v != size {
		t.Fatalf("pool exhausted of reuse candidates: Next() = %d, want %d", v, size)
	}
}

func TestPool_NoReuseBeforeFloor(t *testing.T) {
	p := idpool.New(4)
	a := p.Next()
	p.Free(a)

	for i := 0; i < 3; i++ {
		v := p.Next()
		if v == a {
			t.Fatalf("value %d reused before reaching the reuse floor", a)
		}
	}
}

func TestPool_ConcurrentUseNeverDoubleIssues(t *testing.T) {
	p := idpool.New(16)
	const workers = 8
	const perWorker = 200

	results := make(chan int, workers*perWorker)
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			for i := 0; i < perWorker; i++ {
				v := p.Next()
				results <- v
				p.Free(v)
			}
		}()
	}
	go func() {
		for i := 0; i < workers*perWorker; i++ {
			<-results
		}
		close(done)
	}()
	<-done
}
