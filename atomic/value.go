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

// Package atomic adapts the generic, type-safe atomic value used across
// the rest of the stack for the handful of fields that need lock-free
// access under concurrent goroutines: a connection's lifecycle flag and
// its last-activity timestamps, both read by one task and written by
// another without a mutex round trip.
package atomic

import "sync/atomic"

// Value is a type-safe wrapper over sync/atomic.Value. The zero value of
// T is always a valid Load result before the first Store.
type Value[T any] struct {
	v atomic.Value
}

// NewValue returns a Value already holding init.
func NewValue[T any](init T) *Value[T] {
	v := &Value[T]{}
	v.Store(init)
	return v
}

// Load returns the currently stored value, or the zero value of T if
// Store has never been called.
func (o *Value[T]) Load() T {
	b, _ := o.v.Load().(box[T])
	return b.v
}

// Store atomically replaces the stored value.
func (o *Value[T]) Store(val T) {
	o.v.Store(box[T]{val})
}

// Swap atomically stores new and returns the previously stored value.
func (o *Value[T]) Swap(new T) (old T) {
	prev := o.v.Swap(box[T]{new})
	b, _ := prev.(box[T])
	return b.v
}

// CompareAndSwap atomically stores new if the current value equals old,
// reporting whether the swap happened.
func (o *Value[T]) CompareAndSwap(old, new T) bool {
	for {
		cur := o.v.Load()
		b, ok := cur.(box[T])
		if !ok {
			var zero T
			b = box[T]{zero}
		}
		if !equal(b.v, old) {
			return false
		}
		if o.v.CompareAndSwap(cur, box[T]{new}) {
			return true
		}
	}
}

// box sidesteps atomic.Value's "inconsistent concrete type" panic when T's
// zero value and stored values are otherwise the same dynamic type — every
// store wraps T in the same box[T] struct so the first Store always wins
// the type race.
type box[T any] struct{ v T }

func equal[T any](a, b T) bool {
	var ai, bi any = a, b
	return ai == bi
}
