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

package status_test

import (
	"errors"
	"testing"

	"github.com/nabbar/guacd/status"
)

func TestError_MessageAndKind(t *testing.T) {
	err := status.New(status.Protocol, "unexpected opcode %q", "frob")
	if err.Kind != status.Protocol {
		t.Fatalf("Kind = %v, want Protocol", err.Kind)
	}
	if err.Error() != `unexpected opcode "frob"` {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestError_WrapPreservesParent(t *testing.T) {
	parent := errors.New("connection reset")
	err := status.Wrap(status.IO, parent)
	if !errors.Is(err, parent) {
		t.Fatalf("errors.Is(err, parent) = false")
	}
	if status.KindOf(err) != status.IO {
		t.Fatalf("KindOf = %v, want IO", status.KindOf(err))
	}
}

func TestError_IsMatchesByKindOnly(t *testing.T) {
	a := status.New(status.BadState, "a")
	b := status.New(status.BadState, "b")
	if !errors.Is(a, b) {
		t.Fatalf("errors.Is should match on Kind regardless of message")
	}
	other := status.New(status.Protocol, "a")
	if errors.Is(a, other) {
		t.Fatalf("errors.Is should not match across differing Kinds")
	}
}

func TestKindOf_UnknownForPlainError(t *testing.T) {
	if got := status.KindOf(errors.New("plain")); got != status.UnknownKind {
		t.Fatalf("KindOf(plain error) = %v, want UnknownKind", got)
	}
}

func TestSlot_SetGetClear(t *testing.T) {
	var s status.Slot
	if s.Kind() != status.Success {
		t.Fatalf("zero-value Slot.Kind() = %v, want Success", s.Kind())
	}
	s.Set(status.New(status.UpstreamTimeout, "no response"))
	if s.Kind() != status.UpstreamTimeout {
		t.Fatalf("Slot.Kind() = %v, want UpstreamTimeout", s.Kind())
	}
	s.Clear()
	if s.Get() != nil {
		t.Fatalf("Slot.Get() after Clear = %v, want nil", s.Get())
	}
}
