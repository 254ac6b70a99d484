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

package recording

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreate_WritesToNamedFile(t *testing.T) {
	dir := t.TempDir()

	rec, err := Create(dir, "session", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer rec.Close()

	if rec.FullPath != filepath.Join(dir, "session") {
		t.Fatalf("unexpected path: %s", rec.FullPath)
	}

	if _, err := rec.File.WriteString("hello"); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestCreate_RetriesWithNumericSuffixOnCollision(t *testing.T) {
	dir := t.TempDir()

	first, err := Create(dir, "session", false)
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	defer first.Close()

	second, err := Create(dir, "session", false)
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}
	defer second.Close()

	if second.FullPath != filepath.Join(dir, "session.1") {
		t.Fatalf("expected .1 suffix, got %s", second.FullPath)
	}
}

func TestCreate_CreatesPathWhenRequested(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "nested", "recordings")

	rec, err := Create(dir, "session", true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer rec.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected dir to be created: %v", err)
	}
}

func TestCreate_ExhaustsSuffixesEventually(t *testing.T) {
	dir := t.TempDir()

	base, err := Create(dir, "s", false)
	if err != nil {
		t.Fatalf("Create base: %v", err)
	}
	base.Close()

	var recs []*Recording
	for i := 0; i < MaxSuffix; i++ {
		r, err := Create(dir, "s", false)
		if err != nil {
			t.Fatalf("Create suffix %d: %v", i, err)
		}
		recs = append(recs, r)
	}
	defer func() {
		for _, r := range recs {
			r.Close()
		}
	}()

	if _, err := Create(dir, "s", false); err != ErrExhausted {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}
