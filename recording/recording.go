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

// Package recording implements session capture: a recording is an
// ordinary file the render socket tees every outbound instruction into
// alongside the live connection, so a failed disk write never breaks a
// session. The file write happens synchronously inside the session's own
// write, so a slow disk does slow the session down.
package recording

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"golang.org/x/sys/unix"
)

// MaxSuffix bounds how many numeric suffixes Create will try before
// giving up on finding an unused filename.
const MaxSuffix = 255

// ErrExhausted is returned when every name from base to base.255 is
// already taken.
var ErrExhausted = errors.New("recording: no unused filename found")

// pathLocks serializes Create calls targeting the same directory within
// this process; the OS advisory lock below guards against other
// processes racing the same path.
var pathLocks sync.Map // map[string]*sync.Mutex

func lockFor(dir string) *sync.Mutex {
	v, _ := pathLocks.LoadOrStore(dir, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Recording is an open, exclusively locked recording file.
type Recording struct {
	File     *os.File
	FullPath string
}

// Create opens a new recording file named name under dir, creating dir
// first if requested. If name is already taken it retries name.1,
// name.2, ... up to name.255 before giving up with ErrExhausted.
//
// The returned file is locked for exclusive write access via an OS
// advisory lock, in addition to the in-process mutex serializing
// concurrent Create calls against the same directory, so two daemon
// instances sharing a recording directory never interleave writes into
// the same file.
func Create(dir, name string, createPath bool) (*Recording, error) {
	mu := lockFor(dir)
	mu.Lock()
	defer mu.Unlock()

	if createPath {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, err
		}
	}

	base := filepath.Join(dir, name)

	f, path, err := createExclusive(base)
	if err != nil {
		return nil, err
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Recording{File: f, FullPath: path}, nil
}

func createExclusive(base string) (*os.File, string, error) {
	f, err := os.OpenFile(base, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err == nil {
		return f, base, nil
	}
	if !os.IsExist(err) {
		return nil, "", err
	}

	for i := 1; i <= MaxSuffix; i++ {
		candidate := base + "." + strconv.Itoa(i)
		f, err := os.OpenFile(candidate, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			return f, candidate, nil
		}
		if !os.IsExist(err) {
			return nil, "", err
		}
	}

	return nil, "", ErrExhausted
}

// Close releases the advisory lock and closes the underlying file.
func (r *Recording) Close() error {
	_ = unix.Flock(int(r.File.Fd()), unix.LOCK_UN)
	return r.File.Close()
}
