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

package client_test

import (
	"testing"

	"github.com/nabbar/guacd/client"
)

func TestClient_StartsRunning(t *testing.T) {
	c := client.New("conn-1", 64)
	if c.State() != client.Running {
		t.Fatalf("new client State() = %v, want Running", c.State())
	}
}

func TestClient_StopIsIdempotent(t *testing.T) {
	c := client.New("conn-1", 64)
	c.Stop()
	c.Stop()
	if c.State() != client.Stopping {
		t.Fatalf("State() = %v, want Stopping", c.State())
	}
}

func TestClient_PoolsAreIndependent(t *testing.T) {
	c := client.New("conn-1", 64)
	l := c.Layers.Next()
	b := c.Buffers.Next()
	if l != 0 || b != 0 {
		t.Fatalf("first id from independent pools should both be 0, got layer=%d buffer=%d", l, b)
	}
}

func TestClient_TimestampsAreMonotonicFields(t *testing.T) {
	c := client.New("conn-1", 64)
	c.SetLastSentTimestamp(1000)
	c.SetLastReceivedTimestamp(900)
	if c.LastSentTimestamp() != 1000 || c.LastReceivedTimestamp() != 900 {
		t.Fatalf("timestamps not stored correctly")
	}
}
