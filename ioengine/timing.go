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

// Package ioengine drives one connection's two cooperating tasks: the
// input task reads instructions and dispatches them to the client's
// handler table, while the output task periodically pulls a frame from
// the plugin, injects sync heartbeats, and enforces the protocol's only
// backpressure mechanism.
package ioengine

import "time"

// USecTimeout bounds how long the input task waits for the next
// instruction before treating the connection as dead.
const USecTimeout = 15 * time.Second

// SyncFrequency is the interval at which the output task emits a sync
// heartbeat when it has otherwise been idle.
const SyncFrequency = 5000 * time.Millisecond

// SyncThreshold is the maximum allowed gap between the last timestamp the
// server sent and the last one the client acknowledged before the output
// task stops pulling frames from the plugin.
const SyncThreshold = 500 * time.Millisecond

// MessageHandleFrequency is the poll interval the output task sleeps for
// while backpressure (SyncThreshold) is in effect.
const MessageHandleFrequency = 50 * time.Millisecond
