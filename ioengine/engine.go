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

package ioengine

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nabbar/guacd/instruction"
	"github.com/nabbar/guacd/metrics"
	"github.com/nabbar/guacd/plugin"
	"github.com/nabbar/guacd/recording"
	"github.com/nabbar/guacd/socket"
	"github.com/nabbar/guacd/status"
)

// Engine wires the handshake, the input task and the output task together
// into a single socket.HandlerFunc: one Engine per listener, one Run per
// accepted connection.
type Engine struct {
	Registry *plugin.Registry
	MinFloor int

	// Metrics is optional; when set, Run records connection counts and
	// handshake outcomes against it.
	Metrics *metrics.Metrics

	// RecordDir, when non-empty, tees every byte the render socket writes
	// into a file under this directory, named after the remote address
	// and the time the connection was accepted.
	RecordDir string
}

// NewEngine returns an Engine bound to registry, ready to Run connections.
func NewEngine(registry *plugin.Registry, minFloor int) *Engine {
	return &Engine{Registry: registry, MinFloor: minFloor}
}

// Handle adapts Run to socket.HandlerFunc.
func (e *Engine) Handle(ctx socket.Context) {
	e.Run(ctx)
}

// Run drives one connection end to end: handshake, then concurrent input
// and output tasks until either stops the client, then a single
// FreeHandler call and a final error/disconnect frame.
func (e *Engine) Run(ctx socket.Context) {
	if e.Metrics != nil {
		e.Metrics.ConnectionsTotal.Inc()
		e.Metrics.ConnectionsOpen.Inc()
		defer e.Metrics.ConnectionsOpen.Dec()
	}

	var dst io.Writer = ctx
	var rec *recording.Recording
	if e.RecordDir != "" {
		name := strings.NewReplacer(":", "_", "/", "_").Replace(ctx.RemoteHost())
		name = name + "-" + strconv.FormatInt(time.Now().UnixNano(), 10)
		if r, err := recording.Create(e.RecordDir, name, true); err == nil {
			rec = r
			dst = rec.Tee(ctx)
		}
	}
	if rec != nil {
		defer func() { _ = rec.Close() }()
	}

	r := instruction.NewReader(ctx)
	w := instruction.NewWriter(dst)

	c, err := Handshake(r, w, e.Registry, e.MinFloor)
	if err != nil {
		if e.Metrics != nil {
			e.Metrics.RecordHandshakeFailure(status.KindOf(err).String())
		}
		// Handshake already wrote the error/disconnect frame for the
		// cases the wire contract defines (unknown protocol, plugin
		// init failure); anything else is a protocol violation the
		// client gets told about here instead.
		var fe *framedError
		if !errors.As(err, &fe) {
			_ = w.WriteInstruction("error", err.Error(), strconv.Itoa(int(status.KindOf(err).Uint16())))
			_ = w.WriteInstruction("disconnect")
		}
		return
	}

	var slot status.Slot

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		InputLoop(c, r, &slot)
	}()
	go func() {
		defer wg.Done()
		OutputLoop(c, &slot)
	}()
	wg.Wait()

	if c.Handlers.FreeHandler != nil {
		if ferr := c.Handlers.FreeHandler(c); ferr != nil && slot.Get() == nil {
			slot.Set(status.Wrap(status.UpstreamError, ferr))
		}
	}

	final := slot.Get()
	if final == nil {
		final = status.KindError(status.Success)
	}
	_ = w.WriteInstruction("error", final.Error(), strconv.Itoa(int(final.Kind.Uint16())))
	_ = w.WriteInstruction("disconnect")
}
