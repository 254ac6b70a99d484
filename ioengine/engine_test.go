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
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nabbar/guacd/instruction"
	"github.com/nabbar/guacd/plugin"
	"github.com/nabbar/guacd/plugin/noop"
	"github.com/nabbar/guacd/socket"
	"github.com/nabbar/guacd/status"
)

type pipeContext struct {
	net.Conn
}

func (p pipeContext) IsConnected() bool  { return true }
func (p pipeContext) LocalHost() string  { return "local" }
func (p pipeContext) RemoteHost() string { return "remote" }

var _ socket.Context = pipeContext{}

func TestEngine_UnknownProtocolSendsNotFoundAndDisconnects(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer clientConn.Close()

	registry := plugin.NewRegistry()
	e := NewEngine(registry, 0)

	done := make(chan struct{})
	go func() {
		e.Handle(pipeContext{serverConn})
		close(done)
	}()

	w := instruction.NewWriter(clientConn)
	if err := w.WriteInstruction("select", "echo"); err != nil {
		t.Fatalf("write select: %v", err)
	}

	r := instruction.NewReader(clientConn)
	inst, err := r.ReadInstruction(2 * time.Second)
	if err != nil {
		t.Fatalf("read error instruction: %v", err)
	}
	if inst.Opcode != "error" || len(inst.Args) < 2 || !strings.Contains(inst.Args[0], "not supported") {
		t.Fatalf("unexpected error instruction: %+v", inst)
	}
	if want := strconv.Itoa(int(status.NotFound.Uint16())); inst.Args[1] != want {
		t.Fatalf("expected status %s (0x0200), got %s", want, inst.Args[1])
	}

	disc, err := r.ReadInstruction(2 * time.Second)
	if err != nil {
		t.Fatalf("read disconnect instruction: %v", err)
	}
	if disc.Opcode != "disconnect" {
		t.Fatalf("expected disconnect, got %q", disc.Opcode)
	}

	<-done
}

func TestEngine_SuccessfulHandshakeRunsAndTearsDown(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer clientConn.Close()

	registry := plugin.NewRegistry()
	if err := registry.Register(noop.New()); err != nil {
		t.Fatalf("register noop: %v", err)
	}
	e := NewEngine(registry, 0)

	done := make(chan struct{})
	go func() {
		e.Handle(pipeContext{serverConn})
		close(done)
	}()

	w := instruction.NewWriter(clientConn)
	r := instruction.NewReader(clientConn)

	if err := w.WriteInstruction("select", "noop"); err != nil {
		t.Fatalf("write select: %v", err)
	}

	args, err := r.ReadInstruction(2 * time.Second)
	if err != nil || args.Opcode != "args" {
		t.Fatalf("expected args instruction, got %+v err=%v", args, err)
	}

	if err := w.WriteInstruction("size", "1024", "768", "96"); err != nil {
		t.Fatalf("write size: %v", err)
	}
	if err := w.WriteInstruction("audio"); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	if err := w.WriteInstruction("video"); err != nil {
		t.Fatalf("write video: %v", err)
	}
	if err := w.WriteInstruction("image"); err != nil {
		t.Fatalf("write image: %v", err)
	}
	if err := w.WriteInstruction("connect"); err != nil {
		t.Fatalf("write connect: %v", err)
	}
	if err := w.WriteInstruction("disconnect"); err != nil {
		t.Fatalf("write disconnect: %v", err)
	}

	sawFinalError := false
	for i := 0; i < 4; i++ {
		inst, rerr := r.ReadInstruction(2 * time.Second)
		if rerr != nil {
			break
		}
		if inst.Opcode == "error" {
			sawFinalError = true
		}
		if inst.Opcode == "disconnect" {
			break
		}
	}
	if !sawFinalError {
		t.Fatalf("expected a final error instruction before disconnect")
	}

	<-done
}
