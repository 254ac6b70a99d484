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

// Package tcp implements a socket.Server over a plain (optionally TLS)
// TCP listener: accept loop, per-connection goroutine dispatch into a
// socket.HandlerFunc, idle-timeout enforcement, and graceful shutdown.
package tcp

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/guacd/socket"
	"github.com/nabbar/guacd/socket/config"
)

// ErrInvalidAddress is returned by New when the configured address cannot
// be used to construct a listener.
var ErrInvalidAddress = errors.New("tcp: invalid or missing bind address")

// ServerTcp is the socket.Server implementation bound to a TCP listener.
type ServerTcp interface {
	socket.Server
}

type srv struct {
	cfg config.Server
	upd socket.UpdateConn
	hdl socket.HandlerFunc

	mu sync.Mutex
	ln net.Listener

	running atomic.Bool
	gone    atomic.Bool
	open    atomic.Int64

	fctErr    socket.FuncError
	fctInfo   socket.FuncInfo
	fctServer socket.FuncInfoServer
}

// New validates cfg and returns a ServerTcp ready to Listen. upd may be
// nil; hdl must not be.
func New(upd socket.UpdateConn, hdl socket.HandlerFunc, cfg config.Server) (ServerTcp, error) {
	if cfg.Address == "" {
		return nil, ErrInvalidAddress
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &srv{cfg: cfg, upd: upd, hdl: hdl}
	s.gone.Store(true)
	return s, nil
}

func (s *srv) RegisterFuncError(fct socket.FuncError)           { s.fctErr = fct }
func (s *srv) RegisterFuncInfo(fct socket.FuncInfo)              { s.fctInfo = fct }
func (s *srv) RegisterFuncInfoServer(fct socket.FuncInfoServer)  { s.fctServer = fct }

func (s *srv) IsRunning() bool        { return s.running.Load() }
func (s *srv) IsGone() bool           { return s.gone.Load() }
func (s *srv) OpenConnections() int64 { return s.open.Load() }

func (s *srv) info(local, remote net.Addr, state socket.ConnState) {
	if s.fctInfo != nil {
		s.fctInfo(local, remote, state)
	}
}

func (s *srv) err(errs ...error) {
	if s.fctErr == nil {
		return
	}
	var filtered []error
	for _, e := range errs {
		if f := socket.ErrorFilter(e); f != nil {
			filtered = append(filtered, f)
		}
	}
	if len(filtered) > 0 {
		s.fctErr(filtered...)
	}
}

func (s *srv) infoServer(msg string) {
	if s.fctServer != nil {
		s.fctServer(msg)
	}
}

// Listen accepts connections until ctx is canceled or Shutdown is called.
func (s *srv) Listen(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, s.cfg.Network.String(), s.cfg.Address)
	if err != nil {
		return err
	}

	if s.cfg.TLS.Enable {
		cert, cerr := tls.LoadX509KeyPair(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
		if cerr != nil {
			_ = ln.Close()
			return cerr
		}
		ln = tls.NewListener(ln, &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12})
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	s.running.Store(true)
	s.gone.Store(false)
	s.infoServer("listening on " + ln.Addr().String())

	defer func() {
		s.running.Store(false)
		s.gone.Store(true)
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, aerr := ln.Accept()
		if aerr != nil {
			if ctx.Err() != nil {
				return nil
			}
			if socket.ErrorFilter(aerr) == nil {
				return nil
			}
			s.err(aerr)
			return aerr
		}

		if s.upd != nil {
			s.upd(conn)
		}

		s.open.Add(1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.open.Add(-1)
			s.serve(ctx, conn)
		}()
	}
}

func (s *srv) serve(ctx context.Context, conn net.Conn) {
	s.info(conn.LocalAddr(), conn.RemoteAddr(), socket.ConnectionNew)
	defer func() {
		s.info(conn.LocalAddr(), conn.RemoteAddr(), socket.ConnectionClose)
		_ = conn.Close()
	}()

	cctx := newContext(ctx, conn, s.cfg.ConIdleTimeout.Time())
	defer cctx.cancel()

	s.info(conn.LocalAddr(), conn.RemoteAddr(), socket.ConnectionHandler)
	s.hdl(cctx)
}

// Shutdown stops accepting new connections. It does not forcibly close
// connections already being served; callers that need that should cancel
// the context passed to Listen instead, or wait on ctx's own deadline.
func (s *srv) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for s.OpenConnections() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
