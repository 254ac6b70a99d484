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

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"github.com/nabbar/guacd/ioengine"
	"github.com/nabbar/guacd/logger"
	"github.com/nabbar/guacd/metrics"
	"github.com/nabbar/guacd/network"
	"github.com/nabbar/guacd/plugin"
	"github.com/nabbar/guacd/plugin/noop"
	"github.com/nabbar/guacd/socket"
	"github.com/nabbar/guacd/socket/config"
	"github.com/nabbar/guacd/socket/server/tcp"
)

// shutdownGrace bounds how long Shutdown waits for in-flight connections
// to finish once the daemon has been asked to stop.
const shutdownGrace = 10 * time.Second

// run wires every piece named by opts together and blocks until the
// process receives SIGINT or SIGTERM.
func run(cmd *cobra.Command, opts *options) error {
	lvl, err := parseLevel(opts.logLevel)
	if err != nil {
		return err
	}

	log := logger.New(lvl)
	defer func() { _ = log.Close() }()

	if !opts.foreground {
		if herr := attachBackgroundLog(log, lvl); herr != nil {
			log.Warnf("background log destination unavailable: %s", herr)
		}
	}

	if opts.pidFile != "" {
		if werr := os.WriteFile(opts.pidFile, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0644); werr != nil {
			return fmt.Errorf("writing pid file: %w", werr)
		}
		defer func() { _ = os.Remove(opts.pidFile) }()
	}

	registry := plugin.NewRegistry()
	if rerr := registry.Register(noop.New()); rerr != nil {
		return fmt.Errorf("registering built-in plugins: %w", rerr)
	}

	engine := &ioengine.Engine{
		Registry:  registry,
		RecordDir: opts.recordDir,
	}

	var reg *prometheus.Registry
	var metricsSrv *metrics.Server
	if opts.metricsListen != "" {
		reg = prometheus.NewRegistry()
		m, merr := metrics.New(reg)
		if merr != nil {
			return fmt.Errorf("registering metrics: %w", merr)
		}
		engine.Metrics = m

		metricsSrv = metrics.NewServer(metrics.ServerConfig{Listen: opts.metricsListen}, reg)
		go func() {
			if serr := metricsSrv.ListenAndServe(); serr != nil {
				log.Errorf("metrics server stopped: %s", serr)
			}
		}()
	}

	handle := socket.HandlerFunc(engine.Handle)
	if opts.maxConnections > 0 {
		handle = boundConcurrency(handle, int64(opts.maxConnections))
	}

	cfg := config.Server{
		Network: network.TCP,
		Address: net.JoinHostPort(opts.bind, opts.listen),
		TLS: config.TLS{
			Enable:   opts.tlsEnable,
			CertFile: opts.tlsCert,
			KeyFile:  opts.tlsKey,
		},
	}

	srv, terr := tcp.New(nil, handle, cfg)
	if terr != nil {
		return fmt.Errorf("building listener: %w", terr)
	}

	srv.RegisterFuncError(func(errs ...error) {
		for _, e := range errs {
			log.Errorf("listener: %s", e)
		}
	})
	srv.RegisterFuncInfoServer(func(msg string) {
		log.Info(msg)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(ctx)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case lerr := <-errCh:
		if lerr != nil {
			return fmt.Errorf("listener exited: %w", lerr)
		}
		return nil
	}

	shCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if serr := srv.Shutdown(shCtx); serr != nil {
		log.Errorf("shutdown: %s", serr)
	}

	if metricsSrv != nil {
		mCtx, mCancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer mCancel()
		if merr := metricsSrv.Shutdown(mCtx); merr != nil {
			log.Errorf("metrics shutdown: %s", merr)
		}
	}

	return <-errCh
}

// boundConcurrency wraps hdl so that at most max connections run it
// concurrently; callers beyond that limit block (holding their accepted
// connection open) until a slot frees up.
func boundConcurrency(hdl socket.HandlerFunc, max int64) socket.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(ctx socket.Context) {
		if err := sem.Acquire(ctx, 1); err != nil {
			return
		}
		defer sem.Release(1)
		hdl(ctx)
	}
}
