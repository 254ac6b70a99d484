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
	"github.com/spf13/cobra"
)

// newRootCmd builds the single guacd command: a long-running daemon with
// no subcommands, matching the upstream binary's own shape.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "guacd",
		Short: "Guacamole proxy daemon",
		Long: "guacd accepts TCP connections speaking the Guacamole protocol, " +
			"performs the handshake against a registered protocol plugin, and " +
			"relays instructions between the client and the plugin until either " +
			"side disconnects.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.listen, "listen", "l", defaultListen, "TCP port to listen on")
	flags.StringVarP(&opts.bind, "bind", "b", defaultBind, "address to bind the listener to")
	flags.StringVarP(&opts.pidFile, "pidfile", "p", "", "write the daemon's PID to this file")
	flags.BoolVarP(&opts.foreground, "foreground", "f", false, "stay in the foreground and log to stderr")
	flags.StringVarP(&opts.logLevel, "log-level", "L", defaultLogLevel, "log level: panic, fatal, error, warn, info, debug")
	flags.BoolVarP(&opts.tlsEnable, "tls", "T", false, "enable TLS on the listener")
	flags.StringVar(&opts.tlsCert, "tls-cert", "", "TLS certificate file (required with --tls)")
	flags.StringVar(&opts.tlsKey, "tls-key", "", "TLS key file (required with --tls)")
	flags.IntVarP(&opts.maxConnections, "max-connections", "m", 0, "maximum concurrent connections, 0 for unbounded")
	flags.StringVarP(&opts.recordDir, "record-dir", "r", "", "directory to write session recordings into")
	flags.StringVar(&opts.metricsListen, "metrics-listen", "", "address to expose Prometheus metrics on, disabled if empty")

	return cmd
}
