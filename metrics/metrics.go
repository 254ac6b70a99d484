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

// Package metrics exposes the daemon's operational counters as a
// Prometheus collector set: connections accepted, handshake outcomes,
// bytes relayed in each direction, and the image cache's hit rate.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the registered collector set for one listener. It is safe
// for concurrent use by every connection's I/O engine.
type Metrics struct {
	ConnectionsTotal   prometheus.Counter
	ConnectionsOpen    prometheus.Gauge
	HandshakeFailures  *prometheus.CounterVec
	BytesRelayed       *prometheus.CounterVec
	ImageCacheLookups  prometheus.Counter
	ImageCacheHits     prometheus.Counter
}

// New constructs a Metrics set and registers every collector against reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ConnectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guacd",
			Name:      "connections_total",
			Help:      "Total number of accepted connections.",
		}),
		ConnectionsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "guacd",
			Name:      "connections_open",
			Help:      "Number of connections currently being served.",
		}),
		HandshakeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guacd",
			Name:      "handshake_failures_total",
			Help:      "Handshake failures, labeled by reason.",
		}, []string{"reason"}),
		BytesRelayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guacd",
			Name:      "bytes_relayed_total",
			Help:      "Bytes relayed between client and plugin, labeled by direction.",
		}, []string{"direction"}),
		ImageCacheLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guacd",
			Name:      "image_cache_lookups_total",
			Help:      "Total image-cache lookups recorded through RecordImageCacheLookup.",
		}),
		ImageCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "guacd",
			Name:      "image_cache_hits_total",
			Help:      "Image-cache lookups that found a previously sent surface.",
		}),
	}

	collectors := []prometheus.Collector{
		m.ConnectionsTotal,
		m.ConnectionsOpen,
		m.HandshakeFailures,
		m.BytesRelayed,
		m.ImageCacheLookups,
		m.ImageCacheHits,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordHandshakeFailure increments the failure counter for reason. The
// I/O engine passes the failing error's status.Kind name ("NotFound",
// "BadArgument", "Protocol", "Io", ...).
func (m *Metrics) RecordHandshakeFailure(reason string) {
	m.HandshakeFailures.WithLabelValues(reason).Inc()
}

// RecordBytes adds n to the relayed-bytes counter for direction
// ("inbound" or "outbound"). No package in this repository calls it, so
// the daemon's relayed-bytes counter stays at zero.
func (m *Metrics) RecordBytes(direction string, n int) {
	m.BytesRelayed.WithLabelValues(direction).Add(float64(n))
}

// RecordImageCacheLookup records one image-cache lookup and whether it
// hit. render.SendImage does not call it, and neither does any other
// package here, so the daemon's image-cache counters stay at zero.
func (m *Metrics) RecordImageCacheLookup(hit bool) {
	m.ImageCacheLookups.Inc()
	if hit {
		m.ImageCacheHits.Inc()
	}
}
