// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "bacon"

// Metrics holds all Prometheus metrics for the score service.
//
// # Description
//
// Provides counters, histograms, and gauges for monitoring query
// traffic, BFS latency, and graph size. Initialize once at startup via
// NewMetrics(); pass a private registry in tests to avoid duplicate
// registration.
//
// # Thread Safety
//
// All operations are thread-safe via Prometheus's internal locking.
type Metrics struct {
	// QueriesTotal counts score/path queries by endpoint and status.
	// Labels: endpoint (score, path), status (ok, not_found, unreachable, error)
	QueriesTotal *prometheus.CounterVec

	// QueryDurationSeconds measures BFS query latency.
	// Labels: endpoint (score, path)
	QueryDurationSeconds *prometheus.HistogramVec

	// CacheHitsTotal counts score cache hits and misses.
	// Labels: result (hit, miss)
	CacheHitsTotal *prometheus.CounterVec

	// ReloadsTotal counts dataset reload attempts.
	// Labels: status (ok, error)
	ReloadsTotal *prometheus.CounterVec

	// GraphActors is the current number of actors in the graph.
	GraphActors prometheus.Gauge

	// GraphMovies is the current number of movies in the graph.
	GraphMovies prometheus.Gauge

	// GraphLinks is the current number of actor-movie links.
	GraphLinks prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the given
// registerer. Panics on duplicate registration, so call once per
// registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "queries_total",
				Help:      "Total score/path queries by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),

		QueryDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "query_duration_seconds",
				Help:      "BFS query latency in seconds",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "Score cache lookups by result",
			},
			[]string{"result"},
		),

		ReloadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "reloads_total",
				Help:      "Dataset reload attempts by status",
			},
			[]string{"status"},
		),

		GraphActors: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_actors",
			Help:      "Number of actors in the active graph",
		}),

		GraphMovies: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_movies",
			Help:      "Number of movies in the active graph",
		}),

		GraphLinks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_links",
			Help:      "Number of actor-movie links in the active graph",
		}),
	}
}

// observeGraph updates the graph-size gauges for a freshly loaded
// snapshot.
func (m *Metrics) observeGraph(actors, movies, links int) {
	m.GraphActors.Set(float64(actors))
	m.GraphMovies.Set(float64(movies))
	m.GraphLinks.Set(float64(links))
}
