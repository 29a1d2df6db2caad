// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package server exposes the score engine over an HTTP API.
//
// # Description
//
// The server builds the graph once at startup and answers score, path,
// and stats queries against an immutable snapshot. A filesystem watcher
// reloads the dataset on change: the new graph is built off to the side
// and swapped in atomically, so queries in flight keep the snapshot
// they started with and a failed rebuild leaves the old graph serving.
//
//	              ┌────────────────────┐
//	dataset ──►   │  watcher (fsnotify)│
//	              └─────────┬──────────┘
//	                        ▼  atomic swap
//	GET /api/v1/score ──► snapshot ──► BFS (query-local state)
//	GET /api/v1/path  ──► snapshot ──► BFS + backtrack
//	GET /api/v1/stats ──► snapshot
//
// # Thread Safety
//
// Safe for concurrent requests: graph snapshots are immutable and all
// traversal state is query-local.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/dataset"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/index"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/scorecache"
	"github.com/AleutianAI/BaconLocal/pkg/logging"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

// Config configures the score server.
//
// # Fields
//
//   - DatasetPath: Required. Dataset file to build and watch.
//   - Reference: Required. Name of the reference actor.
//   - Listen: Required. Bind address (host:port).
//   - RatePerSecond / RateBurst: Optional. Zero disables rate limiting.
//   - Cache: Optional. Score cache; nil disables caching.
//   - Registry: Optional. Prometheus registry. Default: the default
//     registry. Tests pass a private one.
//   - Logger: Optional. Default: logging.Default().
//   - Watch: Reload the dataset on file changes. Default in serve mode.
type Config struct {
	DatasetPath   string
	Reference     string
	Listen        string
	RatePerSecond float64
	RateBurst     int
	Cache         *scorecache.Cache
	Registry      *prometheus.Registry
	Logger        *logging.Logger
	Watch         bool
}

// snapshot is one immutable build of the graph.
type snapshot struct {
	graph    *index.Graph
	stats    index.Stats
	checksum string
	loadedAt time.Time
}

// Server serves score queries over HTTP against an atomically swapped
// graph snapshot.
type Server struct {
	cfg     Config
	engine  *gin.Engine
	logger  *logging.Logger
	metrics *Metrics
	limiter *rate.Limiter
	cache   *scorecache.Cache

	current atomic.Pointer[snapshot]
}

// New builds the initial graph snapshot and wires the HTTP engine.
// Fails if the dataset cannot be parsed.
func New(cfg Config) (*Server, error) {
	if cfg.DatasetPath == "" {
		return nil, errors.New("server: dataset path is required")
	}
	if cfg.Reference == "" {
		return nil, errors.New("server: reference actor is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if cfg.Registry != nil {
		registerer = cfg.Registry
		gatherer = cfg.Registry
	}

	s := &Server{
		cfg:     cfg,
		logger:  cfg.Logger,
		metrics: NewMetrics(registerer),
		cache:   cfg.Cache,
	}
	if cfg.RatePerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)
	}

	snap, err := loadSnapshot(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	s.install(snap)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(RateLimit(s.limiter))

	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/score", s.handleScore)
		v1.GET("/path", s.handlePath)
		v1.GET("/stats", s.handleStats)
	}

	s.engine = engine
	return s, nil
}

// Handler exposes the router for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down
// gracefully. The dataset watcher runs alongside when Watch is set.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s.engine,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("listening", "addr", s.cfg.Listen, "dataset", s.cfg.DatasetPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if s.cfg.Watch {
		g.Go(func() error {
			return s.watchDataset(ctx)
		})
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// snapshot returns the active graph snapshot.
func (s *Server) snapshot() *snapshot {
	return s.current.Load()
}

// install makes snap the active snapshot and updates the gauges.
func (s *Server) install(snap *snapshot) {
	s.current.Store(snap)
	if s.metrics != nil {
		s.metrics.observeGraph(snap.stats.Actors, snap.stats.Movies, snap.stats.Links)
	}
}

// reload rebuilds the graph from disk and swaps it in. A failed build
// keeps the old snapshot serving.
func (s *Server) reload() {
	snap, err := loadSnapshot(s.cfg.DatasetPath)
	if err != nil {
		s.metrics.ReloadsTotal.WithLabelValues("error").Inc()
		s.logger.Warn("dataset reload failed; keeping previous graph",
			"dataset", s.cfg.DatasetPath, "error", err)
		return
	}

	old := s.snapshot()
	if old != nil && old.checksum == snap.checksum {
		s.logger.Debug("dataset unchanged; skipping swap", "checksum", snap.checksum)
		return
	}

	s.install(snap)
	s.metrics.ReloadsTotal.WithLabelValues("ok").Inc()
	s.logger.Info("graph reloaded",
		"actors", snap.stats.Actors,
		"movies", snap.stats.Movies,
		"links", snap.stats.Links,
		"checksum", snap.checksum)
}

// loadSnapshot parses the dataset into a fresh immutable graph.
func loadSnapshot(path string) (*snapshot, error) {
	graph := index.NewGraph()
	stats, err := dataset.ParseFile(path, graph)
	if err != nil {
		return nil, err
	}
	return &snapshot{
		graph:    graph,
		stats:    graph.Stats(),
		checksum: stats.Checksum,
		loadedAt: time.Now(),
	}, nil
}
