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
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/index"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/traversal"
)

// ScoreResponse is the JSON shape of /api/v1/score and /api/v1/path.
type ScoreResponse struct {
	Actor     string    `json:"actor,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Reference string    `json:"reference,omitempty"`
	Score     int       `json:"score"`
	Reachable bool      `json:"reachable"`
	Cached    bool      `json:"cached,omitempty"`
	Path      []PathHop `json:"path,omitempty"`
}

// PathHop is one step of a hop chain. Movie is empty on the first hop.
type PathHop struct {
	Actor string `json:"actor"`
	Movie string `json:"movie,omitempty"`
}

// StatsResponse is the JSON shape of /api/v1/stats.
type StatsResponse struct {
	Actors   int       `json:"actors"`
	Movies   int       `json:"movies"`
	Links    int       `json:"links"`
	Checksum string    `json:"checksum"`
	LoadedAt time.Time `json:"loaded_at"`
}

// handleScore answers GET /api/v1/score?actor=NAME[&path=true].
func (s *Server) handleScore(c *gin.Context) {
	name := c.Query("actor")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: actor"})
		return
	}
	wantPath := c.Query("path") == "true"

	snap := s.snapshot()
	actorID, ok := snap.graph.FindActor(name)
	if !ok {
		s.metrics.QueriesTotal.WithLabelValues("score", "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{
			"error": (&traversal.ActorNotFoundError{Name: name}).Error(),
		})
		return
	}

	resp := ScoreResponse{
		Actor:     name,
		Reference: s.cfg.Reference,
		Score:     traversal.Unreachable,
	}

	refID, refFound := snap.graph.FindActor(s.cfg.Reference)
	if !refFound {
		// Reference absent: every actor is unreachable, no BFS needed.
		s.metrics.QueriesTotal.WithLabelValues("score", "unreachable").Inc()
		c.JSON(http.StatusOK, resp)
		return
	}

	// Cache holds distances only; path requests always traverse.
	if s.cache != nil && !wantPath {
		if score, hit, err := s.cache.Get(snap.checksum, name); err == nil && hit {
			s.metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
			s.metrics.QueriesTotal.WithLabelValues("score", scoreStatus(score)).Inc()
			resp.Score = score
			resp.Reachable = score != traversal.Unreachable
			resp.Cached = true
			c.JSON(http.StatusOK, resp)
			return
		}
		s.metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	if wantPath {
		result, err := traversal.ShortestPath(c.Request.Context(), snap.graph, actorID, refID)
		if err != nil {
			s.abortQueryError(c, "score", err)
			return
		}
		resp.Score = result.Distance
		resp.Reachable = result.Reachable()
		resp.Path = pathHops(snap.graph, result)
	} else {
		score, err := traversal.ShortestDistance(c.Request.Context(), snap.graph, refID, actorID)
		if err != nil {
			s.abortQueryError(c, "score", err)
			return
		}
		resp.Score = score
		resp.Reachable = score != traversal.Unreachable
	}
	s.metrics.QueryDurationSeconds.WithLabelValues("score").Observe(time.Since(start).Seconds())
	s.metrics.QueriesTotal.WithLabelValues("score", scoreStatus(resp.Score)).Inc()

	if s.cache != nil {
		if err := s.cache.Put(snap.checksum, name, resp.Score); err != nil {
			s.logger.Warn("score cache write failed", "actor", name, "error", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// handlePath answers GET /api/v1/path?from=A&to=B.
func (s *Server) handlePath(c *gin.Context) {
	fromName, toName := c.Query("from"), c.Query("to")
	if fromName == "" || toName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters: from, to"})
		return
	}

	snap := s.snapshot()
	fromID, ok := snap.graph.FindActor(fromName)
	if !ok {
		s.metrics.QueriesTotal.WithLabelValues("path", "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{
			"error": (&traversal.ActorNotFoundError{Name: fromName}).Error(),
		})
		return
	}
	toID, ok := snap.graph.FindActor(toName)
	if !ok {
		s.metrics.QueriesTotal.WithLabelValues("path", "not_found").Inc()
		c.JSON(http.StatusNotFound, gin.H{
			"error": (&traversal.ActorNotFoundError{Name: toName}).Error(),
		})
		return
	}

	start := time.Now()
	result, err := traversal.ShortestPath(c.Request.Context(), snap.graph, fromID, toID)
	if err != nil {
		s.abortQueryError(c, "path", err)
		return
	}
	s.metrics.QueryDurationSeconds.WithLabelValues("path").Observe(time.Since(start).Seconds())
	s.metrics.QueriesTotal.WithLabelValues("path", scoreStatus(result.Distance)).Inc()

	c.JSON(http.StatusOK, ScoreResponse{
		From:      fromName,
		To:        toName,
		Score:     result.Distance,
		Reachable: result.Reachable(),
		Path:      pathHops(snap.graph, result),
	})
}

// handleStats answers GET /api/v1/stats.
func (s *Server) handleStats(c *gin.Context) {
	snap := s.snapshot()
	c.JSON(http.StatusOK, StatsResponse{
		Actors:   snap.stats.Actors,
		Movies:   snap.stats.Movies,
		Links:    snap.stats.Links,
		Checksum: snap.checksum,
		LoadedAt: snap.loadedAt,
	})
}

// handleHealth answers GET /healthz.
func (s *Server) handleHealth(c *gin.Context) {
	snap := s.snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"actors": snap.stats.Actors,
	})
}

// abortQueryError reports a traversal failure (context cancellation).
func (s *Server) abortQueryError(c *gin.Context, endpoint string, err error) {
	s.metrics.QueriesTotal.WithLabelValues(endpoint, "error").Inc()
	s.logger.Error("query failed", "endpoint", endpoint, "request_id", GetRequestID(c), "error", err)
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
}

// scoreStatus maps a distance to a metrics label.
func scoreStatus(score int) string {
	if score == traversal.Unreachable {
		return "unreachable"
	}
	return "ok"
}

// pathHops converts a traversal result into the JSON hop chain.
func pathHops(g *index.Graph, result *traversal.Result) []PathHop {
	if !result.Reachable() {
		return nil
	}
	hops := make([]PathHop, 0, len(result.Path))
	for _, hop := range result.Path {
		ph := PathHop{Actor: g.Actor(hop.Actor).Name}
		if hop.Movie != index.NoMovie {
			ph.Movie = g.Movie(hop.Movie).Title
		}
		hops = append(hops, ph)
	}
	return hops
}
