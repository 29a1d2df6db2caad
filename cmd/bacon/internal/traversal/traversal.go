// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package traversal computes shortest distances over the actor graph
// with unweighted breadth-first search.
//
// Adjacency is implicit: for each dequeued actor the search walks that
// actor's movie list and each movie's cast, both in insertion order,
// which makes every query deterministic for a fixed dataset.
//
// # Thread Safety
//
// All traversal state (levels, predecessors, the FIFO queue) is local
// to the query, so any number of queries may run concurrently against
// the same immutable Graph.
package traversal

import (
	"context"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/index"
)

// ShortestDistance computes the minimum number of shared-movie hops
// between two actors.
//
// # Description
//
// Identity (same ActorID, not merely the same name) short-circuits to
// 0 without touching any traversal state. The search exits as soon as
// the target is first discovered; remaining queue entries are never
// drained. A drained queue means the actors live in disconnected
// subgraphs and the result is Unreachable.
//
// Cost is O(V + E') per query, where E' sums cast sizes over the
// movies visited: every movie's cast is rescanned for each of its
// members dequeued.
//
// # Inputs
//
//   - ctx: Context for cancellation. Checked once per dequeue.
//   - g: The built graph. Must not be mutated during the call.
//   - source, target: Arena IDs of the two actors.
//
// # Outputs
//
//   - int: Hop count, 0 for identical actors, or Unreachable.
//   - error: Non-nil only when ctx is cancelled.
func ShortestDistance(ctx context.Context, g *index.Graph, source, target index.ActorID) (int, error) {
	res, err := search(ctx, g, source, target, false)
	if err != nil {
		return Unreachable, err
	}
	return res.Distance, nil
}

// ShortestPath computes the distance and reconstructs one shortest
// chain of actors and connecting movies.
//
// # Description
//
// Same search as ShortestDistance, additionally recording for every
// discovered actor its predecessor and the movie the two share. The
// chain is rebuilt by backtracking from the target; with insertion-
// order expansion it is the same chain on every run. When the target
// is unreachable the result carries no path.
func ShortestPath(ctx context.Context, g *index.Graph, source, target index.ActorID) (*Result, error) {
	return search(ctx, g, source, target, true)
}

// search is the single BFS implementation behind both entry points.
func search(ctx context.Context, g *index.Graph, source, target index.ActorID, trackPath bool) (*Result, error) {
	if source == target {
		res := &Result{Distance: 0}
		if trackPath {
			res.Path = []Hop{{Actor: source, Movie: index.NoMovie}}
		}
		return res, nil
	}

	// Query-local traversal state: level doubles as the visited flag
	// (-1 = unreached). Nothing on the shared entities is written.
	n := g.NumActors()
	level := make([]int32, n)
	for i := range level {
		level[i] = -1
	}
	var prevActor []index.ActorID
	var prevMovie []index.MovieID
	if trackPath {
		prevActor = make([]index.ActorID, n)
		prevMovie = make([]index.MovieID, n)
	}

	level[source] = 0
	queue := []index.ActorID{source}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		a := queue[0]
		queue = queue[1:]

		for _, mid := range g.Actor(a).Movies {
			for _, c := range g.Movie(mid).Cast {
				if level[c] >= 0 {
					continue
				}
				level[c] = level[a] + 1
				if trackPath {
					prevActor[c] = a
					prevMovie[c] = mid
				}
				if c == target {
					res := &Result{Distance: int(level[c])}
					if trackPath {
						res.Path = backtrack(source, target, prevActor, prevMovie)
					}
					return res, nil
				}
				queue = append(queue, c)
			}
		}
	}

	return &Result{Distance: Unreachable}, nil
}

// backtrack rebuilds the source-to-target hop chain from the
// predecessor records.
func backtrack(source, target index.ActorID, prevActor []index.ActorID, prevMovie []index.MovieID) []Hop {
	hops := []Hop{{Actor: target, Movie: prevMovie[target]}}
	for cur := target; cur != source; {
		cur = prevActor[cur]
		movie := index.NoMovie
		if cur != source {
			movie = prevMovie[cur]
		}
		hops = append(hops, Hop{Actor: cur, Movie: movie})
	}

	// Recorded target-first; flip to source-first.
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return hops
}
