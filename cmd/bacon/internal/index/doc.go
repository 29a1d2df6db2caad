// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package index provides the in-memory actor/movie graph.
//
// The graph is bipartite: actors appear in movies, and two actors are
// adjacent exactly when they share at least one movie. No explicit
// actor-to-actor edge list is materialized; traversal walks each actor's
// movie list and each movie's cast on the fly.
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                          Graph                               │
//	├──────────────────────────────────────────────────────────────┤
//	│                                                              │
//	│  actors []Actor ──── Movies []MovieID ─────┐                 │
//	│       ▲                                    ▼                 │
//	│  byName map[string]ActorID      movies []Movie               │
//	│       ▲                                    │                 │
//	│       └──────────── Cast []ActorID ◀───────┘                 │
//	│                                                              │
//	└──────────────────────────────────────────────────────────────┘
//
// Entities live in append-only arenas indexed by stable integer IDs,
// so membership links are plain IDs rather than pointers and the store
// can be shared freely between queries once built.
//
// # Thread Safety
//
// The Graph follows a build-then-read lifecycle: all mutation happens
// during dataset parsing on a single goroutine. After the build phase
// the Graph is immutable and safe for concurrent readers; traversal
// keeps its own per-query state (see the traversal package).
package index
