// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package traversal

import (
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/index"
)

// Unreachable is the distance reported when no chain of shared movies
// connects two actors.
const Unreachable = -1

// Hop is one step of a reconstructed chain: an actor plus the movie
// that connects it to the previous hop. The first hop (the source
// actor) carries index.NoMovie.
type Hop struct {
	Actor index.ActorID `json:"actor"`
	Movie index.MovieID `json:"movie"`
}

// Result holds the outcome of one shortest-path query.
type Result struct {
	// Distance is the number of shared-movie hops between source and
	// target, 0 for identical actors, or Unreachable.
	Distance int

	// Path is the hop chain from source to target inclusive. It is
	// only populated by ShortestPath, and only when the target is
	// reachable; its length is always Distance+1 in that case.
	Path []Hop
}

// Reachable reports whether the target was found.
func (r *Result) Reachable() bool {
	return r.Distance != Unreachable
}
